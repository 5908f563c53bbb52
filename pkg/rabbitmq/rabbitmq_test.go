package rabbitmq

import (
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

func TestPublishWithoutChannel(t *testing.T) {
	c := &Client{}
	err := c.Publish("contact.received", map[string]string{"email": "a@b.co"})
	assert.EqualError(t, err, "RabbitMQ channel is not available")
}

func TestConsumeWithoutChannel(t *testing.T) {
	c := &Client{}
	err := c.ConsumeEvents(LogEvent)
	assert.Error(t, err)
}

func TestLogEvent(t *testing.T) {
	assert.NoError(t, LogEvent(amqp.Delivery{RoutingKey: "user.registered", Body: []byte(`{"username":"a@b.co"}`)}))
	assert.Error(t, LogEvent(amqp.Delivery{RoutingKey: "user.registered", Body: []byte(`not json`)}))
}
