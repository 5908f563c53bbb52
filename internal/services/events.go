package services

import "github.com/sirupsen/logrus"

// Routing keys for domain events.
const (
	EventUserRegistered          = "user.registered"
	EventContactReceived         = "contact.received"
	EventRecommendationGenerated = "recommendation.generated"
)

// EventPublisher sends domain events to the message bus.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// publishEvent never fails the caller; a nil publisher disables events.
func publishEvent(pub EventPublisher, routingKey string, payload interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(routingKey, payload); err != nil {
		logrus.WithFields(logrus.Fields{
			"routing_key": routingKey,
			"error":       err,
		}).Warn("Could not publish event")
	}
}
