package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured is returned when host, user or password is missing.
var ErrNotConfigured = errors.New("SMTP not configured")

const sendTimeout = 30 * time.Second

// Config describes the outbound SMTP relay.
type Config struct {
	Host   string
	Port   int
	User   string
	Pass   string
	UseTLS bool
	From   string
	To     string
}

// Sender relays contact messages to the site owner.
type Sender struct {
	cfg Config
}

func NewSender(cfg Config) *Sender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &Sender{cfg: cfg}
}

// Configured reports whether a send would be attempted.
func (s *Sender) Configured() bool {
	return s.cfg.Host != "" && s.cfg.User != "" && s.cfg.Pass != ""
}

// SendContact forwards one contact message. It never retries.
func (s *Sender) SendContact(ctx context.Context, senderEmail, message string) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	msg, err := s.buildMessage(senderEmail, message)
	if err != nil {
		return err
	}

	// PLAIN refuses to authenticate over a plaintext connection to anything
	// but localhost, so relays used without TLS need the NoEnc variant.
	policy, auth := mail.NoTLS, mail.SMTPAuthPlainNoEnc
	if s.cfg.UseTLS {
		policy, auth = mail.TLSMandatory, mail.SMTPAuthPlain
	}
	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(auth),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Pass),
		mail.WithTLSPolicy(policy),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func (s *Sender) buildMessage(senderEmail, message string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(s.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if err := msg.ReplyTo(senderEmail); err != nil {
		return nil, fmt.Errorf("invalid reply-to address: %w", err)
	}
	msg.Subject(Subject(senderEmail))
	msg.SetBodyString(mail.TypeTextPlain, Body(senderEmail, message))
	return msg, nil
}

func Subject(senderEmail string) string {
	return "New contact message from " + senderEmail
}

func Body(senderEmail, message string) string {
	return fmt.Sprintf("From: %s\n\n%s", senderEmail, strings.TrimSpace(message))
}
