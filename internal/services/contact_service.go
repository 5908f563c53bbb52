package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"
	"paletteandfit/pkg/mailer"

	"github.com/sirupsen/logrus"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail applies the loose address check used by the contact form.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ContactMailer forwards a contact message to the site owner.
type ContactMailer interface {
	SendContact(ctx context.Context, senderEmail, message string) error
}

// ContactResult reports what happened to the outbound mail.
type ContactResult struct {
	EmailSent bool
	// Detail is the mail failure, empty when the mail was sent.
	Detail string
}

type ContactService struct {
	repo   repositories.ContactRepository
	mailer ContactMailer
	events EventPublisher
}

func NewContactService(repo repositories.ContactRepository, relay ContactMailer, events EventPublisher) *ContactService {
	return &ContactService{repo: repo, mailer: relay, events: events}
}

// Submit validates the message before anything is stored or sent. Storage,
// events and mail are best effort and never fail a valid submission.
func (s *ContactService) Submit(ctx context.Context, email, message string) (ContactResult, error) {
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if !ValidEmail(email) {
		return ContactResult{}, ErrInvalidEmail
	}
	if message == "" {
		return ContactResult{}, ErrMessageRequired
	}

	if err := s.repo.Create(&models.ContactMessage{Email: email, Message: message}); err != nil {
		logrus.WithFields(logrus.Fields{"email": email, "error": err}).Warn("Could not store contact message")
	}
	publishEvent(s.events, EventContactReceived, map[string]interface{}{"email": email})

	if s.mailer == nil {
		return ContactResult{Detail: mailer.ErrNotConfigured.Error()}, nil
	}
	if err := s.mailer.SendContact(ctx, email, message); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return ContactResult{Detail: err.Error()}, nil
		}
		logrus.WithFields(logrus.Fields{"email": email, "error": err}).Warn("Could not send contact mail")
		return ContactResult{Detail: err.Error()}, nil
	}
	return ContactResult{EmailSent: true}, nil
}
