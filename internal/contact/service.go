package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/myhost-cloud/myhost/internal/notification"
)

// notifyTimeout bounds the background notification attempt.
const notifyTimeout = 10 * time.Second

// Service stores contact submissions and notifies the site operator. The
// notification is fire-and-forget: a mail failure never fails the request.
type Service struct {
	repo      Repository
	notifier  notification.Notifier
	recipient string
	logger    *slog.Logger
}

// NewService builds a contact service instance.
func NewService(repo Repository, notifier notification.Notifier, recipient string, logger *slog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, recipient: recipient, logger: logger}
}

// Submit persists the message and kicks off the operator notification.
func (s *Service) Submit(ctx context.Context, m Message) error {
	m.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}

	if s.notifier == nil || s.recipient == "" {
		return nil
	}

	// Detached from the request context: the submission already succeeded.
	go func(m Message) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindContactForm,
			Destination: s.recipient,
			Subject:     fmt.Sprintf("New Contact Form Submission: %s", m.Subject),
			Body:        fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\n%s", m.Name, m.Email, m.Subject, m.Body),
		})
		if err != nil {
			s.logger.Warn("contact notification failed", "error", err)
		}
	}(m)

	return nil
}
