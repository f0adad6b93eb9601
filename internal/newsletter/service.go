package newsletter

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrMissingEmail signals a subscription without an email address.
var ErrMissingEmail = errors.New("email is required")

// Service manages newsletter subscriptions.
type Service struct {
	repo Repository
}

// NewService builds a newsletter service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe normalizes and stores a subscription.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrMissingEmail
	}
	return s.repo.Subscribe(ctx, email, time.Now())
}
