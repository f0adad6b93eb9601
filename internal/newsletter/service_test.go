package newsletter

import (
	"context"
	"errors"
	"testing"
)

func TestSubscribe(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if err := svc.Subscribe(ctx, "ann@example.com"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := svc.Subscribe(ctx, "ann@example.com"); !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}

	// Normalization makes re-cased addresses duplicates too.
	if err := svc.Subscribe(ctx, " Ann@Example.com "); !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed for re-cased email, got %v", err)
	}
}

func TestSubscribeRequiresEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if err := svc.Subscribe(context.Background(), "  "); !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
}
