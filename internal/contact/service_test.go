package contact

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/myhost-cloud/myhost/internal/logging"
	"github.com/myhost-cloud/myhost/internal/notification"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification.Message
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, m notification.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeNotifier) last() notification.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := NewMemoryRepository()
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, "support@myhost.test", logging.Discard())

	err := svc.Submit(context.Background(), Message{
		Name:    "Ann",
		Email:   "ann@example.com",
		Subject: "Billing",
		Body:    "My invoice looks wrong.",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	msgs := repo.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(msgs))
	}
	if msgs[0].Email != "ann@example.com" || msgs[0].Body != "My invoice looks wrong." {
		t.Fatalf("stored message mismatch: %+v", msgs[0])
	}
	if msgs[0].CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	waitFor(t, func() bool { return notifier.count() == 1 })

	sent := notifier.last()
	if sent.Destination != "support@myhost.test" {
		t.Fatalf("expected operator recipient, got %s", sent.Destination)
	}
	if sent.Kind != notification.KindContactForm {
		t.Fatalf("expected contact form kind, got %s", sent.Kind)
	}
	if !strings.Contains(sent.Subject, "Billing") {
		t.Fatalf("expected subject to carry the form subject, got %q", sent.Subject)
	}
	if !strings.Contains(sent.Body, "ann@example.com") {
		t.Fatalf("expected body to carry the sender email, got %q", sent.Body)
	}
}

func TestSubmitSucceedsWhenNotificationFails(t *testing.T) {
	repo := NewMemoryRepository()
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewService(repo, notifier, "support@myhost.test", logging.Discard())

	err := svc.Submit(context.Background(), Message{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Body: "Hello"})
	if err != nil {
		t.Fatalf("submit should not surface mail failures: %v", err)
	}
	if len(repo.Messages()) != 1 {
		t.Fatalf("expected message stored despite mail failure")
	}
}

func TestSubmitWithoutNotifier(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil, "", logging.Discard())

	if err := svc.Submit(context.Background(), Message{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Body: "Hello"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(repo.Messages()) != 1 {
		t.Fatalf("expected message stored")
	}
}
