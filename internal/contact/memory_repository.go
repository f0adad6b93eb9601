package contact

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory contact store for dev mode and tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	messages []Message
}

// NewMemoryRepository builds an empty in-memory contact store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Create appends a contact message.
func (r *MemoryRepository) Create(_ context.Context, m Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = int64(len(r.messages) + 1)
	r.messages = append(r.messages, m)
	return nil
}

// Messages returns a snapshot of stored messages.
func (r *MemoryRepository) Messages() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
