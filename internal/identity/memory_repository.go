package identity

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]int64
	users   map[int64]User
}

// NewMemoryRepository builds an in-memory user store for dev mode and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{byEmail: make(map[string]int64), users: make(map[int64]User)}
}

func (r *memoryRepository) Create(_ context.Context, user User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return 0, ErrDuplicateEmail
	}
	r.nextID++
	user.ID = r.nextID
	user.IsActive = true
	r.users[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return user.ID, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.users[id], nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	at = at.UTC()
	user.LastLoginAt = &at
	r.users[id] = user
	return nil
}

func (r *memoryRepository) CountUsers(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
