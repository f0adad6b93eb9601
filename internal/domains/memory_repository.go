package domains

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory domain store for dev mode and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	domains []Domain
}

// NewMemoryRepository builds an empty in-memory domain store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Seed registers a domain directly, bypassing any purchase flow.
func (r *MemoryRepository) Seed(d Domain) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	d.ID = r.nextID
	r.domains = append(r.domains, d)
}

// Exists reports whether the exact domain name is present.
func (r *MemoryRepository) Exists(_ context.Context, domainName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.domains {
		if d.DomainName == domainName {
			return true, nil
		}
	}
	return false, nil
}

// ListByUser returns the user's domains.
func (r *MemoryRepository) ListByUser(_ context.Context, userID int64) ([]Domain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := []Domain{}
	for _, d := range r.domains {
		if d.UserID == userID {
			list = append(list, d)
		}
	}
	return list, nil
}
