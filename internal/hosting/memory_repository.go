package hosting

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu          sync.RWMutex
	nextOrderID int64
	nextAcctID  int64
	orders      []Order
	accounts    []Account
}

// NewMemoryRepository builds an in-memory hosting store for dev mode and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Purchase(_ context.Context, userID int64, plan string, amount float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextOrderID++
	r.nextAcctID++

	paymentDate := now
	r.orders = append(r.orders, Order{
		ID:          r.nextOrderID,
		UserID:      userID,
		PlanType:    plan,
		Amount:      amount,
		Status:      OrderStatusCompleted,
		PaymentDate: &paymentDate,
		CreatedAt:   now,
	})
	r.accounts = append(r.accounts, Account{
		ID:        r.nextAcctID,
		UserID:    userID,
		OrderID:   r.nextOrderID,
		PlanType:  plan,
		Status:    AccountStatusActive,
		CreatedAt: now,
		ExpiresAt: now.Add(accountTerm),
	})

	return r.nextOrderID, nil
}

func (r *memoryRepository) OrdersByUser(_ context.Context, userID int64, limit int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *memoryRepository) AccountsByUser(_ context.Context, userID int64) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := []Account{}
	for _, a := range r.accounts {
		if a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].CreatedAt.After(accounts[j].CreatedAt) })
	return accounts, nil
}

func (r *memoryRepository) CountOrders(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

func (r *memoryRepository) CountActiveAccounts(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, a := range r.accounts {
		if a.Status == AccountStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepository) CompletedRevenue(_ context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, o := range r.orders {
		if o.Status == OrderStatusCompleted {
			total += o.Amount
		}
	}
	return total, nil
}
