package hosting

import (
	"context"
	"errors"
)

// ErrInvalidPurchase signals a purchase with a missing plan or non-positive amount.
var ErrInvalidPurchase = errors.New("plan and amount are required")

// recentOrderLimit caps the order history shown on the dashboard.
const recentOrderLimit = 10

// Service exposes hosting plan purchases and per-user listings.
type Service struct {
	repo Repository
}

// NewService builds a hosting service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Purchase records a completed order and provisions the hosting account.
func (s *Service) Purchase(ctx context.Context, userID int64, plan string, amount float64) (int64, error) {
	if plan == "" || amount <= 0 {
		return 0, ErrInvalidPurchase
	}
	return s.repo.Purchase(ctx, userID, plan, amount)
}

// RecentOrders returns the user's latest orders for the dashboard.
func (s *Service) RecentOrders(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.OrdersByUser(ctx, userID, recentOrderLimit)
}

// Accounts returns all hosting accounts owned by the user.
func (s *Service) Accounts(ctx context.Context, userID int64) ([]Account, error) {
	return s.repo.AccountsByUser(ctx, userID)
}
