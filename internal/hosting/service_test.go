package hosting

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPurchaseProvisionsAccount(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	orderID, err := svc.Purchase(ctx, 1, "premium", 29.99)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if orderID == 0 {
		t.Fatalf("expected assigned order id")
	}

	orders, err := svc.RecentOrders(ctx, 1)
	if err != nil {
		t.Fatalf("recent orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	order := orders[0]
	if order.Status != OrderStatusCompleted {
		t.Fatalf("expected completed order, got %s", order.Status)
	}
	if order.PaymentDate == nil {
		t.Fatalf("expected payment date on completed order")
	}
	if order.Amount != 29.99 {
		t.Fatalf("expected amount 29.99, got %v", order.Amount)
	}

	accounts, err := svc.Accounts(ctx, 1)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 hosting account, got %d", len(accounts))
	}
	account := accounts[0]
	if account.Status != AccountStatusActive {
		t.Fatalf("expected active account, got %s", account.Status)
	}
	if account.OrderID != orderID {
		t.Fatalf("expected account tied to order %d, got %d", orderID, account.OrderID)
	}
	if got := account.ExpiresAt.Sub(account.CreatedAt); got != accountTerm {
		t.Fatalf("expected %v term, got %v", accountTerm, got)
	}
}

func TestPurchaseValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Purchase(ctx, 1, "", 9.99); !errors.Is(err, ErrInvalidPurchase) {
		t.Fatalf("expected ErrInvalidPurchase for empty plan, got %v", err)
	}
	if _, err := svc.Purchase(ctx, 1, "starter", 0); !errors.Is(err, ErrInvalidPurchase) {
		t.Fatalf("expected ErrInvalidPurchase for zero amount, got %v", err)
	}
}

func TestRecentOrdersLimitAndOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < recentOrderLimit+3; i++ {
		if _, err := svc.Purchase(ctx, 1, "starter", 9.99); err != nil {
			t.Fatalf("purchase %d: %v", i, err)
		}
		time.Sleep(time.Millisecond) // distinct created_at for ordering
	}
	if _, err := svc.Purchase(ctx, 2, "starter", 9.99); err != nil {
		t.Fatalf("purchase for other user: %v", err)
	}

	orders, err := svc.RecentOrders(ctx, 1)
	if err != nil {
		t.Fatalf("recent orders: %v", err)
	}
	if len(orders) != recentOrderLimit {
		t.Fatalf("expected %d orders, got %d", recentOrderLimit, len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].CreatedAt.After(orders[i-1].CreatedAt) {
			t.Fatalf("orders not sorted newest first at index %d", i)
		}
	}
	for _, o := range orders {
		if o.UserID != 1 {
			t.Fatalf("expected only user 1 orders, got user %d", o.UserID)
		}
	}
}

func TestStatsCounters(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Purchase(ctx, 1, "starter", 9.99); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if _, err := repo.Purchase(ctx, 2, "premium", 29.99); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	orders, err := repo.CountOrders(ctx)
	if err != nil || orders != 2 {
		t.Fatalf("expected 2 orders, got %d (err %v)", orders, err)
	}
	active, err := repo.CountActiveAccounts(ctx)
	if err != nil || active != 2 {
		t.Fatalf("expected 2 active accounts, got %d (err %v)", active, err)
	}
	revenue, err := repo.CompletedRevenue(ctx)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if revenue < 39.97 || revenue > 39.99 {
		t.Fatalf("expected revenue ~39.98, got %v", revenue)
	}
}
