package admin

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/myhost-cloud/myhost/internal/hosting"
	"github.com/myhost-cloud/myhost/internal/identity"
	"github.com/myhost-cloud/myhost/internal/logging"
)

func seedStores(t *testing.T) (identity.Repository, hosting.Repository) {
	t.Helper()
	ctx := context.Background()

	users := identity.NewMemoryRepository()
	if _, err := users.Create(ctx, identity.User{FullName: "Ann", Email: "ann@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := users.Create(ctx, identity.User{FullName: "Ben", Email: "ben@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	orders := hosting.NewMemoryRepository()
	if _, err := orders.Purchase(ctx, 1, "starter", 9.99); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if _, err := orders.Purchase(ctx, 2, "premium", 29.99); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	return users, orders
}

func TestStatsWithoutCache(t *testing.T) {
	users, orders := seedStores(t)
	svc := NewService(users, orders, nil, time.Minute, logging.Discard())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", stats.TotalUsers)
	}
	if stats.TotalOrders != 2 {
		t.Fatalf("expected 2 orders, got %d", stats.TotalOrders)
	}
	if stats.ActiveHosting != 2 {
		t.Fatalf("expected 2 active accounts, got %d", stats.ActiveHosting)
	}
	if stats.TotalRevenue < 39.97 || stats.TotalRevenue > 39.99 {
		t.Fatalf("expected revenue ~39.98, got %v", stats.TotalRevenue)
	}
}

func TestStatsServedFromCache(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	users, orders := seedStores(t)
	svc := NewService(users, orders, cache, time.Minute, logging.Discard())
	ctx := context.Background()

	first, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("first stats: %v", err)
	}

	// A later purchase is invisible until the cache entry expires.
	if _, err := orders.Purchase(ctx, 1, "business", 49.99); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	second, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("second stats: %v", err)
	}
	if second != first {
		t.Fatalf("expected cached stats %+v, got %+v", first, second)
	}

	mr.FastForward(2 * time.Minute)

	third, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("third stats: %v", err)
	}
	if third.TotalOrders != 3 {
		t.Fatalf("expected recomputed stats after expiry, got %+v", third)
	}
}

func TestStatsCacheFailureIsNonFatal(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	// Kill the backing server so every cache call errors.
	mr.Close()

	users, orders := seedStores(t)
	svc := NewService(users, orders, cache, time.Minute, logging.Discard())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats should fall through to the store: %v", err)
	}
	if stats.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", stats.TotalUsers)
	}
}
