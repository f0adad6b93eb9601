package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/myhost-cloud/myhost/internal/hosting"
	"github.com/myhost-cloud/myhost/internal/identity"
)

const statsCacheKey = "admin:stats:v1"

// Stats aggregates storefront-wide counters for the admin view.
type Stats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalOrders   int64   `json:"totalOrders"`
	ActiveHosting int64   `json:"activeHosting"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// Service computes admin statistics with a short-lived Redis cache in front.
// Cache failures are non-fatal: the counts are recomputed from the store.
type Service struct {
	users    identity.Repository
	hosting  hosting.Repository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewService builds an admin stats service. cache may be nil.
func NewService(users identity.Repository, hostingRepo hosting.Repository, cache *redis.Client, cacheTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{users: users, hosting: hostingRepo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Stats returns the aggregate counters, served from cache when fresh.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats Stats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return stats, nil
			}
		}
	}

	stats, err := s.collect(ctx)
	if err != nil {
		return Stats{}, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("stats cache write failed", "error", err)
			}
		}
	}

	return stats, nil
}

func (s *Service) collect(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.TotalUsers, err = s.users.CountUsers(ctx); err != nil {
		return Stats{}, err
	}
	if stats.TotalOrders, err = s.hosting.CountOrders(ctx); err != nil {
		return Stats{}, err
	}
	if stats.ActiveHosting, err = s.hosting.CountActiveAccounts(ctx); err != nil {
		return Stats{}, err
	}
	if stats.TotalRevenue, err = s.hosting.CompletedRevenue(ctx); err != nil {
		return Stats{}, err
	}

	return stats, nil
}
