package dashboard

import (
	"context"

	"github.com/myhost-cloud/myhost/internal/domains"
	"github.com/myhost-cloud/myhost/internal/hosting"
	"github.com/myhost-cloud/myhost/internal/identity"
)

// Data is the aggregate view behind GET /api/dashboard.
type Data struct {
	User            identity.Profile  `json:"user"`
	HostingAccounts []hosting.Account `json:"hostingAccounts"`
	Orders          []hosting.Order   `json:"orders"`
	Domains         []domains.Domain  `json:"domains"`
}

// Service assembles the per-user dashboard from the underlying stores.
type Service struct {
	users   *identity.Service
	hosting *hosting.Service
	domains *domains.Service
}

// NewService builds a dashboard service instance.
func NewService(users *identity.Service, hostingSvc *hosting.Service, domainSvc *domains.Service) *Service {
	return &Service{users: users, hosting: hostingSvc, domains: domainSvc}
}

// Load gathers the caller's profile, hosting accounts, recent orders and
// domains. Each read runs sequentially on the request context; any store
// failure aborts the whole aggregation.
func (s *Service) Load(ctx context.Context, userID int64) (Data, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Data{}, err
	}

	accounts, err := s.hosting.Accounts(ctx, userID)
	if err != nil {
		return Data{}, err
	}

	orders, err := s.hosting.RecentOrders(ctx, userID)
	if err != nil {
		return Data{}, err
	}

	userDomains, err := s.domains.ListByUser(ctx, userID)
	if err != nil {
		return Data{}, err
	}

	return Data{
		User:            user.Profile(),
		HostingAccounts: accounts,
		Orders:          orders,
		Domains:         userDomains,
	}, nil
}
