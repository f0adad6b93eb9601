package domains

import (
	"context"
	"errors"
	"strings"
)

// ErrMissingName signals a search without a domain name.
var ErrMissingName = errors.New("domain name is required")

// suffixes are the extensions offered by the storefront. Availability is
// checked against the local domains table, not a registrar.
var suffixes = []string{".com", ".net", ".org", ".us", ".in", ".co.uk"}

// suffixPrice is the listed price per extension. Currently flat.
const suffixPrice = 9.99

// Service answers domain availability searches.
type Service struct {
	repo Repository
}

// NewService builds a domain service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search checks each offered suffix for the given base name.
func (s *Service) Search(ctx context.Context, name string) ([]SearchResult, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrMissingName
	}

	results := make([]SearchResult, 0, len(suffixes))
	for _, suffix := range suffixes {
		fqdn := name + suffix
		taken, err := s.repo.Exists(ctx, fqdn)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{Domain: fqdn, Available: !taken, Price: suffixPrice})
	}
	return results, nil
}

// ListByUser returns the domains owned by the user.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Domain, error) {
	return s.repo.ListByUser(ctx, userID)
}
