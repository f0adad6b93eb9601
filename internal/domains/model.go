package domains

import "time"

// Domain is a registered domain owned by a user.
type Domain struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	DomainName string    `json:"domainName"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// SearchResult reports availability and price for one candidate name.
type SearchResult struct {
	Domain    string  `json:"domain"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}
