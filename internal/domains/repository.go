package domains

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads registered domains.
type Repository interface {
	Exists(ctx context.Context, domainName string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]Domain, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed domain repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Exists reports whether the exact domain name is already registered.
func (r *PostgresRepository) Exists(ctx context.Context, domainName string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM domains WHERE domain_name = $1)`, domainName).Scan(&exists)
	return exists, err
}

// ListByUser returns the user's domains, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Domain, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, domain_name, status, created_at, expires_at
        FROM domains WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Domain{}
	for rows.Next() {
		var d Domain
		if err := rows.Scan(&d.ID, &d.UserID, &d.DomainName, &d.Status, &d.CreatedAt, &d.ExpiresAt); err != nil {
			return nil, err
		}
		d.CreatedAt = d.CreatedAt.UTC()
		d.ExpiresAt = d.ExpiresAt.UTC()
		list = append(list, d)
	}
	return list, rows.Err()
}
