package newsletter

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadySubscribed signals a duplicate subscription attempt. Mapped to
// HTTP 409 at the handler boundary.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// Repository persists newsletter subscriptions.
type Repository interface {
	// Subscribe adds the email, relying on the store's unique constraint to
	// reject duplicates atomically.
	Subscribe(ctx context.Context, email string, at time.Time) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed subscriber repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Subscribe inserts a subscriber row.
func (r *PostgresRepository) Subscribe(ctx context.Context, email string, at time.Time) error {
	_, err := r.db.Exec(ctx, `INSERT INTO newsletter_subscribers (email, subscribed_at) VALUES ($1, $2)`,
		email, at.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

// MemoryRepository is an in-memory subscriber store for dev mode and tests.
type MemoryRepository struct {
	mu     sync.Mutex
	emails map[string]time.Time
}

// NewMemoryRepository builds an empty in-memory subscriber store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{emails: make(map[string]time.Time)}
}

// Subscribe adds the email, rejecting duplicates.
func (r *MemoryRepository) Subscribe(_ context.Context, email string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.emails[email]; exists {
		return ErrAlreadySubscribed
	}
	r.emails[email] = at.UTC()
	return nil
}
