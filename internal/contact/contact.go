package contact

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Message is a stored contact form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository persists contact messages.
type Repository interface {
	Create(ctx context.Context, m Message) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed contact repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a contact message.
func (r *PostgresRepository) Create(ctx context.Context, m Message) error {
	_, err := r.db.Exec(ctx, `INSERT INTO contact_messages (name, email, subject, message, created_at)
        VALUES ($1, $2, $3, $4, $5)`, m.Name, m.Email, m.Subject, m.Body, m.CreatedAt.UTC())
	return err
}
