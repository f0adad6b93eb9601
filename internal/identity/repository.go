package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists users.
type Repository interface {
	// Create inserts a user and returns the assigned id. Email uniqueness is
	// enforced atomically by the store; a duplicate yields ErrDuplicateEmail.
	Create(ctx context.Context, user User) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	CountUsers(ctx context.Context) (int64, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, full_name, email, password_hash, phone, is_admin, is_active, created_at, last_login_at`

// Create inserts a new user relying on the users email unique constraint to
// serialize concurrent registrations for the same address.
func (r *PostgresRepository) Create(ctx context.Context, user User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `INSERT INTO users (full_name, email, password_hash, phone, is_admin, created_at)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		user.FullName, user.Email, user.PasswordHash, user.Phone, user.IsAdmin, user.CreatedAt.UTC()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return id, nil
}

// FindByEmail fetches a user by its normalized email address.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// FindByID fetches a user by primary key.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// TouchLastLogin records the most recent successful authentication.
func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $1 WHERE id = $2`, at.UTC(), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUsers returns the total number of registered users.
func (r *PostgresRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Phone,
		&user.IsAdmin, &user.IsActive, &user.CreatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}
