package hosting

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists orders and hosting accounts.
type Repository interface {
	// Purchase atomically records a completed order and provisions its
	// hosting account, returning the order id.
	Purchase(ctx context.Context, userID int64, plan string, amount float64) (int64, error)
	OrdersByUser(ctx context.Context, userID int64, limit int) ([]Order, error)
	AccountsByUser(ctx context.Context, userID int64) ([]Account, error)
	CountOrders(ctx context.Context) (int64, error)
	CountActiveAccounts(ctx context.Context) (int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed hosting repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Purchase runs the order/account writes in a single transaction so a crash
// mid-purchase never leaves a completed order without its hosting account.
func (r *PostgresRepository) Purchase(ctx context.Context, userID int64, plan string, amount float64) (int64, error) {
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	var orderID int64
	if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id, plan_type, amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, plan, amount, OrderStatusPending, now).Scan(&orderID); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $1, payment_date = $2 WHERE id = $3`,
		OrderStatusCompleted, now, orderID); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO hosting_accounts (user_id, order_id, plan_type, status, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, orderID, plan, AccountStatusActive, now, now.Add(accountTerm)); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}

// OrdersByUser returns the user's most recent orders.
func (r *PostgresRepository) OrdersByUser(ctx context.Context, userID int64, limit int) ([]Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, plan_type, amount, status, payment_date, created_at
        FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.PlanType, &o.Amount, &o.Status, &o.PaymentDate, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.CreatedAt = o.CreatedAt.UTC()
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// AccountsByUser returns the user's hosting accounts, newest first.
func (r *PostgresRepository) AccountsByUser(ctx context.Context, userID int64) ([]Account, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, order_id, plan_type, status, created_at, expires_at
        FROM hosting_accounts WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []Account{}
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.OrderID, &a.PlanType, &a.Status, &a.CreatedAt, &a.ExpiresAt); err != nil {
			return nil, err
		}
		a.CreatedAt = a.CreatedAt.UTC()
		a.ExpiresAt = a.ExpiresAt.UTC()
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// CountOrders returns the total number of orders.
func (r *PostgresRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

// CountActiveAccounts returns the number of active hosting accounts.
func (r *PostgresRepository) CountActiveAccounts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hosting_accounts WHERE status = $1`, AccountStatusActive).Scan(&count)
	return count, err
}

// CompletedRevenue sums the amounts of all completed orders.
func (r *PostgresRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM orders WHERE status = $1`, OrderStatusCompleted).Scan(&total)
	return total, err
}
