package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/returns"
)

const returnColumns = `id, user_id, order_id, product_id, quantity, status,
	rejection_reason, received, created_at, updated_at`

const (
	createReturnSQL = `INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	getReturnByIDSQL = `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`

	listReturnsSQL = `SELECT ` + returnColumns + ` FROM returns
		WHERE ($1 = '' OR user_id = $1)
		  AND ($2 = '' OR order_id = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY created_at DESC, id LIMIT $4 OFFSET $5`

	compareAndSetReturnStatusSQL = `UPDATE returns
		SET status = $3, rejection_reason = $4, updated_at = $5
		WHERE id = $1 AND status = $2`

	markReturnReceivedSQL = `UPDATE returns
		SET received = TRUE, updated_at = CASE WHEN received THEN updated_at ELSE $2 END
		WHERE id = $1
		RETURNING ` + returnColumns

	requestedQuantitySQL = `SELECT COALESCE(SUM(quantity), 0) FROM returns
		WHERE order_id = $1 AND product_id = $2 AND status <> 'return_rejected'`

	approvedQuantitiesSQL = `SELECT product_id, SUM(quantity) FROM returns
		WHERE order_id = $1 AND status = 'approved'
		GROUP BY product_id`
)

var (
	_ returns.Repository       = (*ReturnRepository)(nil)
	_ order.ReturnedQuantities = (*ReturnRepository)(nil)
)

// ReturnRepository implements returns.Repository backed by PostgreSQL.
type ReturnRepository struct {
	pool *pgxpool.Pool
}

// NewReturnRepository returns a ReturnRepository that uses the given pool.
func NewReturnRepository(pool *pgxpool.Pool) *ReturnRepository {
	return &ReturnRepository{pool: pool}
}

// Create persists a new return.
func (r *ReturnRepository) Create(ctx context.Context, rec *returns.Return) error {
	_, err := conn(ctx, r.pool).Exec(ctx, createReturnSQL,
		rec.ID, rec.UserID, rec.OrderID, rec.ProductID, rec.Quantity, string(rec.Status),
		rec.RejectionReason, rec.Received, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating return %q: %w", rec.ID, err)
	}
	return nil
}

// GetByID returns a return by id.
func (r *ReturnRepository) GetByID(ctx context.Context, id string) (*returns.Return, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, getReturnByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting return %q: %w", id, err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanReturn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, returns.ErrNotFound
		}
		return nil, fmt.Errorf("getting return %q: %w", id, err)
	}
	return &rec, nil
}

// List returns returns matching filter, newest first.
func (r *ReturnRepository) List(ctx context.Context, filter returns.ListFilter) ([]returns.Return, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, listReturnsSQL,
		filter.UserID, filter.OrderID, string(filter.Status), filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("listing returns: %w", err)
	}
	return pgx.CollectRows(rows, scanReturn)
}

// CompareAndSetStatus updates status and reason only while the status still
// equals from.
func (r *ReturnRepository) CompareAndSetStatus(ctx context.Context, id string, from, to returns.Status, reason string, at time.Time) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, compareAndSetReturnStatusSQL, id, string(from), string(to), reason, at)
	if err != nil {
		return false, fmt.Errorf("setting status of return %q: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkReceived sets the received flag. Repeating it keeps the original
// timestamp.
func (r *ReturnRepository) MarkReceived(ctx context.Context, id string, at time.Time) (*returns.Return, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, markReturnReceivedSQL, id, at)
	if err != nil {
		return nil, fmt.Errorf("marking return %q received: %w", id, err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanReturn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, returns.ErrNotFound
		}
		return nil, fmt.Errorf("marking return %q received: %w", id, err)
	}
	return &rec, nil
}

// RequestedQuantity sums non-rejected return quantities for a product of an
// order.
func (r *ReturnRepository) RequestedQuantity(ctx context.Context, orderID, productID string) (int, error) {
	var n int
	if err := conn(ctx, r.pool).QueryRow(ctx, requestedQuantitySQL, orderID, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("summing returns of order %q: %w", orderID, err)
	}
	return n, nil
}

// ApprovedQuantities sums approved return quantities of an order per product.
func (r *ReturnRepository) ApprovedQuantities(ctx context.Context, orderID string) (map[string]int, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, approvedQuantitiesSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("summing approved returns of order %q: %w", orderID, err)
	}
	out := make(map[string]int)
	var (
		productID string
		n         int
	)
	if _, err := pgx.ForEachRow(rows, []any{&productID, &n}, func() error {
		out[productID] = n
		return nil
	}); err != nil {
		return nil, fmt.Errorf("summing approved returns of order %q: %w", orderID, err)
	}
	return out, nil
}

func scanReturn(row pgx.CollectableRow) (returns.Return, error) {
	var (
		rec    returns.Return
		status string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.OrderID, &rec.ProductID, &rec.Quantity, &status,
		&rec.RejectionReason, &rec.Received, &rec.CreatedAt, &rec.UpdatedAt,
	)
	rec.Status = returns.Status(status)
	return rec, err
}
