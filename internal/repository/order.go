package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/order"
)

const orderColumns = `id, user_id, items, shipping_address_id,
	payment_id, payment_status, payment_method, original_price, total_price,
	coupon_code, coupon_discount_type, coupon_discount_value, coupon_discount_amount,
	subscription_applied, subscription_amount, subscription_cost,
	status, idempotency_key, created_at, updated_at`

const (
	createOrderSQL = `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	getOrderByIDSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	getOrderForUserSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`

	listOrdersByUserSQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE user_id = $1 ORDER BY created_at DESC, id`

	listOrdersSQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`

	findOrderByIdempotencyKeySQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE user_id = $1 AND idempotency_key = $2`

	compareAndSetOrderStatusSQL = `UPDATE orders SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2`

	orderIdempotencyIndex = "orders_idempotency_idx"
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists a new order. The order items are serialized to JSON for
// storage in the JSONB column.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshaling order items: %w", err)
	}

	var (
		couponCode, couponType *string
		couponValue, couponAmt decimal.NullDecimal
		idempotencyKey         *string
	)
	if c := o.Coupon; c != nil {
		dt := string(c.DiscountType)
		couponCode, couponType = &c.Code, &dt
		couponValue = decimal.NewNullDecimal(c.DiscountValue)
		couponAmt = decimal.NewNullDecimal(c.DiscountAmount)
	}
	if o.IdempotencyKey != "" {
		idempotencyKey = &o.IdempotencyKey
	}

	_, err = conn(ctx, r.pool).Exec(ctx, createOrderSQL,
		o.ID, o.UserID, itemsJSON, o.ShippingAddressID,
		o.Payment.ID, o.Payment.Status, o.Payment.Method, o.Payment.OriginalPrice, o.TotalPrice,
		couponCode, couponType, couponValue, couponAmt,
		o.Subscription.Applied, o.Subscription.Amount, o.Subscription.SubscriptionCost,
		string(o.Status), idempotencyKey, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, orderIdempotencyIndex) {
			return order.ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("creating order %q: %w", o.ID, err)
	}
	return nil
}

// GetByID returns an order by id.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	return r.getOne(ctx, getOrderByIDSQL, id)
}

// GetForUser returns an order by id when it belongs to userID.
func (r *OrderRepository) GetForUser(ctx context.Context, id, userID string) (*order.Order, error) {
	return r.getOne(ctx, getOrderForUserSQL, id, userID)
}

// FindByIdempotencyKey returns the order a user placed with key.
func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, userID, key string) (*order.Order, error) {
	return r.getOne(ctx, findOrderByIdempotencyKeySQL, userID, key)
}

func (r *OrderRepository) getOne(ctx context.Context, sql string, args ...any) (*order.Order, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return &o, nil
}

// ListByUser returns a user's orders, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, listOrdersByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("listing orders of %q: %w", userID, err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// List returns orders matching filter, newest first.
func (r *OrderRepository) List(ctx context.Context, filter order.ListFilter) ([]order.Order, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, listOrdersSQL, string(filter.Status), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// CompareAndSetStatus updates the status only while it still equals from.
func (r *OrderRepository) CompareAndSetStatus(ctx context.Context, id string, from, to order.Status, at time.Time) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, compareAndSetOrderStatusSQL, id, string(from), string(to), at)
	if err != nil {
		return false, fmt.Errorf("setting status of order %q: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o                      order.Order
		itemsJSON              []byte
		status                 string
		couponCode, couponType *string
		couponValue, couponAmt decimal.NullDecimal
		idempotencyKey         *string
	)
	err := row.Scan(
		&o.ID, &o.UserID, &itemsJSON, &o.ShippingAddressID,
		&o.Payment.ID, &o.Payment.Status, &o.Payment.Method, &o.Payment.OriginalPrice, &o.TotalPrice,
		&couponCode, &couponType, &couponValue, &couponAmt,
		&o.Subscription.Applied, &o.Subscription.Amount, &o.Subscription.SubscriptionCost,
		&status, &idempotencyKey, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return o, fmt.Errorf("unmarshaling items of order %q: %w", o.ID, err)
	}
	o.Status = order.Status(status)
	if couponCode != nil {
		o.Coupon = &order.AppliedCoupon{
			Code:           *couponCode,
			DiscountValue:  couponValue.Decimal,
			DiscountAmount: couponAmt.Decimal,
		}
		if couponType != nil {
			o.Coupon.DiscountType = coupon.DiscountType(*couponType)
		}
	}
	if idempotencyKey != nil {
		o.IdempotencyKey = *idempotencyKey
	}
	return o, nil
}
