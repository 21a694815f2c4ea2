package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront-orders/internal/domain/user"
)

const (
	getUserByIDSQL = `SELECT id, name, email, is_subscribed, subscription_expiry,
		subscription_cost, discounts_used, last_discount_used
		FROM users WHERE id = $1`

	recordSubscriptionDiscountSQL = `UPDATE users
		SET discounts_used = discounts_used + 1, last_discount_used = $2
		WHERE id = $1`
)

var _ user.Repository = (*UserRepository)(nil)

// UserRepository implements user.Repository backed by PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a UserRepository that uses the given pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID returns a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var (
		u      user.User
		expiry *time.Time
	)
	err := conn(ctx, r.pool).QueryRow(ctx, getUserByIDSQL, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Subscription.IsSubscribed, &expiry,
		&u.Subscription.Cost, &u.DiscountsUsed, &u.LastDiscountUsed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("getting user %q: %w", id, err)
	}
	if expiry != nil {
		u.Subscription.Expiry = *expiry
	}
	return &u, nil
}

// RecordSubscriptionDiscount increments the user's subscription discount
// counter.
func (r *UserRepository) RecordSubscriptionDiscount(ctx context.Context, id string, at time.Time) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, recordSubscriptionDiscountSQL, id, at)
	if err != nil {
		return fmt.Errorf("recording subscription discount for %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}
