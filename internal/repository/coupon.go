package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
)

const (
	getCouponByCodeSQL = `SELECT code, discount_type, discount_value, min_purchase,
		usage_limit, used_count, status, valid_from, valid_until
		FROM coupons WHERE UPPER(code) = $1`

	incrementCouponUsageSQL = `UPDATE coupons SET used_count = used_count + 1
		WHERE UPPER(code) = $1 AND (usage_limit = 0 OR used_count < usage_limit)`
)

var _ coupon.Repository = (*CouponRepository)(nil)

// CouponRepository implements coupon.Repository backed by PostgreSQL.
type CouponRepository struct {
	pool *pgxpool.Pool
}

// NewCouponRepository returns a CouponRepository that uses the given pool.
func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// FindByCode looks up a coupon by its code (case-insensitive, served by the
// unique index on UPPER(code)).
// Returns coupon.ErrInvalidCoupon when no matching coupon exists.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, getCouponByCodeSQL, coupon.NormalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("finding coupon by code %q: %w", code, err)
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coupon.ErrInvalidCoupon
		}
		return nil, fmt.Errorf("finding coupon by code %q: %w", code, err)
	}
	return &c, nil
}

// IncrementUsage atomically increments used_count while the coupon is below
// its usage limit.
func (r *CouponRepository) IncrementUsage(ctx context.Context, code string) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, incrementCouponUsageSQL, coupon.NormalizeCode(code))
	if err != nil {
		return false, fmt.Errorf("incrementing usage for coupon %q: %w", code, err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanCoupon(row pgx.CollectableRow) (coupon.Coupon, error) {
	var (
		c            coupon.Coupon
		discountType string
	)
	err := row.Scan(
		&c.Code, &discountType, &c.DiscountValue, &c.MinPurchase,
		&c.UsageLimit, &c.UsedCount, &c.Status, &c.ValidFrom, &c.ValidUntil,
	)
	c.DiscountType = coupon.DiscountType(discountType)
	return c, err
}
