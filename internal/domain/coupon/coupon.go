package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported coupon discount strategies.
type DiscountType string

const (
	// DiscountPercentage deducts a percentage of the base price.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFlat deducts a fixed amount capped at the base price.
	DiscountFlat DiscountType = "flat"
)

// StatusActive is the only coupon status that allows redemption.
const StatusActive = "active"

var (
	// ErrCoupon is the parent of every coupon rejection reason.
	ErrCoupon = errors.New("coupon rejected")
	// ErrInvalidCoupon is returned when no coupon exists for the code.
	ErrInvalidCoupon = fmt.Errorf("%w: invalid coupon code", ErrCoupon)
	// ErrCouponNotActive is returned when the coupon is disabled or outside
	// its validity window.
	ErrCouponNotActive = fmt.Errorf("%w: coupon is not valid at this time", ErrCoupon)
	// ErrCouponExhausted is returned when the coupon reached its usage limit.
	ErrCouponExhausted = fmt.Errorf("%w: coupon usage limit reached", ErrCoupon)
)

// BelowMinimumError is returned when the base price is below the coupon's
// minimum purchase amount.
type BelowMinimumError struct {
	Code        string
	MinPurchase decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum purchase for coupon %s is %s", e.Code, e.MinPurchase.StringFixed(2))
}

// Is reports ErrCoupon as a parent so callers can classify all coupon
// rejections at once.
func (e *BelowMinimumError) Is(target error) bool {
	return target == ErrCoupon
}

// Coupon is an admin-authored discount rule. It is read-only to this service.
type Coupon struct {
	Code          string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinPurchase   decimal.Decimal
	UsageLimit    int
	UsedCount     int
	Status        string
	ValidFrom     time.Time
	ValidUntil    time.Time
}

// NormalizeCode returns the stored form of a coupon code. Codes are stored
// upper-case and matched case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Repository provides lookup of coupons by code.
type Repository interface {
	// FindByCode returns ErrInvalidCoupon when no coupon matches code.
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	// IncrementUsage bumps used_count only while the coupon is below its
	// usage limit. It reports false when the limit has been reached.
	IncrementUsage(ctx context.Context, code string) (bool, error)
}
