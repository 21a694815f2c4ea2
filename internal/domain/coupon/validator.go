package coupon

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Check verifies that c can be redeemed against basePrice at now. Checks run
// in a fixed order and the first failure wins: status and validity window,
// usage limit, minimum purchase.
func Check(c *Coupon, basePrice decimal.Decimal, now time.Time) error {
	if c == nil {
		return ErrInvalidCoupon
	}
	if c.Status != StatusActive || now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return ErrCouponNotActive
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return ErrCouponExhausted
	}
	if basePrice.LessThan(c.MinPurchase) {
		return &BelowMinimumError{Code: c.Code, MinPurchase: c.MinPurchase}
	}
	return nil
}

// Apply returns the absolute amount c deducts from basePrice. Flat discounts
// are capped at the base price; percentage discounts are exact and not
// rounded.
func Apply(c *Coupon, basePrice decimal.Decimal) (decimal.Decimal, error) {
	switch c.DiscountType {
	case DiscountFlat:
		return floorAtZero(decimal.Min(c.DiscountValue, basePrice)), nil
	case DiscountPercentage:
		return floorAtZero(basePrice.Mul(c.DiscountValue).Div(hundred)), nil
	default:
		return decimal.Zero, errors.Errorf("unsupported discount type: %q", c.DiscountType)
	}
}

// floorAtZero clamps negative values to zero.
func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
