// Package discount computes the final price of an order from its base price,
// an optional coupon and the buyer's subscription state.
package discount

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/user"
)

// DefaultSubscriptionAmount is the flat amount deducted for an active
// subscription.
var DefaultSubscriptionAmount = decimal.NewFromInt(249)

// Quote is the full price breakdown for a base price.
type Quote struct {
	BasePrice      decimal.Decimal
	CouponDiscount decimal.Decimal
	// Coupon is nil when no code was supplied.
	Coupon *coupon.Coupon

	// SubscriptionDiscount is the nominal subscription amount when applied,
	// zero otherwise. The amount actually deducted may be lower because the
	// price is floored at zero.
	SubscriptionDiscount decimal.Decimal
	SubscriptionApplied  bool
	SubscriptionCost     decimal.Decimal

	FinalPrice decimal.Decimal
}

// Engine computes quotes. It never mutates coupons, users or inventory.
type Engine struct {
	coupons            coupon.Repository
	subscriptionAmount decimal.Decimal
	now                func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSubscriptionAmount overrides DefaultSubscriptionAmount.
func WithSubscriptionAmount(amount decimal.Decimal) Option {
	return func(e *Engine) {
		e.subscriptionAmount = amount
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine returns an Engine reading coupons from the given repository.
func NewEngine(coupons coupon.Repository, opts ...Option) *Engine {
	e := &Engine{
		coupons:            coupons,
		subscriptionAmount: DefaultSubscriptionAmount,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Quote applies the coupon identified by code (if any) and then the
// subscription discount (if active) to basePrice. Coupon rejections are
// returned as errors wrapping coupon.ErrCoupon.
func (e *Engine) Quote(ctx context.Context, basePrice decimal.Decimal, code string, sub user.Subscription) (Quote, error) {
	now := e.now()
	q := Quote{
		BasePrice:            basePrice,
		CouponDiscount:       decimal.Zero,
		SubscriptionDiscount: decimal.Zero,
		SubscriptionCost:     decimal.Zero,
	}

	price := basePrice
	if code = coupon.NormalizeCode(code); code != "" {
		c, err := e.coupons.FindByCode(ctx, code)
		if err != nil {
			return Quote{}, err
		}
		if err := coupon.Check(c, basePrice, now); err != nil {
			return Quote{}, err
		}
		amount, err := coupon.Apply(c, basePrice)
		if err != nil {
			return Quote{}, err
		}
		q.Coupon = c
		q.CouponDiscount = amount
		price = floorAtZero(basePrice.Sub(amount))
	}

	if sub.IsActive(now) {
		q.SubscriptionApplied = true
		q.SubscriptionDiscount = e.subscriptionAmount
		q.SubscriptionCost = sub.Cost
		price = floorAtZero(price.Sub(e.subscriptionAmount))
	}

	q.FinalPrice = price
	return q, nil
}

func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
