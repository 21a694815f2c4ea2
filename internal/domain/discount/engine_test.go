package discount

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/user"
)

type mockCouponRepo struct {
	coupons    map[string]*coupon.Coupon
	findErr    error
	increments int
}

func (m *mockCouponRepo) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	c, ok := m.coupons[code]
	if !ok {
		return nil, coupon.ErrInvalidCoupon
	}
	cp := *c
	return &cp, nil
}

func (m *mockCouponRepo) IncrementUsage(_ context.Context, _ string) (bool, error) {
	m.increments++
	return true, nil
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newCoupon(code string, typ coupon.DiscountType, value string) *coupon.Coupon {
	return &coupon.Coupon{
		Code:          code,
		DiscountType:  typ,
		DiscountValue: d(value),
		MinPurchase:   decimal.Zero,
		Status:        coupon.StatusActive,
		ValidFrom:     fixedNow.Add(-24 * time.Hour),
		ValidUntil:    fixedNow.Add(24 * time.Hour),
	}
}

func newEngine(repo *mockCouponRepo, opts ...Option) *Engine {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewEngine(repo, opts...)
}

func activeSub() user.Subscription {
	return user.Subscription{IsSubscribed: true, Expiry: fixedNow.Add(30 * 24 * time.Hour), Cost: d("999")}
}

func TestEngine_Quote(t *testing.T) {
	repo := &mockCouponRepo{coupons: map[string]*coupon.Coupon{
		"FLAT100": newCoupon("FLAT100", coupon.DiscountFlat, "100"),
		"FLAT500": newCoupon("FLAT500", coupon.DiscountFlat, "500"),
		"PCT18":   newCoupon("PCT18", coupon.DiscountPercentage, "18"),
	}}

	tests := []struct {
		name           string
		base           string
		code           string
		sub            user.Subscription
		wantCoupon     string
		wantSubApplied bool
		wantFinal      string
	}{
		{
			name:      "no coupon no subscription",
			base:      "1000",
			wantFinal: "1000",
		},
		{
			name:       "flat coupon only",
			base:       "1000",
			code:       "FLAT100",
			wantCoupon: "100",
			wantFinal:  "900",
		},
		{
			name:       "percentage coupon only",
			base:       "100",
			code:       "PCT18",
			wantCoupon: "18",
			wantFinal:  "82",
		},
		{
			name:           "flat coupon and subscription",
			base:           "1000",
			code:           "FLAT100",
			sub:            activeSub(),
			wantCoupon:     "100",
			wantSubApplied: true,
			wantFinal:      "651",
		},
		{
			name:           "subscription floors at zero",
			base:           "200",
			sub:            activeSub(),
			wantSubApplied: true,
			wantFinal:      "0",
		},
		{
			name:       "flat coupon larger than base is capped",
			base:       "300",
			code:       "FLAT500",
			wantCoupon: "300",
			wantFinal:  "0",
		},
		{
			name:      "expired subscription is ignored",
			base:      "1000",
			sub:       user.Subscription{IsSubscribed: true, Expiry: fixedNow.Add(-time.Second)},
			wantFinal: "1000",
		},
		{
			name:       "code is trimmed",
			base:       "1000",
			code:       "  FLAT100 ",
			wantCoupon: "100",
			wantFinal:  "900",
		},
		{
			name:       "code is case-insensitive",
			base:       "1000",
			code:       "flat100",
			wantCoupon: "100",
			wantFinal:  "900",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(repo)
			q, err := e.Quote(context.Background(), d(tt.base), tt.code, tt.sub)
			require.NoError(t, err)

			assert.True(t, d(tt.base).Equal(q.BasePrice))
			assert.True(t, d(tt.wantFinal).Equal(q.FinalPrice), "final price: want %s, got %s", tt.wantFinal, q.FinalPrice)
			assert.Equal(t, tt.wantSubApplied, q.SubscriptionApplied)

			if tt.wantCoupon == "" {
				assert.Nil(t, q.Coupon)
				assert.True(t, q.CouponDiscount.IsZero())
			} else {
				require.NotNil(t, q.Coupon)
				assert.True(t, d(tt.wantCoupon).Equal(q.CouponDiscount), "coupon discount: want %s, got %s", tt.wantCoupon, q.CouponDiscount)
			}

			if tt.wantSubApplied {
				assert.True(t, DefaultSubscriptionAmount.Equal(q.SubscriptionDiscount))
				assert.True(t, tt.sub.Cost.Equal(q.SubscriptionCost))
			} else {
				assert.True(t, q.SubscriptionDiscount.IsZero())
			}

			assert.False(t, q.FinalPrice.IsNegative())
			assert.True(t, q.FinalPrice.LessThanOrEqual(q.BasePrice))
		})
	}

	assert.Zero(t, repo.increments, "quote must not touch coupon usage")
}

func TestEngine_Quote_CouponRejections(t *testing.T) {
	inactive := newCoupon("OFF", coupon.DiscountFlat, "10")
	inactive.Status = "disabled"

	exhausted := newCoupon("DONE", coupon.DiscountFlat, "10")
	exhausted.UsageLimit = 3
	exhausted.UsedCount = 3

	minimum := newCoupon("BIG", coupon.DiscountFlat, "10")
	minimum.MinPurchase = d("500")

	repo := &mockCouponRepo{coupons: map[string]*coupon.Coupon{
		"OFF":  inactive,
		"DONE": exhausted,
		"BIG":  minimum,
	}}

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"unknown code", "NOPE", coupon.ErrInvalidCoupon},
		{"inactive", "OFF", coupon.ErrCouponNotActive},
		{"exhausted", "DONE", coupon.ErrCouponExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newEngine(repo).Quote(context.Background(), d("100"), tt.code, activeSub())
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, coupon.ErrCoupon)
		})
	}

	t.Run("below minimum", func(t *testing.T) {
		_, err := newEngine(repo).Quote(context.Background(), d("100"), "BIG", user.Subscription{})
		var bm *coupon.BelowMinimumError
		require.ErrorAs(t, err, &bm)
		assert.True(t, d("500").Equal(bm.MinPurchase))
		assert.ErrorIs(t, err, coupon.ErrCoupon)
	})

	t.Run("repository failure is not a coupon error", func(t *testing.T) {
		failing := &mockCouponRepo{findErr: errors.New("connection reset")}
		_, err := newEngine(failing).Quote(context.Background(), d("100"), "ANY", user.Subscription{})
		require.Error(t, err)
		assert.NotErrorIs(t, err, coupon.ErrCoupon)
	})
}

func TestEngine_Quote_SubscriptionAmountOption(t *testing.T) {
	e := newEngine(&mockCouponRepo{}, WithSubscriptionAmount(d("50")))

	q, err := e.Quote(context.Background(), d("120"), "", activeSub())
	require.NoError(t, err)
	assert.True(t, d("70").Equal(q.FinalPrice))
	assert.True(t, d("50").Equal(q.SubscriptionDiscount))
}
