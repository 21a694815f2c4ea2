package coupon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCheck(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := fixedNow.Add(-24 * time.Hour)
	tomorrow := fixedNow.Add(24 * time.Hour)

	active := func(mod func(c *Coupon)) *Coupon {
		c := &Coupon{
			Code:          "SAVE10",
			DiscountType:  DiscountPercentage,
			DiscountValue: d("10"),
			MinPurchase:   d("0"),
			Status:        StatusActive,
			ValidFrom:     yesterday,
			ValidUntil:    tomorrow,
		}
		if mod != nil {
			mod(c)
		}
		return c
	}

	tests := []struct {
		name    string
		coupon  *Coupon
		base    decimal.Decimal
		wantErr error
	}{
		{
			name:   "active coupon inside window",
			coupon: active(nil),
			base:   d("100"),
		},
		{
			name:    "missing coupon",
			coupon:  nil,
			base:    d("100"),
			wantErr: ErrInvalidCoupon,
		},
		{
			name:    "disabled coupon",
			coupon:  active(func(c *Coupon) { c.Status = "inactive" }),
			base:    d("100"),
			wantErr: ErrCouponNotActive,
		},
		{
			name:    "not yet valid",
			coupon:  active(func(c *Coupon) { c.ValidFrom = tomorrow; c.ValidUntil = tomorrow.Add(time.Hour) }),
			base:    d("100"),
			wantErr: ErrCouponNotActive,
		},
		{
			name:    "expired",
			coupon:  active(func(c *Coupon) { c.ValidUntil = yesterday.Add(time.Hour) }),
			base:    d("100"),
			wantErr: ErrCouponNotActive,
		},
		{
			name:   "window bounds are inclusive",
			coupon: active(func(c *Coupon) { c.ValidFrom = fixedNow; c.ValidUntil = fixedNow }),
			base:   d("100"),
		},
		{
			name:    "usage limit reached",
			coupon:  active(func(c *Coupon) { c.UsageLimit = 5; c.UsedCount = 5 }),
			base:    d("100"),
			wantErr: ErrCouponExhausted,
		},
		{
			name:   "usage below limit",
			coupon: active(func(c *Coupon) { c.UsageLimit = 5; c.UsedCount = 4 }),
			base:   d("100"),
		},
		{
			name:   "zero usage limit means unlimited",
			coupon: active(func(c *Coupon) { c.UsageLimit = 0; c.UsedCount = 9999 }),
			base:   d("100"),
		},
		{
			name:    "below minimum purchase",
			coupon:  active(func(c *Coupon) { c.MinPurchase = d("500") }),
			base:    d("499.99"),
			wantErr: &BelowMinimumError{Code: "SAVE10", MinPurchase: d("500")},
		},
		{
			name:   "exactly minimum purchase",
			coupon: active(func(c *Coupon) { c.MinPurchase = d("500") }),
			base:   d("500"),
		},
		{
			name:    "inactive wins over exhausted",
			coupon:  active(func(c *Coupon) { c.Status = "paused"; c.UsageLimit = 1; c.UsedCount = 1 }),
			base:    d("100"),
			wantErr: ErrCouponNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.coupon, tt.base, fixedNow)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, ErrCoupon)

			var bm *BelowMinimumError
			if want, ok := tt.wantErr.(*BelowMinimumError); ok {
				require.ErrorAs(t, err, &bm)
				assert.Equal(t, want.Code, bm.Code)
				assert.True(t, want.MinPurchase.Equal(bm.MinPurchase))
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		coupon     *Coupon
		base       decimal.Decimal
		wantAmount decimal.Decimal
		wantErr    string
	}{
		{
			name:       "flat 100 off 1000",
			coupon:     &Coupon{DiscountType: DiscountFlat, DiscountValue: d("100")},
			base:       d("1000"),
			wantAmount: d("100"),
		},
		{
			name:       "flat capped at base price",
			coupon:     &Coupon{DiscountType: DiscountFlat, DiscountValue: d("200")},
			base:       d("150"),
			wantAmount: d("150"),
		},
		{
			name:       "percentage 18 of 100",
			coupon:     &Coupon{DiscountType: DiscountPercentage, DiscountValue: d("18")},
			base:       d("100"),
			wantAmount: d("18"),
		},
		{
			name:       "percentage is exact, not rounded",
			coupon:     &Coupon{DiscountType: DiscountPercentage, DiscountValue: d("15")},
			base:       d("29.97"),
			wantAmount: d("4.4955"),
		},
		{
			name:       "percentage 100 equals base",
			coupon:     &Coupon{DiscountType: DiscountPercentage, DiscountValue: d("100")},
			base:       d("42.50"),
			wantAmount: d("42.50"),
		},
		{
			name:    "unsupported type",
			coupon:  &Coupon{DiscountType: DiscountType("free_lowest"), DiscountValue: d("1")},
			base:    d("10"),
			wantErr: "unsupported discount type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.coupon, tt.base)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantAmount.Equal(got), "expected amount %s, got %s", tt.wantAmount, got)
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	for in, want := range map[string]string{
		"FLAT100":     "FLAT100",
		"welcome15":   "WELCOME15",
		"  BigSpend ": "BIGSPEND",
		"":            "",
	} {
		assert.Equal(t, want, NormalizeCode(in), in)
	}
}
