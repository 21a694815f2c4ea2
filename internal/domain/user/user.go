package user

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// Subscription is the loyalty subscription state of a user.
type Subscription struct {
	IsSubscribed bool
	Expiry       time.Time
	Cost         decimal.Decimal
}

// IsActive reports whether the subscription grants a discount at now. The
// expiry must be strictly in the future.
func (s Subscription) IsActive(now time.Time) bool {
	return s.IsSubscribed && s.Expiry.After(now)
}

// User is the subset of the identity record the order service reads.
type User struct {
	ID               string
	Name             string
	Email            string
	Subscription     Subscription
	DiscountsUsed    int
	LastDiscountUsed *time.Time
}

// Repository provides user lookup and the subscription usage counter.
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	// RecordSubscriptionDiscount increments discounts_used and stamps
	// last_discount_used with at.
	RecordSubscriptionDiscount(ctx context.Context, id string, at time.Time) error
}
