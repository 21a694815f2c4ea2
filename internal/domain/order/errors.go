package order

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors for order validation and lifecycle.
var (
	ErrNotFound         = errors.New("order not found")
	ErrEmptyItems       = errors.New("items required")
	ErrMissingUser      = errors.New("user id required")
	ErrMissingAddress   = errors.New("shipping address required")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrNotCancellable   = errors.New("order cannot be cancelled")
	ErrConcurrentUpdate = errors.New("order was modified concurrently")
	// ErrDuplicateIdempotencyKey is returned by Repository.Create when the
	// user already placed an order with the same idempotency key.
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
)

// ProductNotFoundError indicates a requested product does not exist.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InvalidQuantityError indicates a line item quantity outside
// [1, MaxItemQuantity].
type InvalidQuantityError struct {
	ProductID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be between 1 and %d for product %s", MaxItemQuantity, e.ProductID)
}

// UnknownStatusError is returned for a status value outside the enum.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown order status %q", e.Value)
}

func (e *UnknownStatusError) Is(target error) bool { return target == ErrInvalidStatus }

// TransitionError is returned when the lifecycle forbids a status change.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("order cannot move from %s to %s", e.From, e.To)
}
