// Package returns implements per-item return requests and their review
// lifecycle.
package returns

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Status is the review state of a return.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "return_rejected"
)

var statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Sentinel errors for returns.
var (
	ErrNotFound          = errors.New("return not found")
	ErrInvalidStatus     = errors.New("invalid return status")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrNotReturnable     = errors.New("only delivered orders can be returned")
	ErrProductNotInOrder = errors.New("product is not part of the order")
	ErrConcurrentUpdate  = errors.New("return was modified concurrently")
)

// UnknownStatusError is returned for a status value outside the enum.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown return status %q", e.Value)
}

func (e *UnknownStatusError) Is(target error) bool { return target == ErrInvalidStatus }

// TransitionError is returned when a return cannot move between statuses.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("return cannot move from %s to %s", e.From, e.To)
}

// QuantityError is returned when a request asks for more units than remain
// returnable on the order.
type QuantityError struct {
	ProductID string
	Requested int
	Available int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("requested %d of product %s but only %d can be returned", e.Requested, e.ProductID, e.Available)
}

// ParseStatus returns the Status named by s. The short form "rejected" is
// not accepted.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !slices.Contains(statuses, st) {
		return "", &UnknownStatusError{Value: s}
	}
	return st, nil
}

// Return is a request to send back units of one product from one order.
// Returns are never deleted.
type Return struct {
	ID              string
	UserID          string
	OrderID         string
	ProductID       string
	Quantity        int
	Status          Status
	RejectionReason string
	Received        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ListFilter narrows return listings. Zero fields match everything.
type ListFilter struct {
	UserID  string
	OrderID string
	Status  Status
	Limit   int
	Offset  int
}

// Repository defines persistence operations for returns.
type Repository interface {
	Create(ctx context.Context, r *Return) error
	GetByID(ctx context.Context, id string) (*Return, error)
	List(ctx context.Context, filter ListFilter) ([]Return, error)
	// CompareAndSetStatus sets status and rejection reason only while the
	// status still equals from.
	CompareAndSetStatus(ctx context.Context, id string, from, to Status, reason string, at time.Time) (bool, error)
	// MarkReceived sets the received flag and returns the updated record.
	MarkReceived(ctx context.Context, id string, at time.Time) (*Return, error)
	// RequestedQuantity sums the quantity of non-rejected returns of
	// productID on orderID.
	RequestedQuantity(ctx context.Context, orderID, productID string) (int, error)
}

// UnitOfWork runs fn inside one database transaction.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
