package order

import (
	"slices"
	"strings"

	"github.com/xenking/storefront-orders/internal/domain/product"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusProcessing     Status = "processing"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusReturnApproved Status = "return_approved"
	StatusReturnRejected Status = "return_rejected"
)

// Statuses lists every known status in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusDelivered,
	StatusCancelled,
	StatusReturnApproved,
	StatusReturnRejected,
}

var transitions = map[Status][]Status{
	StatusPending:        {StatusProcessing, StatusDelivered, StatusCancelled},
	StatusProcessing:     {StatusDelivered, StatusCancelled},
	StatusDelivered:      {StatusReturnApproved, StatusReturnRejected},
	StatusReturnRejected: {StatusReturnApproved},
}

var cancellable = []Status{StatusPending, StatusProcessing}

// ParseStatus returns the Status named by s, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !slices.Contains(Statuses, st) {
		return "", &UnknownStatusError{Value: s}
	}
	return st, nil
}

// Normalize maps the empty status of records written before statuses
// existed to StatusPending.
func (s Status) Normalize() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

// CanTransition reports whether an order may move from s to next. A move to
// the same status is not a transition.
func (s Status) CanTransition(next Status) bool {
	return slices.Contains(transitions[s.Normalize()], next)
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(transitions[s.Normalize()]) == 0
}

// Cancellable reports whether a customer may cancel an order in status s.
func (s Status) Cancellable() bool {
	return slices.Contains(cancellable, s.Normalize())
}

// Effect returns the inventory movement caused by entering next from s, if
// any. Only entering delivered and entering return_approved touch inventory.
func Effect(from, to Status) (product.AdjustmentKind, bool) {
	if from.Normalize() == to {
		return "", false
	}
	switch to {
	case StatusDelivered:
		return product.Fulfill, true
	case StatusReturnApproved:
		return product.Restock, true
	default:
		return "", false
	}
}
