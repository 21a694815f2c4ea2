package returns

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/notify"
)

// OrderReader loads the orders returns belong to.
type OrderReader interface {
	GetByID(ctx context.Context, id string) (*order.Order, error)
	GetForUser(ctx context.Context, id, userID string) (*order.Order, error)
}

// RequestInput holds a customer's return request.
type RequestInput struct {
	UserID    string
	OrderID   string
	ProductID string
	Quantity  int
}

// Service implements the return lifecycle.
type Service struct {
	returns   Repository
	orders    OrderReader
	ledger    product.Ledger
	users     user.Repository
	uow       UnitOfWork
	publisher notify.Publisher

	now   func() time.Time
	newID func() string
}

// NewService creates a returns Service.
func NewService(
	returns Repository,
	orders OrderReader,
	ledger product.Ledger,
	users user.Repository,
	uow UnitOfWork,
	publisher notify.Publisher,
) *Service {
	return &Service{
		returns:   returns,
		orders:    orders,
		ledger:    ledger,
		users:     users,
		uow:       uow,
		publisher: publisher,
		now:       time.Now,
		newID:     func() string { return ulid.Make().String() },
	}
}

// Request files a return for units of one product of a delivered order.
func (s *Service) Request(ctx context.Context, in RequestInput) (*Return, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	in.ProductID = strings.TrimSpace(in.ProductID)

	o, err := s.orders.GetForUser(ctx, in.OrderID, in.UserID)
	if err != nil {
		return nil, err
	}
	if o.Status.Normalize() != order.StatusDelivered {
		return nil, errors.Wrapf(ErrNotReturnable, "order is %s", o.Status.Normalize())
	}
	ordered := o.Quantity(in.ProductID)
	if ordered == 0 {
		return nil, ErrProductNotInOrder
	}

	now := s.now()
	r := &Return{
		ID:        s.newID(),
		UserID:    in.UserID,
		OrderID:   o.ID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.uow.InTx(ctx, func(ctx context.Context) error {
		requested, err := s.returns.RequestedQuantity(ctx, o.ID, in.ProductID)
		if err != nil {
			return errors.Wrap(err, "requested quantity")
		}
		if available := ordered - requested; in.Quantity > available {
			return &QuantityError{ProductID: in.ProductID, Requested: in.Quantity, Available: max(available, 0)}
		}
		return s.returns.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	zctx.From(ctx).Info("Return requested",
		zap.String("return_id", r.ID),
		zap.String("order_id", r.OrderID),
		zap.String("product_id", r.ProductID),
		zap.Int("quantity", r.Quantity),
	)
	s.notify(ctx, r, "")
	return r, nil
}

// TransitionStatus reviews a pending return. Approval restocks the returned
// quantity in the same transaction; approving twice has no further effect.
// A return of an order already restocked as a whole cannot be approved.
func (s *Service) TransitionStatus(ctx context.Context, id string, next Status, reason string) (*Return, error) {
	next, err := ParseStatus(string(next))
	if err != nil {
		return nil, err
	}

	r, err := s.returns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == next {
		return r, nil
	}
	if r.Status != StatusPending || next == StatusPending {
		return nil, &TransitionError{From: r.Status, To: next}
	}

	reason = strings.TrimSpace(reason)
	if next != StatusRejected {
		reason = ""
	}

	now := s.now()
	var missing []string
	err = s.uow.InTx(ctx, func(ctx context.Context) error {
		if next == StatusApproved {
			o, err := s.orders.GetByID(ctx, r.OrderID)
			if err != nil {
				return errors.Wrap(err, "get order")
			}
			if st := o.Status.Normalize(); st == order.StatusReturnApproved {
				return errors.Wrapf(ErrNotReturnable, "order is %s", st)
			}
		}
		ok, err := s.returns.CompareAndSetStatus(ctx, r.ID, r.Status, next, reason, now)
		if err != nil {
			return errors.Wrap(err, "set status")
		}
		if !ok {
			return ErrConcurrentUpdate
		}
		if next != StatusApproved {
			return nil
		}
		missing, err = s.ledger.Adjust(ctx, []product.Adjustment{{
			ProductID: r.ProductID,
			Kind:      product.Restock,
			Quantity:  r.Quantity,
		}})
		if err != nil {
			return errors.Wrap(err, "restock")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lg := zctx.From(ctx)
	if len(missing) > 0 {
		lg.Warn("Restock skipped missing product",
			zap.String("return_id", r.ID),
			zap.Strings("product_ids", missing),
		)
	}

	prev := r.Status
	r.Status = next
	r.RejectionReason = reason
	r.UpdatedAt = now
	lg.Info("Return status changed",
		zap.String("return_id", r.ID),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
	)
	s.notify(ctx, r, prev)
	return r, nil
}

// MarkReceived records that the returned goods arrived. It has no inventory
// effect and may be repeated.
func (s *Service) MarkReceived(ctx context.Context, id string) (*Return, error) {
	return s.returns.MarkReceived(ctx, id, s.now())
}

// Get returns a return by id.
func (s *Service) Get(ctx context.Context, id string) (*Return, error) {
	return s.returns.GetByID(ctx, id)
}

// List returns returns matching filter, newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Return, error) {
	if filter.Status != "" {
		if _, err := ParseStatus(string(filter.Status)); err != nil {
			return nil, err
		}
	}
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.returns.List(ctx, filter)
}

func (s *Service) notify(ctx context.Context, r *Return, prev Status) {
	e := notify.Event{
		Type:       notify.ReturnStatusChanged,
		OrderID:    r.OrderID,
		ReturnID:   r.ID,
		UserID:     r.UserID,
		OldStatus:  string(prev),
		NewStatus:  string(r.Status),
		OccurredAt: r.UpdatedAt,
	}
	if u, err := s.users.GetByID(ctx, r.UserID); err != nil {
		zctx.From(ctx).Warn("Notification recipient lookup failed",
			zap.String("return_id", r.ID),
			zap.Error(err),
		)
	} else {
		e.UserName = u.Name
		e.UserEmail = u.Email
	}
	notify.Dispatch(ctx, s.publisher, notify.Fanout(e)...)
}
