package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/discount"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/notify"
)

// MaxItemQuantity bounds the quantity of a single order line.
const MaxItemQuantity = 10_000

// Quoter computes the price breakdown of an order.
type Quoter interface {
	Quote(ctx context.Context, basePrice decimal.Decimal, code string, sub user.Subscription) (discount.Quote, error)
}

// ItemRequest is a requested order line.
type ItemRequest struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
}

// PaymentMeta is the payment metadata supplied by the client.
type PaymentMeta struct {
	ID     string
	Status string
	Method string
}

// CreateRequest holds the input for placing an order.
type CreateRequest struct {
	UserID            string
	Items             []ItemRequest
	ShippingAddressID string
	Payment           PaymentMeta
	CouponCode        string
	IdempotencyKey    string
}

// CreateResult is the outcome of Create. Replayed is set when the order
// already existed for the idempotency key.
type CreateResult struct {
	Order    *Order
	Replayed bool
}

// Deps are the collaborators of Service.
type Deps struct {
	Products   product.Repository
	Ledger     product.Ledger
	Orders     Repository
	Returns    ReturnedQuantities
	Users      user.Repository
	Coupons    coupon.Repository
	Discounts  Quoter
	UnitOfWork UnitOfWork
	Publisher  notify.Publisher
}

// Options tune Service behaviour.
type Options struct {
	// CountCouponUsage increments the coupon's used_count when an order
	// redeems it.
	CountCouponUsage bool
	TracerProvider   trace.TracerProvider
	MeterProvider    metric.MeterProvider
}

// Service implements order placement and the order lifecycle.
type Service struct {
	products  product.Repository
	ledger    product.Ledger
	orders    Repository
	returned  ReturnedQuantities
	users     user.Repository
	coupons   coupon.Repository
	discounts Quoter
	uow       UnitOfWork
	publisher notify.Publisher

	countCouponUsage bool
	now              func() time.Time
	newID            func() string

	tracer      trace.Tracer
	created     metric.Int64Counter
	transitions metric.Int64Counter
	adjusted    metric.Int64Counter
}

// NewService creates an order Service.
func NewService(deps Deps, opts Options) (*Service, error) {
	if opts.TracerProvider == nil {
		opts.TracerProvider = tracenoop.NewTracerProvider()
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = metricnoop.NewMeterProvider()
	}
	meter := opts.MeterProvider.Meter("storefront/order")

	s := &Service{
		products:         deps.Products,
		ledger:           deps.Ledger,
		orders:           deps.Orders,
		returned:         deps.Returns,
		users:            deps.Users,
		coupons:          deps.Coupons,
		discounts:        deps.Discounts,
		uow:              deps.UnitOfWork,
		publisher:        deps.Publisher,
		countCouponUsage: opts.CountCouponUsage,
		now:              time.Now,
		newID:            uuid.NewString,
		tracer:           opts.TracerProvider.Tracer("storefront/order"),
	}

	var err error
	if s.created, err = meter.Int64Counter("orders.created",
		metric.WithDescription("Orders placed"),
	); err != nil {
		return nil, errors.Wrap(err, "orders.created")
	}
	if s.transitions, err = meter.Int64Counter("orders.transitions",
		metric.WithDescription("Order status transitions"),
	); err != nil {
		return nil, errors.Wrap(err, "orders.transitions")
	}
	if s.adjusted, err = meter.Int64Counter("inventory.adjusted_units",
		metric.WithDescription("Units moved between stock and sold"),
	); err != nil {
		return nil, errors.Wrap(err, "inventory.adjusted_units")
	}
	return s, nil
}

// Quote prices the requested items for userID without placing an order.
func (s *Service) Quote(ctx context.Context, userID string, items []ItemRequest, couponCode string) (discount.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "order.Quote")
	defer span.End()

	_, base, err := s.snapshotItems(ctx, items)
	if err != nil {
		return discount.Quote{}, err
	}

	var sub user.Subscription
	if userID != "" {
		u, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return discount.Quote{}, errors.Wrap(err, "get user")
		}
		sub = u.Subscription
	}
	return s.discounts.Quote(ctx, base, couponCode, sub)
}

// Create validates the request, prices it and persists the order. Coupon and
// subscription usage effects commit in the same transaction as the order.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	ctx, span := s.tracer.Start(ctx, "order.Create")
	defer span.End()

	if strings.TrimSpace(req.UserID) == "" {
		return nil, ErrMissingUser
	}
	if strings.TrimSpace(req.ShippingAddressID) == "" {
		return nil, ErrMissingAddress
	}
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)

	if req.IdempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, req.UserID, req.IdempotencyKey)
		switch {
		case err == nil:
			return &CreateResult{Order: existing, Replayed: true}, nil
		case !errors.Is(err, ErrNotFound):
			return nil, errors.Wrap(err, "find by idempotency key")
		}
	}

	items, base, err := s.snapshotItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}

	quote, err := s.discounts.Quote(ctx, base, req.CouponCode, u.Subscription)
	if err != nil {
		return nil, err
	}

	now := s.now()
	o := &Order{
		ID:                s.newID(),
		UserID:            req.UserID,
		Items:             items,
		ShippingAddressID: req.ShippingAddressID,
		Payment: PaymentSnapshot{
			ID:            req.Payment.ID,
			Status:        req.Payment.Status,
			Method:        req.Payment.Method,
			OriginalPrice: base,
		},
		TotalPrice: quote.FinalPrice,
		Subscription: SubscriptionDiscount{
			Applied:          quote.SubscriptionApplied,
			Amount:           quote.SubscriptionDiscount,
			SubscriptionCost: quote.SubscriptionCost,
		},
		Status:         StatusPending,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c := quote.Coupon; c != nil {
		o.Coupon = &AppliedCoupon{
			Code:           c.Code,
			DiscountType:   c.DiscountType,
			DiscountValue:  c.DiscountValue,
			DiscountAmount: quote.CouponDiscount,
		}
	}

	err = s.uow.InTx(ctx, func(ctx context.Context) error {
		if err := s.orders.Create(ctx, o); err != nil {
			return err
		}
		if o.Coupon != nil && s.countCouponUsage {
			ok, err := s.coupons.IncrementUsage(ctx, o.Coupon.Code)
			if err != nil {
				return errors.Wrap(err, "increment coupon usage")
			}
			if !ok {
				return coupon.ErrCouponExhausted
			}
		}
		if o.Subscription.Applied {
			if err := s.users.RecordSubscriptionDiscount(ctx, u.ID, now); err != nil {
				return errors.Wrap(err, "record subscription discount")
			}
		}
		return nil
	})
	if errors.Is(err, ErrDuplicateIdempotencyKey) {
		existing, findErr := s.orders.FindByIdempotencyKey(ctx, req.UserID, req.IdempotencyKey)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "find by idempotency key")
		}
		return &CreateResult{Order: existing, Replayed: true}, nil
	}
	if err != nil {
		return nil, err
	}

	s.created.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("coupon", o.Coupon != nil),
		attribute.Bool("subscription", o.Subscription.Applied),
	))
	span.SetAttributes(attribute.String("order.id", o.ID))
	zctx.From(ctx).Info("Order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", o.UserID),
		zap.Stringer("total", o.TotalPrice),
	)

	notify.Dispatch(ctx, s.publisher, notify.Fanout(notify.Event{
		Type:       notify.OrderCreated,
		OrderID:    o.ID,
		UserID:     u.ID,
		UserName:   u.Name,
		UserEmail:  u.Email,
		NewStatus:  string(o.Status),
		TotalPrice: o.TotalPrice,
		OccurredAt: now,
	})...)

	return &CreateResult{Order: o}, nil
}

// snapshotItems resolves the requested items against the catalog and returns
// the order lines with the base price.
func (s *Service) snapshotItems(ctx context.Context, req []ItemRequest) ([]Item, decimal.Decimal, error) {
	if len(req) == 0 {
		return nil, decimal.Zero, ErrEmptyItems
	}

	ids := make([]string, len(req))
	for i, item := range req {
		if item.Quantity <= 0 || item.Quantity > MaxItemQuantity {
			return nil, decimal.Zero, &InvalidQuantityError{ProductID: item.ProductID}
		}
		ids[i] = item.ProductID
	}

	fetched, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("get products: %w", err)
	}
	byID := make(map[string]product.Product, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}

	items := make([]Item, 0, len(req))
	base := decimal.Zero
	for _, r := range req {
		p, ok := byID[r.ProductID]
		if !ok {
			return nil, decimal.Zero, &ProductNotFoundError{ProductID: r.ProductID}
		}
		it := Item{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  r.Quantity,
			UnitPrice: p.Price,
			Image:     p.Image,
			Size:      r.Size,
			Color:     r.Color,
		}
		base = base.Add(it.Subtotal())
		items = append(items, it)
	}
	return items, base, nil
}

// TransitionStatus moves an order to next. Writing the current status is a
// no-op. Entering delivered or return_approved adjusts inventory in the same
// transaction as the status change.
func (s *Service) TransitionStatus(ctx context.Context, id string, next Status) (*Order, error) {
	ctx, span := s.tracer.Start(ctx, "order.TransitionStatus",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("order.status", string(next))),
	)
	defer span.End()

	next, err := ParseStatus(string(next))
	if err != nil {
		return nil, err
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := o.Status.Normalize()
	if from == next {
		return o, nil
	}
	if !from.CanTransition(next) {
		return nil, &TransitionError{From: from, To: next}
	}
	if err := s.apply(ctx, o, next); err != nil {
		return nil, err
	}
	return o, nil
}

// Cancel cancels an order on behalf of its owner. Only pending and
// processing orders can be cancelled.
func (s *Service) Cancel(ctx context.Context, id, userID string) (*Order, error) {
	ctx, span := s.tracer.Start(ctx, "order.Cancel", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	o, err := s.orders.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !o.Status.Cancellable() {
		return nil, fmt.Errorf("%w: order is %s", ErrNotCancellable, o.Status.Normalize())
	}
	if err := s.apply(ctx, o, StatusCancelled); err != nil {
		return nil, err
	}
	return o, nil
}

// apply performs a validated transition of o to next and notifies after
// commit. o is updated in place on success.
func (s *Service) apply(ctx context.Context, o *Order, next Status) error {
	prev := o.Status.Normalize()
	now := s.now()
	kind, hasEffect := Effect(prev, next)

	var (
		adj     []product.Adjustment
		missing []string
	)
	err := s.uow.InTx(ctx, func(ctx context.Context) error {
		ok, err := s.orders.CompareAndSetStatus(ctx, o.ID, o.Status, next, now)
		if err != nil {
			return errors.Wrap(err, "set status")
		}
		if !ok {
			return ErrConcurrentUpdate
		}
		if !hasEffect {
			return nil
		}
		adj = o.Adjustments(kind)
		if kind == product.Restock {
			// Units restocked by approved item returns are not restocked again.
			returned, err := s.returned.ApprovedQuantities(ctx, o.ID)
			if err != nil {
				return errors.Wrap(err, "approved returns")
			}
			adj = o.Outstanding(returned)
		}
		if len(adj) == 0 {
			return nil
		}
		missing, err = s.ledger.Adjust(ctx, adj)
		if err != nil {
			return errors.Wrap(err, "adjust inventory")
		}
		return nil
	})
	if err != nil {
		return err
	}

	lg := zctx.From(ctx)
	if len(missing) > 0 {
		lg.Warn("Inventory adjustment skipped missing products",
			zap.String("order_id", o.ID),
			zap.String("kind", string(kind)),
			zap.Strings("product_ids", missing),
		)
	}
	if len(adj) > 0 {
		units := 0
		for _, a := range adj {
			units += a.Quantity
		}
		s.adjusted.Add(ctx, int64(units), metric.WithAttributes(attribute.String("kind", string(kind))))
	}
	s.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", string(prev)),
		attribute.String("to", string(next)),
	))

	o.Status = next
	o.UpdatedAt = now
	lg.Info("Order status changed",
		zap.String("order_id", o.ID),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
	)

	s.notifyStatusChange(ctx, o, prev, now)
	return nil
}

func (s *Service) notifyStatusChange(ctx context.Context, o *Order, prev Status, at time.Time) {
	e := notify.Event{
		Type:       notify.OrderStatusChanged,
		OrderID:    o.ID,
		UserID:     o.UserID,
		OldStatus:  string(prev),
		NewStatus:  string(o.Status),
		TotalPrice: o.TotalPrice,
		OccurredAt: at,
	}
	if u, err := s.users.GetByID(ctx, o.UserID); err != nil {
		zctx.From(ctx).Warn("Notification recipient lookup failed",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	} else {
		e.UserName = u.Name
		e.UserEmail = u.Email
	}
	notify.Dispatch(ctx, s.publisher, notify.Fanout(e)...)
}

// Get returns an order by id.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.GetByID(ctx, id)
}

// GetForUser returns an order only when it belongs to userID.
func (s *Service) GetForUser(ctx context.Context, id, userID string) (*Order, error) {
	return s.orders.GetForUser(ctx, id, userID)
}

// ListForUser returns the orders of userID, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUser
	}
	return s.orders.ListByUser(ctx, userID)
}

// List returns orders matching filter, newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Order, error) {
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
	return s.orders.List(ctx, filter)
}
