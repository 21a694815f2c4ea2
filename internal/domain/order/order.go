package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/product"
)

// Order is a placed customer order. Pricing and discount fields are written
// once at creation; only Status and UpdatedAt change afterwards.
type Order struct {
	ID                string
	UserID            string
	Items             []Item
	ShippingAddressID string
	Payment           PaymentSnapshot
	TotalPrice        decimal.Decimal
	Coupon            *AppliedCoupon
	Subscription      SubscriptionDiscount
	Status            Status
	IdempotencyKey    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Item is a line of an order. Name, UnitPrice and Image are copied from the
// catalog when the order is placed.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image,omitempty"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// Subtotal returns UnitPrice times Quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PaymentSnapshot is the payment metadata captured at checkout.
type PaymentSnapshot struct {
	ID            string
	Status        string
	Method        string
	OriginalPrice decimal.Decimal
}

// AppliedCoupon records the coupon redeemed on an order.
type AppliedCoupon struct {
	Code           string
	DiscountType   coupon.DiscountType
	DiscountValue  decimal.Decimal
	DiscountAmount decimal.Decimal
}

// SubscriptionDiscount records the subscription discount of an order.
type SubscriptionDiscount struct {
	Applied          bool
	Amount           decimal.Decimal
	SubscriptionCost decimal.Decimal
}

// Adjustments returns one inventory adjustment of kind per distinct product.
func (o *Order) Adjustments(kind product.AdjustmentKind) []product.Adjustment {
	adj := make([]product.Adjustment, 0, len(o.Items))
	for _, it := range o.Items {
		adj = append(adj, product.Adjustment{ProductID: it.ProductID, Kind: kind, Quantity: it.Quantity})
	}
	return product.Merge(adj)
}

// Outstanding returns the restock adjustments for units not already returned
// through item returns. Products returned in full are dropped.
func (o *Order) Outstanding(returned map[string]int) []product.Adjustment {
	adj := o.Adjustments(product.Restock)
	out := adj[:0]
	for _, a := range adj {
		a.Quantity -= returned[a.ProductID]
		if a.Quantity > 0 {
			out = append(out, a)
		}
	}
	return out
}

// Quantity returns the total quantity ordered of productID.
func (o *Order) Quantity(productID string) int {
	n := 0
	for _, it := range o.Items {
		if it.ProductID == productID {
			n += it.Quantity
		}
	}
	return n
}

// ListFilter narrows admin order listings.
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// Repository defines persistence operations for orders.
type Repository interface {
	// Create returns ErrDuplicateIdempotencyKey when the (user, key) pair
	// already exists.
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// GetForUser returns ErrNotFound when the order belongs to another user.
	GetForUser(ctx context.Context, id, userID string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, error)
	// CompareAndSetStatus sets the status to `to` only while it still equals
	// `from`, and reports whether the row changed.
	CompareAndSetStatus(ctx context.Context, id string, from, to Status, at time.Time) (bool, error)
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*Order, error)
}

// ReturnedQuantities reports units of an order already restocked by approved
// item returns, keyed by product id.
type ReturnedQuantities interface {
	ApprovedQuantities(ctx context.Context, orderID string) (map[string]int, error)
}

// UnitOfWork runs fn inside one database transaction carried by the context
// passed to fn.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
