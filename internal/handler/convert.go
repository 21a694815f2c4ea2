package handler

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-orders/internal/domain/discount"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/oas"
)

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func optString(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func orderToOAS(o *order.Order) oas.Order {
	items := make([]oas.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = oas.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: money(it.UnitPrice),
			Image:     optString(it.Image),
			Size:      optString(it.Size),
			Color:     optString(it.Color),
		}
	}

	res := oas.Order{
		ID:                o.ID,
		UserID:            o.UserID,
		Status:            oas.OrderStatus(o.Status.Normalize()),
		Items:             items,
		ShippingAddressID: o.ShippingAddressID,
		Payment: oas.PaymentSnapshot{
			ID:            o.Payment.ID,
			Status:        o.Payment.Status,
			Method:        o.Payment.Method,
			OriginalPrice: money(o.Payment.OriginalPrice),
		},
		TotalPrice: money(o.TotalPrice),
		Subscription: oas.SubscriptionDiscount{
			Applied:          o.Subscription.Applied,
			Amount:           money(o.Subscription.Amount),
			SubscriptionCost: money(o.Subscription.SubscriptionCost),
		},
		CreatedAt: o.CreatedAt.UTC(),
		UpdatedAt: o.UpdatedAt.UTC(),
	}
	if c := o.Coupon; c != nil {
		res.Coupon = oas.NewOptAppliedCoupon(oas.AppliedCoupon{
			Code:           c.Code,
			DiscountType:   string(c.DiscountType),
			DiscountValue:  money(c.DiscountValue),
			DiscountAmount: money(c.DiscountAmount),
		})
	}
	return res
}

func ordersToOAS(list []order.Order) []oas.Order {
	res := make([]oas.Order, len(list))
	for i := range list {
		res[i] = orderToOAS(&list[i])
	}
	return res
}

func quoteToOAS(q discount.Quote) oas.Quote {
	res := oas.Quote{
		BasePrice:            money(q.BasePrice),
		CouponDiscount:       money(q.CouponDiscount),
		SubscriptionDiscount: money(q.SubscriptionDiscount),
		SubscriptionApplied:  q.SubscriptionApplied,
		FinalPrice:           money(q.FinalPrice),
	}
	if q.Coupon != nil {
		res.CouponCode = oas.NewOptString(q.Coupon.Code)
	}
	return res
}

func returnToOAS(r *returns.Return) oas.Return {
	return oas.Return{
		ID:              r.ID,
		UserID:          r.UserID,
		OrderID:         r.OrderID,
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		Status:          oas.ReturnStatus(r.Status),
		RejectionReason: optString(r.RejectionReason),
		Received:        r.Received,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

func returnsToOAS(list []returns.Return) []oas.Return {
	res := make([]oas.Return, len(list))
	for i := range list {
		res[i] = returnToOAS(&list[i])
	}
	return res
}

func (h *Handler) productToOAS(p product.Product) oas.Product {
	return oas.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         money(p.Price),
		Image:         h.imageURL(p.Image),
		StockQuantity: p.StockQuantity,
		SoldCount:     p.SoldCount,
	}
}

func itemsFromOAS(items []oas.ItemRequest) []order.ItemRequest {
	res := make([]order.ItemRequest, len(items))
	for i, it := range items {
		res[i] = order.ItemRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size.Or(""),
			Color:     it.Color.Or(""),
		}
	}
	return res
}
