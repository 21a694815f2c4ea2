package handler

import (
	"context"

	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/oas"
)

// QuoteOrder prices items for the caller without placing an order.
func (h *Handler) QuoteOrder(ctx context.Context, req *oas.QuoteRequest) (*oas.QuoteResponse, error) {
	q, err := h.orders.Quote(ctx, userIDFrom(ctx), itemsFromOAS(req.Items), req.CouponCode.Or(""))
	if err != nil {
		return nil, err
	}
	return &oas.QuoteResponse{Success: true, Message: "order priced", Data: quoteToOAS(q)}, nil
}

// PlaceOrder creates an order for the caller. A repeated Idempotency-Key
// returns the order created by the first request with status 200.
func (h *Handler) PlaceOrder(ctx context.Context, req *oas.PlaceOrderRequest, params oas.PlaceOrderParams) (oas.PlaceOrderRes, error) {
	payment := req.Payment.Or(oas.PaymentInput{})
	res, err := h.orders.Create(ctx, order.CreateRequest{
		UserID:            userIDFrom(ctx),
		Items:             itemsFromOAS(req.Items),
		ShippingAddressID: req.ShippingAddressID.Or(""),
		Payment: order.PaymentMeta{
			ID:     payment.ID.Or(""),
			Status: payment.Status.Or(""),
			Method: payment.Method.Or(""),
		},
		CouponCode:     req.CouponCode.Or(""),
		IdempotencyKey: params.IdempotencyKey.Or(""),
	})
	if err != nil {
		return nil, err
	}

	data := orderToOAS(res.Order)
	if res.Replayed {
		return &oas.ReplayedOrderResponse{Success: true, Message: "order already placed", Data: data}, nil
	}
	return &oas.OrderResponse{Success: true, Message: "order placed", Data: data}, nil
}

// ListMyOrders returns the caller's orders, newest first.
func (h *Handler) ListMyOrders(ctx context.Context) (*oas.OrderListResponse, error) {
	orders, err := h.orders.ListForUser(ctx, userIDFrom(ctx))
	if err != nil {
		return nil, err
	}
	return &oas.OrderListResponse{Success: true, Message: "orders fetched", Data: ordersToOAS(orders)}, nil
}

// GetMyOrder returns one of the caller's orders.
func (h *Handler) GetMyOrder(ctx context.Context, params oas.GetMyOrderParams) (*oas.OrderResponse, error) {
	o, err := h.orders.GetForUser(ctx, params.ID, userIDFrom(ctx))
	if err != nil {
		return nil, err
	}
	return &oas.OrderResponse{Success: true, Message: "order fetched", Data: orderToOAS(o)}, nil
}

// CancelOrder cancels one of the caller's pending or processing orders.
func (h *Handler) CancelOrder(ctx context.Context, params oas.CancelOrderParams) (*oas.OrderResponse, error) {
	o, err := h.orders.Cancel(ctx, params.ID, userIDFrom(ctx))
	if err != nil {
		return nil, err
	}
	return &oas.OrderResponse{Success: true, Message: "order cancelled", Data: orderToOAS(o)}, nil
}

// ListOrders returns orders across all users, optionally filtered by status.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) (*oas.OrderListResponse, error) {
	filter := order.ListFilter{
		Limit:  params.Limit.Or(0),
		Offset: params.Offset.Or(0),
	}
	if st, ok := params.Status.Get(); ok {
		var err error
		if filter.Status, err = order.ParseStatus(string(st)); err != nil {
			return nil, err
		}
	}

	orders, err := h.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &oas.OrderListResponse{Success: true, Message: "orders fetched", Data: ordersToOAS(orders)}, nil
}

// GetOrder returns any order by id.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.OrderResponse, error) {
	o, err := h.orders.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	return &oas.OrderResponse{Success: true, Message: "order fetched", Data: orderToOAS(o)}, nil
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *Handler) UpdateOrderStatus(ctx context.Context, req *oas.OrderStatusUpdate, params oas.UpdateOrderStatusParams) (*oas.OrderResponse, error) {
	next, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return nil, err
	}
	o, err := h.orders.TransitionStatus(ctx, params.ID, next)
	if err != nil {
		return nil, err
	}
	return &oas.OrderResponse{Success: true, Message: "order status updated", Data: orderToOAS(o)}, nil
}
