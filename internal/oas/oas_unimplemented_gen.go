// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CancelOrder implements cancelOrder operation.
//
// Cancel one of the caller's orders.
//
// PUT /orders/{id}/cancel
func (UnimplementedHandler) CancelOrder(ctx context.Context, params CancelOrderParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetMyOrder implements getMyOrder operation.
//
// Get one of the caller's orders.
//
// GET /orders/my/{id}
func (UnimplementedHandler) GetMyOrder(ctx context.Context, params GetMyOrderParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Get any order.
//
// GET /orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetProduct implements getProduct operation.
//
// Get a product.
//
// GET /products/{id}
func (UnimplementedHandler) GetProduct(ctx context.Context, params GetProductParams) (r *ProductResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetReturn implements getReturn operation.
//
// Get any return.
//
// GET /admin/returns/{id}
func (UnimplementedHandler) GetReturn(ctx context.Context, params GetReturnParams) (r *ReturnResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListMyOrders implements listMyOrders operation.
//
// List the caller's orders.
//
// GET /orders/my
func (UnimplementedHandler) ListMyOrders(ctx context.Context) (r *OrderListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListMyReturns implements listMyReturns operation.
//
// List the caller's returns.
//
// GET /returns/my
func (UnimplementedHandler) ListMyReturns(ctx context.Context, params ListMyReturnsParams) (r *ReturnListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// List orders of all users.
//
// GET /orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r *OrderListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListProducts implements listProducts operation.
//
// List catalog products.
//
// GET /products
func (UnimplementedHandler) ListProducts(ctx context.Context) (r *ProductListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListReturns implements listReturns operation.
//
// List returns of all users.
//
// GET /admin/returns
func (UnimplementedHandler) ListReturns(ctx context.Context, params ListReturnsParams) (r *ReturnListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// MarkReturnReceived implements markReturnReceived operation.
//
// Record that the returned goods arrived.
//
// PATCH /admin/returns/{id}/received
func (UnimplementedHandler) MarkReturnReceived(ctx context.Context, params MarkReturnReceivedParams) (r *ReturnResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// PlaceOrder implements placeOrder operation.
//
// Place an order.
//
// POST /orders
func (UnimplementedHandler) PlaceOrder(ctx context.Context, req *PlaceOrderRequest, params PlaceOrderParams) (r PlaceOrderRes, _ error) {
	return r, ht.ErrNotImplemented
}

// QuoteOrder implements quoteOrder operation.
//
// Price items without placing an order.
//
// POST /orders/quote
func (UnimplementedHandler) QuoteOrder(ctx context.Context, req *QuoteRequest) (r *QuoteResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// RequestReturn implements requestReturn operation.
//
// Request a return of units of a delivered order.
//
// POST /returns
func (UnimplementedHandler) RequestReturn(ctx context.Context, req *ReturnRequest) (r *ReturnResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrderStatus implements updateOrderStatus operation.
//
// Move an order through its lifecycle.
//
// PATCH /orders/{id}/status
func (UnimplementedHandler) UpdateOrderStatus(ctx context.Context, req *OrderStatusUpdate, params UpdateOrderStatusParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateReturnStatus implements updateReturnStatus operation.
//
// Approve or reject a return.
//
// PATCH /admin/returns/{id}/status
func (UnimplementedHandler) UpdateReturnStatus(ctx context.Context, req *ReturnStatusUpdate, params UpdateReturnStatusParams) (r *ReturnResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
