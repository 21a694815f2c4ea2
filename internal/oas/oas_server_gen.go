// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CancelOrder implements cancelOrder operation.
	//
	// Cancel one of the caller's orders.
	//
	// PUT /orders/{id}/cancel
	CancelOrder(ctx context.Context, params CancelOrderParams) (*OrderResponse, error)
	// GetMyOrder implements getMyOrder operation.
	//
	// Get one of the caller's orders.
	//
	// GET /orders/my/{id}
	GetMyOrder(ctx context.Context, params GetMyOrderParams) (*OrderResponse, error)
	// GetOrder implements getOrder operation.
	//
	// Get any order.
	//
	// GET /orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*OrderResponse, error)
	// GetProduct implements getProduct operation.
	//
	// Get a product.
	//
	// GET /products/{id}
	GetProduct(ctx context.Context, params GetProductParams) (*ProductResponse, error)
	// GetReturn implements getReturn operation.
	//
	// Get any return.
	//
	// GET /admin/returns/{id}
	GetReturn(ctx context.Context, params GetReturnParams) (*ReturnResponse, error)
	// ListMyOrders implements listMyOrders operation.
	//
	// List the caller's orders.
	//
	// GET /orders/my
	ListMyOrders(ctx context.Context) (*OrderListResponse, error)
	// ListMyReturns implements listMyReturns operation.
	//
	// List the caller's returns.
	//
	// GET /returns/my
	ListMyReturns(ctx context.Context, params ListMyReturnsParams) (*ReturnListResponse, error)
	// ListOrders implements listOrders operation.
	//
	// List orders of all users.
	//
	// GET /orders
	ListOrders(ctx context.Context, params ListOrdersParams) (*OrderListResponse, error)
	// ListProducts implements listProducts operation.
	//
	// List catalog products.
	//
	// GET /products
	ListProducts(ctx context.Context) (*ProductListResponse, error)
	// ListReturns implements listReturns operation.
	//
	// List returns of all users.
	//
	// GET /admin/returns
	ListReturns(ctx context.Context, params ListReturnsParams) (*ReturnListResponse, error)
	// MarkReturnReceived implements markReturnReceived operation.
	//
	// Record that the returned goods arrived.
	//
	// PATCH /admin/returns/{id}/received
	MarkReturnReceived(ctx context.Context, params MarkReturnReceivedParams) (*ReturnResponse, error)
	// PlaceOrder implements placeOrder operation.
	//
	// Place an order.
	//
	// POST /orders
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest, params PlaceOrderParams) (PlaceOrderRes, error)
	// QuoteOrder implements quoteOrder operation.
	//
	// Price items without placing an order.
	//
	// POST /orders/quote
	QuoteOrder(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error)
	// RequestReturn implements requestReturn operation.
	//
	// Request a return of units of a delivered order.
	//
	// POST /returns
	RequestReturn(ctx context.Context, req *ReturnRequest) (*ReturnResponse, error)
	// UpdateOrderStatus implements updateOrderStatus operation.
	//
	// Move an order through its lifecycle.
	//
	// PATCH /orders/{id}/status
	UpdateOrderStatus(ctx context.Context, req *OrderStatusUpdate, params UpdateOrderStatusParams) (*OrderResponse, error)
	// UpdateReturnStatus implements updateReturnStatus operation.
	//
	// Approve or reject a return.
	//
	// PATCH /admin/returns/{id}/status
	UpdateReturnStatus(ctx context.Context, req *ReturnStatusUpdate, params UpdateReturnStatusParams) (*ReturnResponse, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
