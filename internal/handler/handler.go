// Package handler implements the generated OpenAPI server interfaces on top
// of the order, return and catalog services.
package handler

import (
	"context"

	"github.com/xenking/storefront-orders/internal/domain/auth"
	"github.com/xenking/storefront-orders/internal/domain/discount"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/oas"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// OrderService is the order behaviour the handler needs.
type OrderService interface {
	Quote(ctx context.Context, userID string, items []order.ItemRequest, couponCode string) (discount.Quote, error)
	Create(ctx context.Context, req order.CreateRequest) (*order.CreateResult, error)
	TransitionStatus(ctx context.Context, id string, next order.Status) (*order.Order, error)
	Cancel(ctx context.Context, id, userID string) (*order.Order, error)
	Get(ctx context.Context, id string) (*order.Order, error)
	GetForUser(ctx context.Context, id, userID string) (*order.Order, error)
	ListForUser(ctx context.Context, userID string) ([]order.Order, error)
	List(ctx context.Context, filter order.ListFilter) ([]order.Order, error)
}

// ReturnService is the return behaviour the handler needs.
type ReturnService interface {
	Request(ctx context.Context, in returns.RequestInput) (*returns.Return, error)
	TransitionStatus(ctx context.Context, id string, next returns.Status, reason string) (*returns.Return, error)
	MarkReceived(ctx context.Context, id string) (*returns.Return, error)
	Get(ctx context.Context, id string) (*returns.Return, error)
	List(ctx context.Context, filter returns.ListFilter) ([]returns.Return, error)
}

var (
	_ OrderService  = (*order.Service)(nil)
	_ ReturnService = (*returns.Service)(nil)
)

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// ImageBaseURL is prepended to relative image paths in product responses.
	ImageBaseURL string
	// ExposeErrors includes internal error detail in 500 responses. Never
	// enable in production.
	ExposeErrors bool
}

// Handler implements the ogen-generated Handler interface.
type Handler struct {
	oas.UnimplementedHandler

	orders       OrderService
	returns      ReturnService
	products     product.Repository
	auth         *Authenticator
	imageBaseURL string
	exposeErrors bool
}

// New constructs a Handler.
func New(cfg Config, orders OrderService, rets ReturnService, products product.Repository, apikeys auth.Repository, pepper []byte) *Handler {
	return &Handler{
		orders:       orders,
		returns:      rets,
		products:     products,
		auth:         NewAuthenticator(apikeys, pepper),
		imageBaseURL: cfg.ImageBaseURL,
		exposeErrors: cfg.ExposeErrors,
	}
}

// Security returns the handler's ogen SecurityHandler.
func (h *Handler) Security() *Authenticator {
	return h.auth
}

// NewServer builds the generated API server under the /api prefix. Errors
// raised outside of operations use the same envelope as operation errors.
func (h *Handler) NewServer(opts ...oas.ServerOption) (*oas.Server, error) {
	opts = append([]oas.ServerOption{
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(h.HandleError),
		oas.WithNotFound(h.routeNotFound),
	}, opts...)
	return oas.NewServer(h, h.auth, opts...)
}
