package handler

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront-orders/internal/oas"
)

// ListProducts returns every product in the catalog.
func (h *Handler) ListProducts(ctx context.Context) (*oas.ProductListResponse, error) {
	products, err := h.products.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	data := make([]oas.Product, len(products))
	for i, p := range products {
		data[i] = h.productToOAS(p)
	}
	return &oas.ProductListResponse{Success: true, Message: "products fetched", Data: data}, nil
}

// GetProduct returns a single product by ID.
func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (*oas.ProductResponse, error) {
	p, err := h.products.GetByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	return &oas.ProductResponse{Success: true, Message: "product fetched", Data: h.productToOAS(*p)}, nil
}

// imageURL prefixes relative image paths with the configured base URL.
func (h *Handler) imageURL(path string) string {
	if path == "" || h.imageBaseURL == "" || strings.Contains(path, "://") {
		return path
	}
	return strings.TrimSuffix(h.imageBaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
