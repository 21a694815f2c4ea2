package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item together with its inventory counters.
type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	Image         string
	StockQuantity int
	SoldCount     int
}

// Counters returns the inventory counters of the product.
func (p Product) Counters() Counters {
	return Counters{StockQuantity: p.StockQuantity, SoldCount: p.SoldCount}
}

// Repository defines read operations for the product catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
}

// Ledger applies stock/sold adjustments to products.
//
// Adjust applies every adjustment atomically per product and returns the IDs
// of products that no longer exist. Missing products are skipped.
type Ledger interface {
	Adjust(ctx context.Context, adjustments []Adjustment) (missing []string, err error)
}
