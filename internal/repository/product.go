package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront-orders/internal/domain/product"
)

const (
	listProductsSQL = `SELECT id, name, price, image, stock_quantity, sold_count
		FROM products ORDER BY id`

	getProductByIDSQL = `SELECT id, name, price, image, stock_quantity, sold_count
		FROM products WHERE id = $1`

	getProductsByIDsSQL = `SELECT id, name, price, image, stock_quantity, sold_count
		FROM products WHERE id = ANY($1)`

	// Both statements mirror product.Counters.Apply.
	fulfillSQL = `UPDATE products
		SET sold_count = sold_count + $2, stock_quantity = GREATEST(stock_quantity - $2, 0)
		WHERE id = $1`

	restockSQL = `UPDATE products
		SET stock_quantity = stock_quantity + $2, sold_count = GREATEST(sold_count - $2, 0)
		WHERE id = $1`
)

var (
	_ product.Repository = (*ProductRepository)(nil)
	_ product.Ledger     = (*ProductRepository)(nil)
)

// ProductRepository implements product.Repository and product.Ledger backed
// by PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a ProductRepository that uses the given pool.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// List returns all products from the catalog ordered by ID.
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return pgx.CollectRows(rows, scanProduct)
}

// GetByID returns a single product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, getProductByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("getting product %q: %w", id, err)
	}
	return &p, nil
}

// GetByIDs returns products matching any of the given IDs.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, getProductsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("getting products by ids: %w", err)
	}
	return pgx.CollectRows(rows, scanProduct)
}

// Adjust applies each adjustment as one UPDATE. Products that no longer
// exist are skipped and returned.
func (r *ProductRepository) Adjust(ctx context.Context, adjustments []product.Adjustment) ([]string, error) {
	q := conn(ctx, r.pool)

	var missing []string
	for _, adj := range product.Merge(adjustments) {
		var sql string
		switch adj.Kind {
		case product.Fulfill:
			sql = fulfillSQL
		case product.Restock:
			sql = restockSQL
		default:
			return nil, errors.Errorf("unknown adjustment kind %q", adj.Kind)
		}

		tag, err := q.Exec(ctx, sql, adj.ProductID, adj.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%s product %q: %w", adj.Kind, adj.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			missing = append(missing, adj.ProductID)
		}
	}
	return missing, nil
}

func scanProduct(row pgx.CollectableRow) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.StockQuantity, &p.SoldCount)
	return p, err
}
