//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront-orders/internal/domain/discount"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/notify"
)

type services struct {
	products *ProductRepository
	orders   *order.Service
	returns  *returns.Service
}

func newServices(t *testing.T) *services {
	t.Helper()
	products := NewProductRepository(testPool)
	orders := NewOrderRepository(testPool)
	rets := NewReturnRepository(testPool)
	users := NewUserRepository(testPool)
	coupons := NewCouponRepository(testPool)
	tx := NewTxManager(testPool)

	orderSvc, err := order.NewService(order.Deps{
		Products:   products,
		Ledger:     products,
		Orders:     orders,
		Returns:    rets,
		Users:      users,
		Coupons:    coupons,
		Discounts:  discount.NewEngine(coupons),
		UnitOfWork: tx,
		Publisher:  notify.LogPublisher{},
	}, order.Options{})
	require.NoError(t, err)

	return &services{
		products: products,
		orders:   orderSvc,
		returns:  returns.NewService(rets, orders, products, users, tx, notify.LogPublisher{}),
	}
}

func (s *services) counters(t *testing.T, id string) product.Counters {
	t.Helper()
	p, err := s.products.GetByID(context.Background(), id)
	require.NoError(t, err)
	return product.Counters{StockQuantity: p.StockQuantity, SoldCount: p.SoldCount}
}

// deliver places an order for two units of productID and delivers it.
func (s *services) deliver(t *testing.T, userID, productID string) *order.Order {
	t.Helper()
	ctx := context.Background()
	res, err := s.orders.Create(ctx, order.CreateRequest{
		UserID:            userID,
		Items:             []order.ItemRequest{{ProductID: productID, Quantity: 2}},
		ShippingAddressID: "addr-1",
	})
	require.NoError(t, err)
	_, err = s.orders.TransitionStatus(ctx, res.Order.ID, order.StatusDelivered)
	require.NoError(t, err)
	return res.Order
}

func TestInventory_ItemReturnThenOrderReturn(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	seedUser(t, "inv-item-first")
	seedProduct(t, "p-inv-item-first", "10", 5)

	o := s.deliver(t, "inv-item-first", "p-inv-item-first")
	assert.Equal(t, product.Counters{StockQuantity: 3, SoldCount: 2}, s.counters(t, "p-inv-item-first"))

	r, err := s.returns.Request(ctx, returns.RequestInput{
		UserID: "inv-item-first", OrderID: o.ID, ProductID: "p-inv-item-first", Quantity: 2,
	})
	require.NoError(t, err)
	_, err = s.returns.TransitionStatus(ctx, r.ID, returns.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, product.Counters{StockQuantity: 5, SoldCount: 0}, s.counters(t, "p-inv-item-first"))

	_, err = s.orders.TransitionStatus(ctx, o.ID, order.StatusReturnApproved)
	require.NoError(t, err)
	assert.Equal(t, product.Counters{StockQuantity: 5, SoldCount: 0}, s.counters(t, "p-inv-item-first"))
}

func TestInventory_OrderReturnThenItemReturn(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	seedUser(t, "inv-order-first")
	seedProduct(t, "p-inv-order-first", "10", 5)

	o := s.deliver(t, "inv-order-first", "p-inv-order-first")
	r, err := s.returns.Request(ctx, returns.RequestInput{
		UserID: "inv-order-first", OrderID: o.ID, ProductID: "p-inv-order-first", Quantity: 1,
	})
	require.NoError(t, err)

	_, err = s.orders.TransitionStatus(ctx, o.ID, order.StatusReturnApproved)
	require.NoError(t, err)
	assert.Equal(t, product.Counters{StockQuantity: 5, SoldCount: 0}, s.counters(t, "p-inv-order-first"))

	_, err = s.returns.TransitionStatus(ctx, r.ID, returns.StatusApproved, "")
	require.ErrorIs(t, err, returns.ErrNotReturnable)
	assert.Equal(t, product.Counters{StockQuantity: 5, SoldCount: 0}, s.counters(t, "p-inv-order-first"))

	got, err := s.returns.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, returns.StatusPending, got.Status)
}
