//go:build integration

package repository

import (
	"context"
	"encoding/hex"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront-orders/internal/domain/auth"
	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/notify"
)

func newOrder(userID, productID string, qty int) *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	price := decimal.RequireFromString("120.50")
	total := price.Mul(decimal.NewFromInt(int64(qty)))
	return &order.Order{
		ID:     uuid.NewString(),
		UserID: userID,
		Items: []order.Item{
			{ProductID: productID, Name: productID, Quantity: qty, UnitPrice: price},
		},
		ShippingAddressID: "addr-1",
		Payment:           order.PaymentSnapshot{ID: "pay-1", Status: "paid", Method: "card", OriginalPrice: total},
		TotalPrice:        total,
		Status:            order.StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(testPool)
	seedUser(t, "order-user")
	seedUser(t, "order-other")

	o := newOrder("order-user", "p-order", 2)
	o.IdempotencyKey = "key-1"
	o.Coupon = &order.AppliedCoupon{
		Code:           "SAVE10",
		DiscountType:   coupon.DiscountPercentage,
		DiscountValue:  decimal.NewFromInt(10),
		DiscountAmount: decimal.RequireFromString("24.10"),
	}
	o.TotalPrice = o.TotalPrice.Sub(o.Coupon.DiscountAmount)
	require.NoError(t, repo.Create(ctx, o))

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, o.UserID, got.UserID)
		require.Len(t, got.Items, 1)
		assert.True(t, o.Items[0].UnitPrice.Equal(got.Items[0].UnitPrice))
		assert.True(t, o.TotalPrice.Equal(got.TotalPrice))
		require.NotNil(t, got.Coupon)
		assert.Equal(t, coupon.DiscountPercentage, got.Coupon.DiscountType)
		assert.True(t, o.Coupon.DiscountAmount.Equal(got.Coupon.DiscountAmount))
		assert.Equal(t, "key-1", got.IdempotencyKey)
	})
	t.Run("GetForUser", func(t *testing.T) {
		_, err := repo.GetForUser(ctx, o.ID, "order-other")
		require.ErrorIs(t, err, order.ErrNotFound)

		got, err := repo.GetForUser(ctx, o.ID, "order-user")
		require.NoError(t, err)
		assert.Equal(t, o.ID, got.ID)
	})
	t.Run("DuplicateIdempotencyKey", func(t *testing.T) {
		dup := newOrder("order-user", "p-order", 1)
		dup.IdempotencyKey = "key-1"
		require.ErrorIs(t, repo.Create(ctx, dup), order.ErrDuplicateIdempotencyKey)

		found, err := repo.FindByIdempotencyKey(ctx, "order-user", "key-1")
		require.NoError(t, err)
		assert.Equal(t, o.ID, found.ID)
	})
	t.Run("CompareAndSetStatus", func(t *testing.T) {
		ok, err := repo.CompareAndSetStatus(ctx, o.ID, order.StatusPending, order.StatusProcessing, time.Now())
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.CompareAndSetStatus(ctx, o.ID, order.StatusPending, order.StatusCancelled, time.Now())
		require.NoError(t, err)
		assert.False(t, ok, "stale from status must not match")
	})
	t.Run("List", func(t *testing.T) {
		mine, err := repo.ListByUser(ctx, "order-user")
		require.NoError(t, err)
		require.NotEmpty(t, mine)

		confirmed, err := repo.List(ctx, order.ListFilter{Status: order.StatusProcessing, Limit: 50})
		require.NoError(t, err)
		for _, got := range confirmed {
			assert.Equal(t, order.StatusProcessing, got.Status)
		}
	})
	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		require.ErrorIs(t, err, order.ErrNotFound)
	})
}

func TestProductRepository_Adjust(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testPool)
	seedProduct(t, "p-adjust", "10.00", 5)

	missing, err := repo.Adjust(ctx, []product.Adjustment{
		{ProductID: "p-adjust", Kind: product.Fulfill, Quantity: 2},
		{ProductID: "p-adjust", Kind: product.Fulfill, Quantity: 1},
		{ProductID: "p-gone", Kind: product.Fulfill, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p-gone"}, missing)

	p, err := repo.GetByID(ctx, "p-adjust")
	require.NoError(t, err)
	assert.Equal(t, 2, p.StockQuantity)
	assert.Equal(t, 3, p.SoldCount)

	_, err = repo.Adjust(ctx, []product.Adjustment{{ProductID: "p-adjust", Kind: product.Fulfill, Quantity: 10}})
	require.NoError(t, err)
	p, err = repo.GetByID(ctx, "p-adjust")
	require.NoError(t, err)
	assert.Equal(t, 0, p.StockQuantity, "stock is floored at zero")

	_, err = repo.Adjust(ctx, []product.Adjustment{{ProductID: "p-adjust", Kind: product.Restock, Quantity: 20}})
	require.NoError(t, err)
	p, err = repo.GetByID(ctx, "p-adjust")
	require.NoError(t, err)
	assert.Equal(t, 20, p.StockQuantity)
	assert.Equal(t, 0, p.SoldCount, "sold count is floored at zero")

	_, err = repo.GetByID(ctx, "p-gone")
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestCouponRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository(testPool)
	exec(t, `INSERT INTO coupons (code, discount_type, discount_value, usage_limit, valid_from, valid_until)
		VALUES ('ONCE', 'flat', 5, 1, now() - interval '1 day', now() + interval '1 day')
		ON CONFLICT (code) DO UPDATE SET used_count = 0`)

	c, err := repo.FindByCode(ctx, "once")
	require.NoError(t, err)
	assert.Equal(t, "ONCE", c.Code)
	assert.Equal(t, coupon.DiscountFlat, c.DiscountType)

	ok, err := repo.IncrementUsage(ctx, "ONCE")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IncrementUsage(ctx, "ONCE")
	require.NoError(t, err)
	assert.False(t, ok, "usage limit reached")

	_, err = repo.FindByCode(ctx, "MISSING")
	require.ErrorIs(t, err, coupon.ErrInvalidCoupon)

	// Codes differing only by case cannot coexist.
	_, err = testPool.Exec(ctx, `INSERT INTO coupons (code, discount_type, discount_value, valid_from, valid_until)
		VALUES ('Once', 'flat', 1, now(), now() + interval '1 day')`)
	assert.True(t, isUniqueViolation(err, "coupons_code_upper_idx"), "got %v", err)

	c, err = repo.FindByCode(ctx, " Once ")
	require.NoError(t, err)
	assert.Equal(t, "ONCE", c.Code)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testPool)
	seedUser(t, "user-counter")

	require.NoError(t, repo.RecordSubscriptionDiscount(ctx, "user-counter", time.Now()))
	u, err := repo.GetByID(ctx, "user-counter")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, u.DiscountsUsed, 1)
	assert.NotNil(t, u.LastDiscountUsed)

	require.ErrorIs(t, repo.RecordSubscriptionDiscount(ctx, "nobody", time.Now()), user.ErrNotFound)
	_, err = repo.GetByID(ctx, "nobody")
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestReturnRepository(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(testPool)
	repo := NewReturnRepository(testPool)
	seedUser(t, "return-user")

	o := newOrder("return-user", "p-return", 3)
	require.NoError(t, orders.Create(ctx, o))

	now := time.Now().UTC()
	first := &returns.Return{
		ID: uuid.NewString(), UserID: "return-user", OrderID: o.ID, ProductID: "p-return",
		Quantity: 2, Status: returns.StatusPending, CreatedAt: now, UpdatedAt: now,
	}
	second := &returns.Return{
		ID: uuid.NewString(), UserID: "return-user", OrderID: o.ID, ProductID: "p-return",
		Quantity: 1, Status: returns.StatusPending, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	n, err := repo.RequestedQuantity(ctx, o.ID, "p-return")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ok, err := repo.CompareAndSetStatus(ctx, second.ID, returns.StatusPending, returns.StatusRejected, "worn", time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	n, err = repo.RequestedQuantity(ctx, o.ID, "p-return")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "rejected returns free their quantity")

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, returns.StatusRejected, got.Status)
	assert.Equal(t, "worn", got.RejectionReason)

	received, err := repo.MarkReceived(ctx, first.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, received.Received)

	list, err := repo.List(ctx, returns.ListFilter{UserID: "return-user", Status: returns.StatusPending, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	_, err = repo.MarkReceived(ctx, uuid.NewString(), time.Now())
	require.ErrorIs(t, err, returns.ErrNotFound)

	approved, err := repo.ApprovedQuantities(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, approved)

	ok, err = repo.CompareAndSetStatus(ctx, first.ID, returns.StatusPending, returns.StatusApproved, "", time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	approved, err = repo.ApprovedQuantities(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"p-return": 2}, approved)
}

func TestTxManager(t *testing.T) {
	ctx := context.Background()
	tx := NewTxManager(testPool)
	products := NewProductRepository(testPool)
	seedProduct(t, "p-tx", "1.00", 10)

	t.Run("rollback", func(t *testing.T) {
		err := tx.InTx(ctx, func(ctx context.Context) error {
			if _, err := products.Adjust(ctx, []product.Adjustment{{ProductID: "p-tx", Kind: product.Fulfill, Quantity: 4}}); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		p, err := products.GetByID(ctx, "p-tx")
		require.NoError(t, err)
		assert.Equal(t, 10, p.StockQuantity)
	})

	t.Run("serialization conflict", func(t *testing.T) {
		orders := NewOrderRepository(testPool)
		seedUser(t, "tx-user")
		o := newOrder("tx-user", "p-tx", 1)
		require.NoError(t, orders.Create(ctx, o))

		var (
			wg      sync.WaitGroup
			ready   = make(chan struct{})
			results = make([]error, 2)
			read    sync.WaitGroup
		)
		read.Add(2)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = tx.InTx(ctx, func(ctx context.Context) error {
					current, err := orders.GetByID(ctx, o.ID)
					if err != nil {
						return err
					}
					read.Done()
					<-ready
					_, err = orders.CompareAndSetStatus(ctx, o.ID, current.Status, order.StatusProcessing, time.Now())
					return err
				})
			}()
		}
		read.Wait()
		close(ready)
		wg.Wait()

		failed := 0
		for _, err := range results {
			if err != nil {
				require.ErrorIs(t, err, ErrSerialization)
				failed++
			}
		}
		assert.Equal(t, 1, failed, "exactly one writer must lose")
	})
}

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOutboxRepository(testPool)
	exec(t, `DELETE FROM outbox`)

	records := []notify.Record{
		{EventID: uuid.NewString(), Topic: "orders", Key: "o-1", Payload: []byte(`{"a":1}`)},
		{EventID: uuid.NewString(), Topic: "orders", Key: "o-2", Payload: []byte(`{"a":2}`)},
	}
	require.NoError(t, repo.Insert(ctx, records))
	require.NoError(t, repo.Insert(ctx, records[:1]), "duplicate event ids are ignored")

	pending, err := repo.FetchPending(ctx, 10, 3)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "o-1", pending[0].Key)

	require.NoError(t, repo.MarkSent(ctx, pending[0].ID))
	for range 3 {
		require.NoError(t, repo.MarkFailed(ctx, pending[1].ID, "broker down"))
	}

	pending, err = repo.FetchPending(ctx, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, pending, "sent and exhausted records are not fetched")
}

func TestAPIKeyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAPIKeyRepository(testPool)
	pepper := []byte("pepper")

	ops := &auth.APIKey{
		ID:     "k1",
		Name:   "ops",
		Hash:   auth.Digest(pepper, "ops-key"),
		Scopes: auth.NewScopes("admin", "read"),
	}
	require.NoError(t, repo.Save(ctx, ops))

	got, err := repo.FindByHash(ctx, hex.EncodeToString(ops.Hash))
	require.NoError(t, err)
	assert.Equal(t, ops, got)
	assert.True(t, got.Scopes.Has(auth.ScopeAdmin))

	exec(t, `UPDATE api_keys SET active = FALSE WHERE id = 'k1'`)
	_, err = repo.FindByHash(ctx, hex.EncodeToString(ops.Hash))
	require.ErrorIs(t, err, auth.ErrNotFound, "inactive keys are not found")

	// Saving again reactivates the key.
	require.NoError(t, repo.Save(ctx, ops))
	_, err = repo.FindByHash(ctx, hex.EncodeToString(ops.Hash))
	require.NoError(t, err)

	exec(t, `INSERT INTO api_keys (id, key_hash, name) VALUES ('k2', 'not-hex', 'broken')
		ON CONFLICT (id) DO NOTHING`)
	_, err = repo.FindByHash(ctx, "not-hex")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrNotFound)
}
