package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/discount"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/notify"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	products  *mockProductRepo
	ledger    *mockLedger
	orders    *mockOrderRepo
	returned  *mockReturnedQuantities
	users     *mockUserRepo
	coupons   *mockCouponRepo
	uow       *passthroughUoW
	publisher *recordingPublisher
	svc       *Service
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	f := &fixture{
		products: &mockProductRepo{byID: map[string]product.Product{
			"sofa":  {ID: "sofa", Name: "Sofa", Price: d("1000"), Image: "sofa.jpg", StockQuantity: 10, SoldCount: 0},
			"chair": {ID: "chair", Name: "Chair", Price: d("150.50"), StockQuantity: 5, SoldCount: 10},
		}},
		ledger: &mockLedger{counters: map[string]product.Counters{
			"sofa":  {StockQuantity: 10, SoldCount: 0},
			"chair": {StockQuantity: 5, SoldCount: 10},
		}},
		orders:   newOrderRepo(),
		returned: &mockReturnedQuantities{byOrder: map[string]map[string]int{}},
		users: &mockUserRepo{byID: map[string]*user.User{
			"subscriber": {
				ID: "subscriber", Name: "Ada", Email: "ada@example.com",
				Subscription: user.Subscription{IsSubscribed: true, Expiry: fixedNow.Add(30 * 24 * time.Hour), Cost: d("999")},
			},
			"guest": {ID: "guest", Name: "Bob", Email: "bob@example.com"},
		}},
		coupons: &mockCouponRepo{byCode: map[string]*coupon.Coupon{
			"FLAT100": {
				Code: "FLAT100", DiscountType: coupon.DiscountFlat, DiscountValue: d("100"),
				MinPurchase: d("0"), UsageLimit: 10, UsedCount: 3, Status: coupon.StatusActive,
				ValidFrom: fixedNow.Add(-time.Hour), ValidUntil: fixedNow.Add(time.Hour),
			},
			"LAST": {
				Code: "LAST", DiscountType: coupon.DiscountPercentage, DiscountValue: d("10"),
				MinPurchase: d("0"), UsageLimit: 1, UsedCount: 0, Status: coupon.StatusActive,
				ValidFrom: fixedNow.Add(-time.Hour), ValidUntil: fixedNow.Add(time.Hour),
			},
			"BIGSPEND": {
				Code: "BIGSPEND", DiscountType: coupon.DiscountFlat, DiscountValue: d("50"),
				MinPurchase: d("5000"), Status: coupon.StatusActive,
				ValidFrom: fixedNow.Add(-time.Hour), ValidUntil: fixedNow.Add(time.Hour),
			},
		}},
		uow:       &passthroughUoW{},
		publisher: &recordingPublisher{},
	}

	engine := discount.NewEngine(f.coupons, discount.WithClock(func() time.Time { return fixedNow }))
	svc, err := NewService(Deps{
		Products:   f.products,
		Ledger:     f.ledger,
		Orders:     f.orders,
		Returns:    f.returned,
		Users:      f.users,
		Coupons:    f.coupons,
		Discounts:  engine,
		UnitOfWork: f.uow,
		Publisher:  f.publisher,
	}, opts)
	require.NoError(t, err)

	ids := 0
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string {
		ids++
		return fmt.Sprintf("order-%d", ids)
	}
	f.svc = svc
	return f
}

func testCtx(t *testing.T) context.Context {
	return zctx.Base(context.Background(), zaptest.NewLogger(t))
}

func (f *fixture) place(t *testing.T, userID string, items ...ItemRequest) *Order {
	t.Helper()
	res, err := f.svc.Create(testCtx(t), CreateRequest{
		UserID:            userID,
		Items:             items,
		ShippingAddressID: "addr-1",
	})
	require.NoError(t, err)
	return res.Order
}

func TestService_Create_StacksCouponAndSubscription(t *testing.T) {
	f := newFixture(t, Options{})

	res, err := f.svc.Create(testCtx(t), CreateRequest{
		UserID:            "subscriber",
		Items:             []ItemRequest{{ProductID: "sofa", Quantity: 1, Size: "L", Color: "grey"}},
		ShippingAddressID: "addr-1",
		Payment:           PaymentMeta{ID: "pay-1", Status: "authorized", Method: "card"},
		CouponCode:        "FLAT100",
	})
	require.NoError(t, err)
	require.False(t, res.Replayed)

	o := res.Order
	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, d("651").Equal(o.TotalPrice), "total: %s", o.TotalPrice)
	assert.True(t, d("1000").Equal(o.Payment.OriginalPrice))
	assert.Equal(t, "card", o.Payment.Method)

	require.NotNil(t, o.Coupon)
	assert.Equal(t, "FLAT100", o.Coupon.Code)
	assert.Equal(t, coupon.DiscountFlat, o.Coupon.DiscountType)
	assert.True(t, d("100").Equal(o.Coupon.DiscountAmount))

	assert.True(t, o.Subscription.Applied)
	assert.True(t, d("249").Equal(o.Subscription.Amount))
	assert.True(t, d("999").Equal(o.Subscription.SubscriptionCost))

	require.Len(t, o.Items, 1)
	assert.Equal(t, Item{
		ProductID: "sofa", Name: "Sofa", Quantity: 1, UnitPrice: d("1000"),
		Image: "sofa.jpg", Size: "L", Color: "grey",
	}, o.Items[0])

	u := f.users.byID["subscriber"]
	assert.Equal(t, 1, u.DiscountsUsed)
	require.NotNil(t, u.LastDiscountUsed)
	assert.True(t, fixedNow.Equal(*u.LastDiscountUsed))

	assert.Equal(t, 3, f.coupons.byCode["FLAT100"].UsedCount, "usage is not counted by default")
	assert.Equal(t, 2, f.publisher.count(notify.OrderCreated))
	assert.Zero(t, f.ledger.calls, "placing an order does not touch inventory")
}

func TestService_Create_BasePriceFromCatalog(t *testing.T) {
	f := newFixture(t, Options{})

	o := f.place(t, "guest",
		ItemRequest{ProductID: "chair", Quantity: 2},
		ItemRequest{ProductID: "sofa", Quantity: 1},
	)
	assert.True(t, d("1301").Equal(o.Payment.OriginalPrice))
	assert.True(t, d("1301").Equal(o.TotalPrice))
	assert.Nil(t, o.Coupon)
	assert.False(t, o.Subscription.Applied)
	assert.Zero(t, f.users.byID["guest"].DiscountsUsed)
}

func TestService_Create_CountCouponUsage(t *testing.T) {
	f := newFixture(t, Options{CountCouponUsage: true})

	_, err := f.svc.Create(testCtx(t), CreateRequest{
		UserID: "guest", ShippingAddressID: "a",
		Items:      []ItemRequest{{ProductID: "sofa", Quantity: 1}},
		CouponCode: "LAST",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.coupons.byCode["LAST"].UsedCount)

	_, err = f.svc.Create(testCtx(t), CreateRequest{
		UserID: "guest", ShippingAddressID: "a",
		Items:      []ItemRequest{{ProductID: "sofa", Quantity: 1}},
		CouponCode: "LAST",
	})
	require.ErrorIs(t, err, coupon.ErrCouponExhausted)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
		wantAs  any
	}{
		{
			name:    "missing user",
			req:     CreateRequest{ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "sofa", Quantity: 1}}},
			wantErr: ErrMissingUser,
		},
		{
			name:    "missing address",
			req:     CreateRequest{UserID: "guest", Items: []ItemRequest{{ProductID: "sofa", Quantity: 1}}},
			wantErr: ErrMissingAddress,
		},
		{
			name:    "no items",
			req:     CreateRequest{UserID: "guest", ShippingAddressID: "a"},
			wantErr: ErrEmptyItems,
		},
		{
			name:   "zero quantity",
			req:    CreateRequest{UserID: "guest", ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "sofa", Quantity: 0}}},
			wantAs: new(*InvalidQuantityError),
		},
		{
			name:   "quantity above cap",
			req:    CreateRequest{UserID: "guest", ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "sofa", Quantity: MaxItemQuantity + 1}}},
			wantAs: new(*InvalidQuantityError),
		},
		{
			name:   "quantity beyond int32",
			req:    CreateRequest{UserID: "guest", ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "sofa", Quantity: 1 << 40}}},
			wantAs: new(*InvalidQuantityError),
		},
		{
			name:   "unknown product",
			req:    CreateRequest{UserID: "guest", ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "lamp", Quantity: 1}}},
			wantAs: new(*ProductNotFoundError),
		},
		{
			name:    "unknown user",
			req:     CreateRequest{UserID: "nobody", ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "sofa", Quantity: 1}}},
			wantErr: user.ErrNotFound,
		},
		{
			name:    "invalid coupon",
			req:     CreateRequest{UserID: "subscriber", ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "sofa", Quantity: 1}}, CouponCode: "NOPE"},
			wantErr: coupon.ErrInvalidCoupon,
		},
		{
			name:   "below minimum purchase",
			req:    CreateRequest{UserID: "subscriber", ShippingAddressID: "a", Items: []ItemRequest{{ProductID: "sofa", Quantity: 1}}, CouponCode: "BIGSPEND"},
			wantAs: new(*coupon.BelowMinimumError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})

			_, err := f.svc.Create(testCtx(t), tt.req)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantAs != nil {
				assert.ErrorAs(t, err, tt.wantAs)
			}

			assert.Zero(t, f.orders.creates, "no order persisted")
			assert.Zero(t, f.users.byID["subscriber"].DiscountsUsed, "usage counter untouched")
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestService_Create_Idempotent(t *testing.T) {
	f := newFixture(t, Options{})
	req := CreateRequest{
		UserID:            "subscriber",
		Items:             []ItemRequest{{ProductID: "sofa", Quantity: 1}},
		ShippingAddressID: "a",
		IdempotencyKey:    "key-1",
	}

	first, err := f.svc.Create(testCtx(t), req)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := f.svc.Create(testCtx(t), req)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Order.ID, second.Order.ID)

	assert.Equal(t, 1, f.orders.creates)
	assert.Equal(t, 1, f.users.byID["subscriber"].DiscountsUsed)
	assert.Equal(t, 2, f.publisher.count(notify.OrderCreated), "replay does not notify")
}

func TestService_Create_IdempotencyRaceReturnsExisting(t *testing.T) {
	f := newFixture(t, Options{})
	existing := &Order{ID: "winner", UserID: "guest", IdempotencyKey: "k", Status: StatusPending}
	f.orders.byID[existing.ID] = existing
	f.orders.createErr = ErrDuplicateIdempotencyKey
	f.orders.findMisses = 1

	res, err := f.svc.Create(testCtx(t), CreateRequest{
		UserID: "guest", ShippingAddressID: "a",
		Items:          []ItemRequest{{ProductID: "sofa", Quantity: 1}},
		IdempotencyKey: " k ",
	})
	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.Equal(t, "winner", res.Order.ID)
}

func TestService_TransitionStatus_DeliveredAdjustsInventoryOnce(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := testCtx(t)
	o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 3})

	got, err := f.svc.TransitionStatus(ctx, o.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)
	assert.Equal(t, product.Counters{StockQuantity: 7, SoldCount: 3}, f.ledger.counters["sofa"])

	// Writing delivered again is a no-op.
	got, err = f.svc.TransitionStatus(ctx, o.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)
	assert.Equal(t, product.Counters{StockQuantity: 7, SoldCount: 3}, f.ledger.counters["sofa"])
	assert.Equal(t, 1, f.ledger.calls)
	assert.Equal(t, 2, f.publisher.count(notify.OrderStatusChanged))
}

func TestService_TransitionStatus_DeliveredThenReturnedNetsToZero(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := testCtx(t)
	o := f.place(t, "guest",
		ItemRequest{ProductID: "chair", Quantity: 1, Color: "red"},
		ItemRequest{ProductID: "chair", Quantity: 2, Color: "blue"},
	)
	before := f.ledger.counters["chair"]

	_, err := f.svc.TransitionStatus(ctx, o.ID, StatusProcessing)
	require.NoError(t, err)
	_, err = f.svc.TransitionStatus(ctx, o.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, product.Counters{StockQuantity: 2, SoldCount: 13}, f.ledger.counters["chair"])

	_, err = f.svc.TransitionStatus(ctx, o.ID, StatusReturnApproved)
	require.NoError(t, err)
	assert.Equal(t, before, f.ledger.counters["chair"])
	assert.Equal(t, 6, f.publisher.count(notify.OrderStatusChanged))
}

func TestService_TransitionStatus_ReturnApprovedSkipsReturnedUnits(t *testing.T) {
	tests := []struct {
		name     string
		returned map[string]int
		want     map[string]product.Counters
		calls    int
	}{
		{
			name: "nothing returned",
			want: map[string]product.Counters{
				"sofa":  {StockQuantity: 10, SoldCount: 0},
				"chair": {StockQuantity: 5, SoldCount: 10},
			},
			calls: 2,
		},
		{
			name:     "partially returned",
			returned: map[string]int{"sofa": 1},
			want: map[string]product.Counters{
				"sofa":  {StockQuantity: 10, SoldCount: 0},
				"chair": {StockQuantity: 5, SoldCount: 10},
			},
			calls: 2,
		},
		{
			name:     "one product fully returned",
			returned: map[string]int{"sofa": 2},
			want: map[string]product.Counters{
				"sofa":  {StockQuantity: 10, SoldCount: 0},
				"chair": {StockQuantity: 5, SoldCount: 10},
			},
			calls: 2,
		},
		{
			name:     "everything returned",
			returned: map[string]int{"sofa": 2, "chair": 1},
			want: map[string]product.Counters{
				"sofa":  {StockQuantity: 10, SoldCount: 0},
				"chair": {StockQuantity: 5, SoldCount: 10},
			},
			calls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			ctx := testCtx(t)
			o := f.place(t, "guest",
				ItemRequest{ProductID: "sofa", Quantity: 2},
				ItemRequest{ProductID: "chair", Quantity: 1},
			)
			_, err := f.svc.TransitionStatus(ctx, o.ID, StatusDelivered)
			require.NoError(t, err)

			// Item returns already moved their units back to stock.
			for id, n := range tt.returned {
				f.ledger.counters[id] = f.ledger.counters[id].Apply(product.Adjustment{ProductID: id, Kind: product.Restock, Quantity: n})
			}
			f.returned.byOrder[o.ID] = tt.returned

			got, err := f.svc.TransitionStatus(ctx, o.ID, StatusReturnApproved)
			require.NoError(t, err)
			assert.Equal(t, StatusReturnApproved, got.Status)
			assert.Equal(t, tt.want, f.ledger.counters)
			assert.Equal(t, tt.calls, f.ledger.calls)
		})
	}
}

func TestService_TransitionStatus_ReturnedQuantitiesFailure(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := testCtx(t)
	o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 2})
	_, err := f.svc.TransitionStatus(ctx, o.ID, StatusDelivered)
	require.NoError(t, err)

	f.returned.err = errBoom
	_, err = f.svc.TransitionStatus(ctx, o.ID, StatusReturnApproved)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, product.Counters{StockQuantity: 8, SoldCount: 2}, f.ledger.counters["sofa"])
	assert.Equal(t, 1, f.ledger.calls)
}

func TestService_TransitionStatus_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		path    []Status
		next    Status
		wantErr error
		wantAs  any
	}{
		{name: "unknown status", next: Status("shipped"), wantErr: ErrInvalidStatus},
		{name: "rejected alias is not accepted", next: Status("rejected"), wantErr: ErrInvalidStatus},
		{name: "cancelled is terminal", path: []Status{StatusCancelled}, next: StatusDelivered, wantAs: new(*TransitionError)},
		{name: "return approved is terminal", path: []Status{StatusDelivered, StatusReturnApproved}, next: StatusDelivered, wantAs: new(*TransitionError)},
		{name: "pending cannot be returned", next: StatusReturnApproved, wantAs: new(*TransitionError)},
		{name: "delivered cannot be cancelled by admin", path: []Status{StatusDelivered}, next: StatusCancelled, wantAs: new(*TransitionError)},
		{name: "processing back to pending", path: []Status{StatusProcessing}, next: StatusPending, wantAs: new(*TransitionError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			ctx := testCtx(t)
			o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})
			for _, st := range tt.path {
				_, err := f.svc.TransitionStatus(ctx, o.ID, st)
				require.NoError(t, err)
			}
			counters := f.ledger.counters["sofa"]
			notified := len(f.publisher.events)

			_, err := f.svc.TransitionStatus(ctx, o.ID, tt.next)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantAs != nil {
				assert.ErrorAs(t, err, tt.wantAs)
			}
			assert.Equal(t, counters, f.ledger.counters["sofa"])
			assert.Len(t, f.publisher.events, notified)
		})
	}
}

func TestService_TransitionStatus_NotFound(t *testing.T) {
	f := newFixture(t, Options{})
	_, err := f.svc.TransitionStatus(testCtx(t), "missing", StatusDelivered)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_TransitionStatus_ConcurrentUpdate(t *testing.T) {
	f := newFixture(t, Options{})
	o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})
	f.orders.casFail = true

	_, err := f.svc.TransitionStatus(testCtx(t), o.ID, StatusDelivered)
	require.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Zero(t, f.ledger.calls)
	assert.Zero(t, f.publisher.count(notify.OrderStatusChanged))
}

func TestService_TransitionStatus_NotificationFailureIsSwallowed(t *testing.T) {
	f := newFixture(t, Options{})
	o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})
	f.publisher.err = fmt.Errorf("%w: smtp down", notify.ErrDelivery)

	got, err := f.svc.TransitionStatus(testCtx(t), o.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)

	stored, err := f.orders.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, stored.Status)
}

func TestService_TransitionStatus_MissingProductIsSkipped(t *testing.T) {
	f := newFixture(t, Options{})
	o := f.place(t, "guest",
		ItemRequest{ProductID: "sofa", Quantity: 1},
		ItemRequest{ProductID: "chair", Quantity: 1},
	)
	delete(f.ledger.counters, "chair")

	_, err := f.svc.TransitionStatus(testCtx(t), o.ID, StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, product.Counters{StockQuantity: 9, SoldCount: 1}, f.ledger.counters["sofa"])
}

func TestService_Cancel(t *testing.T) {
	t.Run("pending order", func(t *testing.T) {
		f := newFixture(t, Options{})
		o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})

		got, err := f.svc.Cancel(testCtx(t), o.ID, "guest")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
		assert.Zero(t, f.ledger.calls)
		assert.Equal(t, 2, f.publisher.count(notify.OrderStatusChanged))
	})

	t.Run("processing order", func(t *testing.T) {
		f := newFixture(t, Options{})
		o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})
		_, err := f.svc.TransitionStatus(testCtx(t), o.ID, StatusProcessing)
		require.NoError(t, err)

		got, err := f.svc.Cancel(testCtx(t), o.ID, "guest")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("delivered order", func(t *testing.T) {
		f := newFixture(t, Options{})
		o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})
		_, err := f.svc.TransitionStatus(testCtx(t), o.ID, StatusDelivered)
		require.NoError(t, err)
		counters := f.ledger.counters["sofa"]

		_, err = f.svc.Cancel(testCtx(t), o.ID, "guest")
		require.ErrorIs(t, err, ErrNotCancellable)

		stored, err := f.orders.GetByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, stored.Status)
		assert.Equal(t, counters, f.ledger.counters["sofa"])
	})

	t.Run("legacy order without status", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.orders.byID["legacy"] = &Order{ID: "legacy", UserID: "guest"}

		got, err := f.svc.Cancel(testCtx(t), "legacy", "guest")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("someone else's order", func(t *testing.T) {
		f := newFixture(t, Options{})
		o := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})

		_, err := f.svc.Cancel(testCtx(t), o.ID, "subscriber")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Quote(t *testing.T) {
	f := newFixture(t, Options{})

	q, err := f.svc.Quote(testCtx(t), "subscriber", []ItemRequest{{ProductID: "sofa", Quantity: 1}}, "FLAT100")
	require.NoError(t, err)
	assert.True(t, d("651").Equal(q.FinalPrice))
	assert.Zero(t, f.users.byID["subscriber"].DiscountsUsed, "quote has no side effects")
	assert.Zero(t, f.orders.creates)

	q, err = f.svc.Quote(testCtx(t), "", []ItemRequest{{ProductID: "sofa", Quantity: 1}}, "")
	require.NoError(t, err)
	assert.True(t, d("1000").Equal(q.FinalPrice))
	assert.False(t, q.SubscriptionApplied)
}

func TestService_Lists(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := testCtx(t)
	a := f.place(t, "guest", ItemRequest{ProductID: "sofa", Quantity: 1})
	f.place(t, "subscriber", ItemRequest{ProductID: "sofa", Quantity: 1})
	_, err := f.svc.TransitionStatus(ctx, a.ID, StatusProcessing)
	require.NoError(t, err)

	mine, err := f.svc.ListForUser(ctx, "guest")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a.ID, mine[0].ID)

	_, err = f.svc.ListForUser(ctx, " ")
	require.ErrorIs(t, err, ErrMissingUser)

	processing, err := f.svc.List(ctx, ListFilter{Status: StatusProcessing})
	require.NoError(t, err)
	require.Len(t, processing, 1)

	_, err = f.svc.List(ctx, ListFilter{Status: "bogus"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.GetForUser(ctx, a.ID, "subscriber")
	require.ErrorIs(t, err, ErrNotFound)

	got, err := f.svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
}

func TestService_Create_RepositoryFailure(t *testing.T) {
	f := newFixture(t, Options{})
	f.products.getErr = errBoom

	_, err := f.svc.Create(testCtx(t), CreateRequest{
		UserID: "guest", ShippingAddressID: "a",
		Items: []ItemRequest{{ProductID: "sofa", Quantity: 1}},
	})
	require.True(t, errors.Is(err, errBoom))
}
