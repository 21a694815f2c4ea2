package handler

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront-orders/internal/domain/auth"
	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/discount"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/oas"
)

// --- Fakes ---

type fakeOrders struct {
	quote      discount.Quote
	result     *order.CreateResult
	order      *order.Order
	list       []order.Order
	err        error
	lastCreate order.CreateRequest
	lastStatus order.Status
	lastFilter order.ListFilter
	lastUserID string
}

func (f *fakeOrders) Quote(_ context.Context, userID string, _ []order.ItemRequest, _ string) (discount.Quote, error) {
	f.lastUserID = userID
	return f.quote, f.err
}

func (f *fakeOrders) Create(_ context.Context, req order.CreateRequest) (*order.CreateResult, error) {
	f.lastCreate = req
	return f.result, f.err
}

func (f *fakeOrders) TransitionStatus(_ context.Context, _ string, next order.Status) (*order.Order, error) {
	f.lastStatus = next
	return f.order, f.err
}

func (f *fakeOrders) Cancel(_ context.Context, _, userID string) (*order.Order, error) {
	f.lastUserID = userID
	return f.order, f.err
}

func (f *fakeOrders) Get(context.Context, string) (*order.Order, error) { return f.order, f.err }

func (f *fakeOrders) GetForUser(_ context.Context, _, userID string) (*order.Order, error) {
	f.lastUserID = userID
	return f.order, f.err
}

func (f *fakeOrders) ListForUser(_ context.Context, userID string) ([]order.Order, error) {
	f.lastUserID = userID
	return f.list, f.err
}

func (f *fakeOrders) List(_ context.Context, filter order.ListFilter) ([]order.Order, error) {
	f.lastFilter = filter
	return f.list, f.err
}

type fakeReturns struct {
	ret        *returns.Return
	list       []returns.Return
	err        error
	lastInput  returns.RequestInput
	lastStatus returns.Status
	lastReason string
	lastFilter returns.ListFilter
}

func (f *fakeReturns) Request(_ context.Context, in returns.RequestInput) (*returns.Return, error) {
	f.lastInput = in
	return f.ret, f.err
}

func (f *fakeReturns) TransitionStatus(_ context.Context, _ string, next returns.Status, reason string) (*returns.Return, error) {
	f.lastStatus, f.lastReason = next, reason
	return f.ret, f.err
}

func (f *fakeReturns) MarkReceived(context.Context, string) (*returns.Return, error) {
	return f.ret, f.err
}

func (f *fakeReturns) Get(context.Context, string) (*returns.Return, error) { return f.ret, f.err }

func (f *fakeReturns) List(_ context.Context, filter returns.ListFilter) ([]returns.Return, error) {
	f.lastFilter = filter
	return f.list, f.err
}

type fakeProducts struct {
	products []product.Product
}

func (f *fakeProducts) List(context.Context) ([]product.Product, error) { return f.products, nil }

func (f *fakeProducts) GetByID(_ context.Context, id string) (*product.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, product.ErrNotFound
}

func (f *fakeProducts) GetByIDs(context.Context, []string) ([]product.Product, error) {
	return f.products, nil
}

type fakeAPIKeys struct {
	keys map[string]*auth.APIKey
	err  error
}

func (f *fakeAPIKeys) FindByHash(_ context.Context, hash string) (*auth.APIKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	k, ok := f.keys[hash]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return k, nil
}

func newAPIKeys(scopes map[string][]string) *fakeAPIKeys {
	keys := &fakeAPIKeys{keys: map[string]*auth.APIKey{}}
	for key, names := range scopes {
		digest := auth.Digest(testPepper, key)
		keys.keys[hex.EncodeToString(digest)] = &auth.APIKey{
			ID:     key,
			Name:   key,
			Hash:   digest,
			Scopes: auth.NewScopes(names...),
		}
	}
	return keys
}

// --- Helpers ---

var testPepper = []byte("pepper")

const (
	adminKey  = "admin-secret"
	viewerKey = "viewer-secret"

	userIDHeader         = "X-User-ID"
	apiKeyHeader         = "api_key"
	idempotencyKeyHeader = "Idempotency-Key"
)

type fixture struct {
	orders   *fakeOrders
	returns  *fakeReturns
	products *fakeProducts
	handler  *Handler
	server   http.Handler
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		orders:  &fakeOrders{},
		returns: &fakeReturns{},
		products: &fakeProducts{products: []product.Product{
			{ID: "p1", Name: "Sofa", Price: decimal.RequireFromString("1000"), Image: "img/sofa.jpg", StockQuantity: 3, SoldCount: 1},
		}},
	}
	keys := newAPIKeys(map[string][]string{
		adminKey:  {string(auth.ScopeAdmin)},
		viewerKey: {"read"},
	})
	f.handler = New(cfg, f.orders, f.returns, f.products, keys, testPepper)

	srv, err := f.handler.NewServer()
	require.NoError(t, err)
	f.server = srv
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.server.ServeHTTP(w, req)

	var out map[string]any
	dec := json.NewDecoder(w.Body)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&out), "response must be a JSON envelope")
	return w, out
}

func asUser(id string) map[string]string { return map[string]string{userIDHeader: id} }

func asAdmin() map[string]string { return map[string]string{apiKeyHeader: adminKey} }

func errorKind(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "error object expected in %v", body)
	return e["kind"].(string)
}

func sampleOrder() *order.Order {
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &order.Order{
		ID:     "o1",
		UserID: "u1",
		Items: []order.Item{
			{ProductID: "p1", Name: "Sofa", Quantity: 1, UnitPrice: decimal.RequireFromString("1000")},
		},
		ShippingAddressID: "addr-1",
		Payment:           order.PaymentSnapshot{ID: "pay-1", Status: "paid", Method: "card", OriginalPrice: decimal.RequireFromString("1000")},
		TotalPrice:        decimal.RequireFromString("651"),
		Coupon: &order.AppliedCoupon{
			Code: "FLAT100", DiscountType: coupon.DiscountFlat,
			DiscountValue: decimal.RequireFromString("100"), DiscountAmount: decimal.RequireFromString("100"),
		},
		Subscription: order.SubscriptionDiscount{Applied: true, Amount: decimal.RequireFromString("249")},
		Status:       order.StatusPending,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

// --- Tests ---

func TestPlaceOrder(t *testing.T) {
	const body = `{
		"items": [{"product_id": "p1", "quantity": 1, "size": "L"}],
		"shipping_address_id": "addr-1",
		"payment": {"id": "pay-1", "status": "paid", "method": "card"},
		"coupon_code": "FLAT100",
		"unknown": {"ignored": true}
	}`

	t.Run("created", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.orders.result = &order.CreateResult{Order: sampleOrder()}

		headers := asUser("u1")
		headers[idempotencyKeyHeader] = "key-1"
		w, out := f.do(t, http.MethodPost, "/api/orders", body, headers)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, "order placed", out["message"])

		req := f.orders.lastCreate
		assert.Equal(t, "u1", req.UserID)
		assert.Equal(t, "key-1", req.IdempotencyKey)
		assert.Equal(t, "addr-1", req.ShippingAddressID)
		assert.Equal(t, "FLAT100", req.CouponCode)
		assert.Equal(t, order.PaymentMeta{ID: "pay-1", Status: "paid", Method: "card"}, req.Payment)
		assert.Equal(t, []order.ItemRequest{{ProductID: "p1", Quantity: 1, Size: "L"}}, req.Items)

		data := out["data"].(map[string]any)
		assert.Equal(t, json.Number("651"), data["total_price"])
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, "2025-06-15T12:00:00Z", data["created_at"])
		cp := data["coupon"].(map[string]any)
		assert.Equal(t, "FLAT100", cp["code"])
		assert.Equal(t, json.Number("100"), cp["discount_amount"])
	})

	t.Run("replayed", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.orders.result = &order.CreateResult{Order: sampleOrder(), Replayed: true}

		w, out := f.do(t, http.MethodPost, "/api/orders", body, asUser("u1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "order already placed", out["message"])
		assert.Equal(t, "o1", out["data"].(map[string]any)["id"])
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t, Config{})
		w, out := f.do(t, http.MethodPost, "/api/orders", body, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, false, out["success"])
		assert.Equal(t, string(KindUnauthorized), errorKind(t, out))
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t, Config{})
		w, out := f.do(t, http.MethodPost, "/api/orders", `{"items": [{"quantity": "two"}]}`, asUser("u1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(KindValidation), errorKind(t, out))
	})

	t.Run("empty body", func(t *testing.T) {
		f := newFixture(t, Config{})
		w, out := f.do(t, http.MethodPost, "/api/orders", "", asUser("u1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(KindValidation), errorKind(t, out))
	})

	t.Run("coupon rejected", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.orders.err = errors.Wrap(coupon.ErrCouponExhausted, "quote")

		w, out := f.do(t, http.MethodPost, "/api/orders", body, asUser("u1"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, string(KindCoupon), errorKind(t, out))
		assert.Equal(t, coupon.ErrCouponExhausted.Error(), out["message"])
	})
}

func TestQuoteOrder(t *testing.T) {
	f := newFixture(t, Config{})
	f.orders.quote = discount.Quote{
		BasePrice:            decimal.RequireFromString("1000"),
		CouponDiscount:       decimal.RequireFromString("100"),
		Coupon:               &coupon.Coupon{Code: "FLAT100"},
		SubscriptionDiscount: decimal.RequireFromString("249"),
		SubscriptionApplied:  true,
		FinalPrice:           decimal.RequireFromString("651"),
	}

	w, out := f.do(t, http.MethodPost, "/api/orders/quote",
		`{"items": [{"product_id": "p1", "quantity": 1}], "coupon_code": "FLAT100"}`, asUser("u1"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", f.orders.lastUserID)
	data := out["data"].(map[string]any)
	assert.Equal(t, json.Number("651"), data["final_price"])
	assert.Equal(t, json.Number("249"), data["subscription_discount"])
	assert.Equal(t, "FLAT100", data["coupon_code"])
	assert.Equal(t, true, data["subscription_applied"])
}

func TestCancelOrder(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind Kind
	}{
		{name: "cancelled", wantCode: http.StatusOK},
		{name: "delivered order", err: order.ErrNotCancellable, wantCode: http.StatusConflict, wantKind: KindState},
		{name: "other user's order", err: order.ErrNotFound, wantCode: http.StatusNotFound, wantKind: KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Config{})
			f.orders.order = sampleOrder()
			f.orders.err = tt.err

			w, out := f.do(t, http.MethodPut, "/api/orders/o1/cancel", "", asUser("u2"))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "u2", f.orders.lastUserID)
			if tt.wantKind != "" {
				assert.Equal(t, string(tt.wantKind), errorKind(t, out))
			}
		})
	}
}

func TestMyOrders(t *testing.T) {
	f := newFixture(t, Config{})
	f.orders.list = []order.Order{*sampleOrder()}
	f.orders.order = sampleOrder()

	w, out := f.do(t, http.MethodGet, "/api/orders/my", "", asUser("u1"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"], 1)
	assert.Equal(t, "u1", f.orders.lastUserID)

	w, out = f.do(t, http.MethodGet, "/api/orders/my/o1", "", asUser("u1"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "o1", out["data"].(map[string]any)["id"])
}

func TestAdminAuthentication(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{name: "missing key", key: "", wantCode: http.StatusUnauthorized},
		{name: "unknown key", key: "nope", wantCode: http.StatusUnauthorized},
		{name: "key without admin scope", key: viewerKey, wantCode: http.StatusForbidden},
		{name: "admin key", key: adminKey, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Config{})
			w, _ := f.do(t, http.MethodGet, "/api/orders", "", map[string]string{apiKeyHeader: tt.key})
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestListOrders_Filter(t *testing.T) {
	f := newFixture(t, Config{})

	w, _ := f.do(t, http.MethodGet, "/api/orders?status=processing&limit=10&offset=20", "", asAdmin())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.ListFilter{Status: order.StatusProcessing, Limit: 10, Offset: 20}, f.orders.lastFilter)

	w, out := f.do(t, http.MethodGet, "/api/orders?status=shipped", "", asAdmin())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(KindValidation), errorKind(t, out))

	w, _ = f.do(t, http.MethodGet, "/api/orders?limit=-1", "", asAdmin())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantCode   int
		wantKind   Kind
		wantStatus order.Status
	}{
		{name: "delivered", body: `{"status": "delivered"}`, wantCode: http.StatusOK, wantStatus: order.StatusDelivered},
		{name: "padded status", body: `{"status": " processing "}`, wantCode: http.StatusBadRequest, wantKind: KindValidation},
		{name: "missing status", body: `{}`, wantCode: http.StatusBadRequest, wantKind: KindValidation},
		{name: "unknown status", body: `{"status": "shipped"}`, wantCode: http.StatusBadRequest, wantKind: KindValidation},
		{
			name:     "forbidden transition",
			body:     `{"status": "pending"}`,
			err:      &order.TransitionError{From: order.StatusDelivered, To: order.StatusPending},
			wantCode: http.StatusConflict,
			wantKind: KindState,
		},
		{name: "lost race", body: `{"status": "delivered"}`, err: order.ErrConcurrentUpdate, wantCode: http.StatusConflict, wantKind: KindConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Config{})
			f.orders.order = sampleOrder()
			f.orders.err = tt.err

			w, out := f.do(t, http.MethodPatch, "/api/orders/o1/status", tt.body, asAdmin())

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantKind != "" {
				assert.Equal(t, string(tt.wantKind), errorKind(t, out))
				return
			}
			assert.Equal(t, tt.wantStatus, f.orders.lastStatus)
		})
	}
}

func TestReturns(t *testing.T) {
	ret := &returns.Return{ID: "r1", UserID: "u1", OrderID: "o1", ProductID: "p1", Quantity: 2, Status: returns.StatusPending}

	t.Run("request", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.returns.ret = ret

		w, out := f.do(t, http.MethodPost, "/api/returns",
			`{"order_id": "o1", "product_id": "p1", "quantity": 2}`, asUser("u1"))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, returns.RequestInput{UserID: "u1", OrderID: "o1", ProductID: "p1", Quantity: 2}, f.returns.lastInput)
		assert.Equal(t, "r1", out["data"].(map[string]any)["id"])
	})

	t.Run("request exceeding ordered quantity", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.returns.err = &returns.QuantityError{ProductID: "p1", Requested: 5, Available: 2}

		w, out := f.do(t, http.MethodPost, "/api/returns",
			`{"order_id": "o1", "product_id": "p1", "quantity": 5}`, asUser("u1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(KindValidation), errorKind(t, out))
	})

	t.Run("reject with reason", func(t *testing.T) {
		f := newFixture(t, Config{})
		f.returns.ret = ret

		w, _ := f.do(t, http.MethodPatch, "/api/admin/returns/r1/status",
			`{"status": "return_rejected", "rejection_reason": "worn"}`, asAdmin())

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, returns.StatusRejected, f.returns.lastStatus)
		assert.Equal(t, "worn", f.returns.lastReason)
	})

	t.Run("short rejected form is invalid", func(t *testing.T) {
		f := newFixture(t, Config{})

		w, out := f.do(t, http.MethodPatch, "/api/admin/returns/r1/status", `{"status": "rejected"}`, asAdmin())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(KindValidation), errorKind(t, out))
	})

	t.Run("received", func(t *testing.T) {
		f := newFixture(t, Config{})
		received := *ret
		received.Received = true
		f.returns.ret = &received

		w, out := f.do(t, http.MethodPatch, "/api/admin/returns/r1/received", "", asAdmin())

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, out["data"].(map[string]any)["received"])
	})

	t.Run("admin list filter", func(t *testing.T) {
		f := newFixture(t, Config{})

		w, _ := f.do(t, http.MethodGet, "/api/admin/returns?status=pending&user_id=u9&order_id=o1", "", asAdmin())

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, returns.ListFilter{UserID: "u9", OrderID: "o1", Status: returns.StatusPending}, f.returns.lastFilter)
	})

	t.Run("user list is scoped to caller", func(t *testing.T) {
		f := newFixture(t, Config{})

		w, _ := f.do(t, http.MethodGet, "/api/returns/my?user_id=someone-else", "", asUser("u1"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", f.returns.lastFilter.UserID)
	})
}

func TestProducts(t *testing.T) {
	f := newFixture(t, Config{ImageBaseURL: "https://cdn.example.com/"})

	w, out := f.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := out["data"].([]any)
	require.Len(t, list, 1)
	p := list[0].(map[string]any)
	assert.Equal(t, "https://cdn.example.com/img/sofa.jpg", p["image"])
	assert.Equal(t, json.Number("1000"), p["price"])
	assert.Equal(t, json.Number("3"), p["stock_quantity"])

	w, out = f.do(t, http.MethodGet, "/api/products/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(KindNotFound), errorKind(t, out))
}

func TestInternalErrorDetail(t *testing.T) {
	for _, expose := range []bool{false, true} {
		f := newFixture(t, Config{ExposeErrors: expose})
		f.orders.err = errors.New("connection reset by peer")

		w, out := f.do(t, http.MethodGet, "/api/orders/my", "", asUser("u1"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", out["message"])
		detail, ok := out["error"].(map[string]any)["detail"]
		assert.Equal(t, expose, ok)
		if expose {
			assert.Equal(t, "connection reset by peer", detail)
		}
	}
}

func TestRouteNotFound(t *testing.T) {
	f := newFixture(t, Config{})

	w, out := f.do(t, http.MethodGet, "/api/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, string(KindNotFound), errorKind(t, out))
}

func TestHandler_PlaceOrder(t *testing.T) {
	f := newFixture(t, Config{})
	ctx := context.WithValue(context.Background(), userIDKey{}, "u1")

	f.orders.result = &order.CreateResult{Order: sampleOrder()}
	res, err := f.handler.PlaceOrder(ctx, &oas.PlaceOrderRequest{
		Items:             []oas.ItemRequest{{ProductID: "p1", Quantity: 2, Color: oas.NewOptString("red")}},
		ShippingAddressID: oas.NewOptString("addr-1"),
	}, oas.PlaceOrderParams{IdempotencyKey: oas.NewOptString("key-1")})
	require.NoError(t, err)

	created, ok := res.(*oas.OrderResponse)
	require.True(t, ok, "new orders answer with OrderResponse, got %T", res)
	assert.Equal(t, "order placed", created.Message)
	assert.Equal(t, oas.OrderStatus("pending"), created.Data.Status)
	assert.Equal(t, 651.0, created.Data.TotalPrice)
	cp, ok := created.Data.Coupon.Get()
	require.True(t, ok)
	assert.Equal(t, "flat", cp.DiscountType)

	assert.Equal(t, order.CreateRequest{
		UserID:            "u1",
		Items:             []order.ItemRequest{{ProductID: "p1", Quantity: 2, Color: "red"}},
		ShippingAddressID: "addr-1",
		IdempotencyKey:    "key-1",
	}, f.orders.lastCreate)

	f.orders.result = &order.CreateResult{Order: sampleOrder(), Replayed: true}
	res, err = f.handler.PlaceOrder(ctx, &oas.PlaceOrderRequest{}, oas.PlaceOrderParams{})
	require.NoError(t, err)
	_, ok = res.(*oas.ReplayedOrderResponse)
	assert.True(t, ok, "replays answer with ReplayedOrderResponse, got %T", res)
}

func TestHandler_GetOrder_LegacyRecord(t *testing.T) {
	f := newFixture(t, Config{})
	o := sampleOrder()
	o.Coupon = nil
	o.Status = ""
	f.orders.order = o

	res, err := f.handler.GetOrder(context.Background(), oas.GetOrderParams{ID: "o1"})
	require.NoError(t, err)
	assert.False(t, res.Data.Coupon.IsSet())
	assert.Equal(t, oas.OrderStatus("pending"), res.Data.Status, "records without a status read as pending")
}
