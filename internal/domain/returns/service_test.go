package returns

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/notify"
)

// --- Mock implementations ---

type mockReturnRepo struct {
	mu      sync.Mutex
	byID    map[string]*Return
	casFail bool
}

func (m *mockReturnRepo) Create(_ context.Context, r *Return) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *mockReturnRepo) GetByID(_ context.Context, id string) (*Return, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockReturnRepo) List(_ context.Context, filter ListFilter) ([]Return, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Return
	for _, r := range m.byID {
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockReturnRepo) CompareAndSetStatus(_ context.Context, id string, from, to Status, reason string, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if m.casFail || !ok || r.Status != from {
		return false, nil
	}
	r.Status = to
	r.RejectionReason = reason
	r.UpdatedAt = at
	return true, nil
}

func (m *mockReturnRepo) MarkReceived(_ context.Context, id string, at time.Time) (*Return, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	r.Received = true
	r.UpdatedAt = at
	cp := *r
	return &cp, nil
}

func (m *mockReturnRepo) RequestedQuantity(_ context.Context, orderID, productID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.byID {
		if r.OrderID == orderID && r.ProductID == productID && r.Status != StatusRejected {
			n += r.Quantity
		}
	}
	return n, nil
}

type mockOrders struct {
	byID map[string]*order.Order
}

func (m *mockOrders) GetByID(_ context.Context, id string) (*order.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrders) GetForUser(_ context.Context, id, userID string) (*order.Order, error) {
	o, ok := m.byID[id]
	if !ok || o.UserID != userID {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

type mockLedger struct {
	counters map[string]product.Counters
	calls    int
}

func (m *mockLedger) Adjust(_ context.Context, adjustments []product.Adjustment) ([]string, error) {
	m.calls++
	var missing []string
	for _, adj := range adjustments {
		c, ok := m.counters[adj.ProductID]
		if !ok {
			missing = append(missing, adj.ProductID)
			continue
		}
		m.counters[adj.ProductID] = c.Apply(adj)
	}
	return missing, nil
}

type mockUsers struct{}

func (mockUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if id != "u1" {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}, nil
}

func (mockUsers) RecordSubscriptionDiscount(context.Context, string, time.Time) error { return nil }

type txRunner struct{}

func (txRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type recordingPublisher struct {
	events []notify.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...notify.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

// --- Helpers ---

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	returns   *mockReturnRepo
	orders    *mockOrders
	ledger    *mockLedger
	publisher *recordingPublisher
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		returns: &mockReturnRepo{byID: map[string]*Return{}},
		orders: &mockOrders{byID: map[string]*order.Order{
			"delivered": {ID: "delivered", UserID: "u1", Status: order.StatusDelivered, Items: []order.Item{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p1", Quantity: 1, Size: "XL"},
				{ProductID: "p2", Quantity: 1},
			}},
			"pending": {ID: "pending", UserID: "u1", Status: order.StatusPending, Items: []order.Item{
				{ProductID: "p1", Quantity: 1},
			}},
		}},
		ledger: &mockLedger{counters: map[string]product.Counters{
			"p1": {StockQuantity: 5, SoldCount: 10},
			"p2": {StockQuantity: 0, SoldCount: 1},
		}},
		publisher: &recordingPublisher{},
	}
	f.svc = NewService(f.returns, f.orders, f.ledger, mockUsers{}, txRunner{}, f.publisher)
	ids := 0
	f.svc.now = func() time.Time { return fixedNow }
	f.svc.newID = func() string {
		ids++
		return fmt.Sprintf("ret-%d", ids)
	}
	return f
}

func (f *fixture) seed(status Status, qty int) *Return {
	r := &Return{ID: "r1", UserID: "u1", OrderID: "delivered", ProductID: "p1", Quantity: qty, Status: status}
	f.returns.byID[r.ID] = r
	return r
}

func testCtx(t *testing.T) context.Context {
	return zctx.Base(context.Background(), zaptest.NewLogger(t))
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "return_rejected"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}
	for _, s := range []string{"rejected", "", "APPROVED", "received"} {
		_, err := ParseStatus(s)
		require.ErrorIs(t, err, ErrInvalidStatus, s)
	}
}

func TestService_TransitionStatus_ApproveRestocks(t *testing.T) {
	f := newFixture()
	f.seed(StatusPending, 2)

	got, err := f.svc.TransitionStatus(testCtx(t), "r1", StatusApproved, "ignored")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Empty(t, got.RejectionReason)
	assert.Equal(t, product.Counters{StockQuantity: 7, SoldCount: 8}, f.ledger.counters["p1"])

	require.Len(t, f.publisher.events, 2)
	assert.Equal(t, notify.ReturnStatusChanged, f.publisher.events[0].Type)
	assert.Equal(t, "r1", f.publisher.events[0].ReturnID)
	assert.Equal(t, "pending", f.publisher.events[0].OldStatus)
	assert.Equal(t, "approved", f.publisher.events[0].NewStatus)
	assert.Equal(t, "ada@example.com", f.publisher.events[0].UserEmail)
}

func TestService_TransitionStatus_ApproveIsIdempotent(t *testing.T) {
	f := newFixture()
	f.seed(StatusPending, 2)
	ctx := testCtx(t)

	_, err := f.svc.TransitionStatus(ctx, "r1", StatusApproved, "")
	require.NoError(t, err)
	_, err = f.svc.TransitionStatus(ctx, "r1", StatusApproved, "")
	require.NoError(t, err)

	assert.Equal(t, 1, f.ledger.calls)
	assert.Equal(t, product.Counters{StockQuantity: 7, SoldCount: 8}, f.ledger.counters["p1"])
	assert.Len(t, f.publisher.events, 2)
}

func TestService_TransitionStatus_Reject(t *testing.T) {
	f := newFixture()
	f.seed(StatusPending, 1)

	got, err := f.svc.TransitionStatus(testCtx(t), "r1", StatusRejected, "  worn item ")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, got.Status)
	assert.Equal(t, "worn item", got.RejectionReason)
	assert.Equal(t, "worn item", f.returns.byID["r1"].RejectionReason)
	assert.Zero(t, f.ledger.calls)
}

func TestService_TransitionStatus_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr error
		wantAs  any
	}{
		{name: "short rejected form", from: StatusPending, to: "rejected", wantErr: ErrInvalidStatus},
		{name: "approved to rejected", from: StatusApproved, to: StatusRejected, wantAs: new(*TransitionError)},
		{name: "rejected to approved", from: StatusRejected, to: StatusApproved, wantAs: new(*TransitionError)},
		{name: "back to pending", from: StatusApproved, to: StatusPending, wantAs: new(*TransitionError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.seed(tt.from, 1)

			_, err := f.svc.TransitionStatus(testCtx(t), "r1", tt.to, "")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantAs != nil {
				assert.ErrorAs(t, err, tt.wantAs)
			}
			assert.Equal(t, tt.from, f.returns.byID["r1"].Status)
			assert.Zero(t, f.ledger.calls)
			assert.Empty(t, f.publisher.events)
		})
	}

	t.Run("missing return", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.TransitionStatus(testCtx(t), "nope", StatusApproved, "")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("concurrent review", func(t *testing.T) {
		f := newFixture()
		f.seed(StatusPending, 1)
		f.returns.casFail = true

		_, err := f.svc.TransitionStatus(testCtx(t), "r1", StatusApproved, "")
		require.ErrorIs(t, err, ErrConcurrentUpdate)
		assert.Zero(t, f.ledger.calls)
	})
}

func TestService_TransitionStatus_OrderAlreadyRestocked(t *testing.T) {
	tests := []struct {
		name        string
		orderStatus order.Status
		next        Status
		wantErr     error
		restocked   bool
	}{
		{name: "approve after order return approved", orderStatus: order.StatusReturnApproved, next: StatusApproved, wantErr: ErrNotReturnable},
		{name: "reject after order return approved", orderStatus: order.StatusReturnApproved, next: StatusRejected},
		{name: "approve after order return rejected", orderStatus: order.StatusReturnRejected, next: StatusApproved, restocked: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.seed(StatusPending, 2)
			f.orders.byID["delivered"].Status = tt.orderStatus

			got, err := f.svc.TransitionStatus(testCtx(t), "r1", tt.next, "")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StatusPending, f.returns.byID["r1"].Status)
				assert.Empty(t, f.publisher.events)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.next, got.Status)
			}

			want := product.Counters{StockQuantity: 5, SoldCount: 10}
			if tt.restocked {
				want = product.Counters{StockQuantity: 7, SoldCount: 8}
			}
			assert.Equal(t, want, f.ledger.counters["p1"])
		})
	}
}

func TestService_TransitionStatus_NotificationFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.seed(StatusPending, 1)
	f.publisher.err = fmt.Errorf("%w: down", notify.ErrDelivery)

	got, err := f.svc.TransitionStatus(testCtx(t), "r1", StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, StatusApproved, f.returns.byID["r1"].Status)
}

func TestService_MarkReceived(t *testing.T) {
	f := newFixture()
	f.seed(StatusPending, 1)
	ctx := testCtx(t)

	for range 2 {
		got, err := f.svc.MarkReceived(ctx, "r1")
		require.NoError(t, err)
		assert.True(t, got.Received)
		assert.Equal(t, StatusPending, got.Status)
	}
	assert.Zero(t, f.ledger.calls)

	_, err := f.svc.MarkReceived(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Request(t *testing.T) {
	f := newFixture()
	ctx := testCtx(t)

	r, err := f.svc.Request(ctx, RequestInput{UserID: "u1", OrderID: "delivered", ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "ret-1", r.ID)
	assert.Equal(t, StatusPending, r.Status)
	assert.False(t, r.Received)
	assert.Len(t, f.publisher.events, 2)

	// Three units of p1 were ordered across two lines; one remains.
	_, err = f.svc.Request(ctx, RequestInput{UserID: "u1", OrderID: "delivered", ProductID: "p1", Quantity: 2})
	var qe *QuantityError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, 1, qe.Available)

	_, err = f.svc.Request(ctx, RequestInput{UserID: "u1", OrderID: "delivered", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
}

func TestService_Request_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      RequestInput
		wantErr error
	}{
		{"zero quantity", RequestInput{UserID: "u1", OrderID: "delivered", ProductID: "p1"}, ErrInvalidQuantity},
		{"order of another user", RequestInput{UserID: "u2", OrderID: "delivered", ProductID: "p1", Quantity: 1}, order.ErrNotFound},
		{"order not delivered", RequestInput{UserID: "u1", OrderID: "pending", ProductID: "p1", Quantity: 1}, ErrNotReturnable},
		{"product not in order", RequestInput{UserID: "u1", OrderID: "delivered", ProductID: "p9", Quantity: 1}, ErrProductNotInOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.Request(testCtx(t), tt.in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.returns.byID)
		})
	}
}

func TestService_List(t *testing.T) {
	f := newFixture()
	f.seed(StatusPending, 1)

	got, err := f.svc.List(testCtx(t), ListFilter{Status: StatusPending})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.svc.List(testCtx(t), ListFilter{Status: "rejected"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}
