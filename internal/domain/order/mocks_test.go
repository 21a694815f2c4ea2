package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/notify"
)

// --- Mock implementations ---

type mockProductRepo struct {
	byID   map[string]product.Product
	getErr error
}

func (m *mockProductRepo) List(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (m *mockProductRepo) GetByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var out []product.Product
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
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

type mockOrderRepo struct {
	mu        sync.Mutex
	byID      map[string]*Order
	createErr error
	casFail   bool
	creates   int
	// findMisses makes the next n idempotency lookups report ErrNotFound.
	findMisses int
}

func newOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{byID: map[string]*Order{}}
}

func (m *mockOrderRepo) Create(_ context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if o.IdempotencyKey != "" {
		for _, existing := range m.byID {
			if existing.UserID == o.UserID && existing.IdempotencyKey == o.IdempotencyKey {
				return ErrDuplicateIdempotencyKey
			}
		}
	}
	m.creates++
	cp := *o
	m.byID[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) GetForUser(ctx context.Context, id, userID string) (*Order, error) {
	o, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, o := range m.byID {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockOrderRepo) List(_ context.Context, filter ListFilter) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Order
	for _, o := range m.byID {
		if filter.Status == "" || o.Status == filter.Status {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockOrderRepo) CompareAndSetStatus(_ context.Context, id string, from, to Status, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.casFail {
		return false, nil
	}
	o, ok := m.byID[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = at
	return true, nil
}

func (m *mockOrderRepo) FindByIdempotencyKey(_ context.Context, userID, key string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findMisses > 0 {
		m.findMisses--
		return nil, ErrNotFound
	}
	for _, o := range m.byID {
		if o.UserID == userID && o.IdempotencyKey == key {
			cp := *o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// mockReturnedQuantities reports units restocked by approved item returns.
type mockReturnedQuantities struct {
	byOrder map[string]map[string]int
	err     error
}

func (m *mockReturnedQuantities) ApprovedQuantities(_ context.Context, orderID string) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byOrder[orderID], nil
}

type mockUserRepo struct {
	byID      map[string]*user.User
	recordErr error
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) RecordSubscriptionDiscount(_ context.Context, id string, at time.Time) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	u, ok := m.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.DiscountsUsed++
	u.LastDiscountUsed = &at
	return nil
}

type mockCouponRepo struct {
	byCode map[string]*coupon.Coupon
}

func (m *mockCouponRepo) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	c, ok := m.byCode[code]
	if !ok {
		return nil, coupon.ErrInvalidCoupon
	}
	cp := *c
	return &cp, nil
}

func (m *mockCouponRepo) IncrementUsage(_ context.Context, code string) (bool, error) {
	c, ok := m.byCode[code]
	if !ok {
		return false, coupon.ErrInvalidCoupon
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false, nil
	}
	c.UsedCount++
	return true, nil
}

// passthroughUoW runs fn directly; the fakes above have no rollback.
type passthroughUoW struct {
	calls int
}

func (u *passthroughUoW) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	u.calls++
	return fn(ctx)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) count(typ notify.Type) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// --- Helpers ---

var errBoom = errors.New("boom")

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
