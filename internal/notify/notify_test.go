package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeStore struct {
	mu       sync.Mutex
	records  []Record
	nextID   int64
	sent     map[int64]bool
	failed   map[int64]string
	fetchErr error
	insErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{sent: map[int64]bool{}, failed: map[int64]string{}}
}

func (s *fakeStore) Insert(_ context.Context, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insErr != nil {
		return s.insErr
	}
	for _, r := range records {
		s.nextID++
		r.ID = s.nextID
		s.records = append(s.records, r)
	}
	return nil
}

func (s *fakeStore) FetchPending(_ context.Context, limit, maxAttempts int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	var out []Record
	for _, r := range s.records {
		if s.sent[r.ID] || r.Attempts >= maxAttempts {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) MarkSent(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[id] = true
	return nil
}

func (s *fakeStore) MarkFailed(_ context.Context, id int64, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed[id] = reason
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Attempts++
		}
	}
	return nil
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

type failingPublisher struct{ calls int }

func (p *failingPublisher) Publish(context.Context, ...Event) error {
	p.calls++
	return deliveryError(errors.New("broker down"), "publish")
}

func sampleEvent() Event {
	return Event{
		ID:         "01HZZZZZZZZZZZZZZZZZZZZZZZ",
		Type:       OrderStatusChanged,
		Audience:   AudienceUser,
		OrderID:    "order-1",
		UserID:     "user-1",
		UserName:   "Ada",
		UserEmail:  "ada@example.com",
		OldStatus:  "pending",
		NewStatus:  "delivered",
		TotalPrice: decimal.RequireFromString("651.00"),
		OccurredAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestEvent_EncodeDecode(t *testing.T) {
	in := sampleEvent()

	var enc jx.Encoder
	in.Encode(&enc)

	var out Event
	require.NoError(t, out.Decode(jx.DecodeBytes(enc.Bytes())))

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Type, out.Type)
	assert.Equal(t, in.Audience, out.Audience)
	assert.Equal(t, in.OrderID, out.OrderID)
	assert.Equal(t, in.OldStatus, out.OldStatus)
	assert.Equal(t, in.NewStatus, out.NewStatus)
	assert.True(t, in.TotalPrice.Equal(out.TotalPrice))
	assert.True(t, in.OccurredAt.Equal(out.OccurredAt))
	assert.Empty(t, out.ReturnID)
}

func TestEvent_DecodeSkipsUnknownFields(t *testing.T) {
	var e Event
	err := e.UnmarshalJSON([]byte(`{"id":"x","extra":{"a":[1,2]},"new_status":"cancelled"}`))
	require.NoError(t, err)
	assert.Equal(t, "x", e.ID)
	assert.Equal(t, "cancelled", e.NewStatus)
}

func TestFanout(t *testing.T) {
	events := Fanout(sampleEvent())
	require.Len(t, events, 2)

	assert.Equal(t, AudienceUser, events[0].Audience)
	assert.Equal(t, AudienceAdmin, events[1].Audience)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	for _, e := range events {
		assert.Equal(t, "order-1", e.OrderID)
		assert.Equal(t, "pending", e.OldStatus)
		assert.Equal(t, "delivered", e.NewStatus)
	}
}

func TestDispatch_SwallowsErrors(t *testing.T) {
	ctx := zctx.Base(context.Background(), zaptest.NewLogger(t))
	p := &failingPublisher{}

	assert.NotPanics(t, func() {
		Dispatch(ctx, p, Fanout(sampleEvent())...)
	})
	assert.Equal(t, 1, p.calls)

	Dispatch(ctx, nil, sampleEvent())
	Dispatch(ctx, p)
	assert.Equal(t, 1, p.calls, "empty batch must not publish")
}

func TestOutboxPublisher(t *testing.T) {
	store := newFakeStore()
	p := NewOutboxPublisher(store, "storefront.notifications")

	require.NoError(t, p.Publish(context.Background(), Fanout(sampleEvent())...))
	require.Len(t, store.records, 2)
	for _, r := range store.records {
		assert.Equal(t, "storefront.notifications", r.Topic)
		assert.Equal(t, "order-1", r.Key)
		assert.NotEmpty(t, r.EventID)
		assert.Contains(t, string(r.Payload), `"new_status":"delivered"`)
	}

	store.insErr = errors.New("disk full")
	err := p.Publish(context.Background(), sampleEvent())
	require.ErrorIs(t, err, ErrDelivery)
}

func TestKafkaPublisher(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, "orders")

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "orders", w.msgs[0].Topic)
	assert.Equal(t, []byte("order-1"), w.msgs[0].Key)

	w.err = errors.New("leader not available")
	require.ErrorIs(t, p.Publish(context.Background(), sampleEvent()), ErrDelivery)
	require.ErrorIs(t, p.Send(context.Background(), Record{Topic: "x"}), ErrDelivery)
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, ParseBrokers(" a:9092, ,b:9092,"))
	assert.Empty(t, ParseBrokers(""))
}

func TestRelay_RunOnce(t *testing.T) {
	ctx := zctx.Base(context.Background(), zaptest.NewLogger(t))
	store := newFakeStore()
	require.NoError(t, NewOutboxPublisher(store, "orders").Publish(ctx, Fanout(sampleEvent())...))

	w := &fakeWriter{}
	reg := prometheus.NewRegistry()
	metrics := NewRelayMetrics(reg)
	relay, err := NewRelay(store, NewKafkaPublisher(w, "orders"), RelayConfig{
		Interval:    time.Second,
		BatchSize:   10,
		MaxAttempts: 3,
	}, metrics)
	require.NoError(t, err)
	assert.True(t, relay.LastPoll().IsZero())

	sent, err := relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.False(t, relay.LastPoll().IsZero())
	assert.Equal(t, 2, sent)
	assert.Len(t, w.msgs, 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Sent))

	sent, err = relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent, "sent records are not resent")
}

func TestRelay_RunOnce_FailureIsRetriedUntilMaxAttempts(t *testing.T) {
	ctx := zctx.Base(context.Background(), zaptest.NewLogger(t))
	store := newFakeStore()
	require.NoError(t, NewOutboxPublisher(store, "orders").Publish(ctx, sampleEvent()))

	w := &fakeWriter{err: errors.New("broker down")}
	metrics := NewRelayMetrics(prometheus.NewRegistry())
	relay, err := NewRelay(store, NewKafkaPublisher(w, "orders"), RelayConfig{
		Interval:    time.Second,
		BatchSize:   10,
		MaxAttempts: 2,
	}, metrics)
	require.NoError(t, err)

	for range 3 {
		sent, err := relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Failed))
	assert.Contains(t, store.failed[1], "broker down")
}

func TestRelay_RunOnce_FetchError(t *testing.T) {
	store := newFakeStore()
	store.fetchErr = errors.New("conn refused")
	relay, err := NewRelay(store, NewKafkaPublisher(&fakeWriter{}, "orders"), RelayConfig{
		Interval: time.Second, BatchSize: 1, MaxAttempts: 1,
	}, nil)
	require.NoError(t, err)

	_, err = relay.RunOnce(context.Background())
	require.Error(t, err)
	assert.True(t, relay.LastPoll().IsZero(), "failed fetch does not count as a poll")
}

func TestNewRelay_Validation(t *testing.T) {
	store := newFakeStore()
	sender := NewKafkaPublisher(&fakeWriter{}, "t")
	valid := RelayConfig{Interval: time.Second, BatchSize: 1, MaxAttempts: 1}

	_, err := NewRelay(nil, sender, valid, nil)
	require.Error(t, err)
	_, err = NewRelay(store, nil, valid, nil)
	require.Error(t, err)
	_, err = NewRelay(store, sender, RelayConfig{BatchSize: 1, MaxAttempts: 1}, nil)
	require.Error(t, err)
	_, err = NewRelay(store, sender, RelayConfig{Interval: time.Second, MaxAttempts: 1}, nil)
	require.Error(t, err)
	_, err = NewRelay(store, sender, RelayConfig{Interval: time.Second, BatchSize: 1}, nil)
	require.Error(t, err)
}
