package notify

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Sender forwards a single outbox record to the broker.
type Sender interface {
	Send(ctx context.Context, rec Record) error
}

// RelayConfig controls the outbox polling loop.
type RelayConfig struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
}

// RelayMetrics are the Prometheus collectors of a Relay.
type RelayMetrics struct {
	Sent   prometheus.Counter
	Failed prometheus.Counter
	Batch  prometheus.Histogram
}

// NewRelayMetrics creates and registers relay collectors on reg.
func NewRelayMetrics(reg prometheus.Registerer) *RelayMetrics {
	m := &RelayMetrics{
		Sent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "outbox",
			Name:      "sent_total",
			Help:      "Outbox records forwarded to the broker.",
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "outbox",
			Name:      "failed_total",
			Help:      "Outbox records that failed to forward.",
		}),
		Batch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "outbox",
			Name:      "batch_size",
			Help:      "Number of pending records fetched per poll.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}
	reg.MustRegister(m.Sent, m.Failed, m.Batch)
	return m
}

// Relay moves records from the outbox to the broker.
type Relay struct {
	store   OutboxStore
	sender  Sender
	cfg     RelayConfig
	metrics *RelayMetrics

	// lastPoll is the unix nano time of the last successful fetch.
	lastPoll atomic.Int64
}

// NewRelay validates cfg and returns a Relay. metrics may be nil.
func NewRelay(store OutboxStore, sender Sender, cfg RelayConfig, metrics *RelayMetrics) (*Relay, error) {
	if store == nil {
		return nil, errors.New("outbox store is required")
	}
	if sender == nil {
		return nil, errors.New("sender is required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}
	if cfg.BatchSize <= 0 {
		return nil, errors.New("batch size must be positive")
	}
	if cfg.MaxAttempts <= 0 {
		return nil, errors.New("max attempts must be positive")
	}
	return &Relay{store: store, sender: sender, cfg: cfg, metrics: metrics}, nil
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	lg := zctx.From(ctx)
	lg.Info("Outbox relay started",
		zap.Duration("interval", r.cfg.Interval),
		zap.Int("batch", r.cfg.BatchSize),
	)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lg.Info("Outbox relay stopped")
			return nil
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				lg.Error("Outbox batch failed", zap.Error(err))
			}
		}
	}
}

// RunOnce forwards one batch and returns the number of records sent. A
// record that fails is marked failed and retried on a later poll.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	lg := zctx.From(ctx)

	records, err := r.store.FetchPending(ctx, r.cfg.BatchSize, r.cfg.MaxAttempts)
	if err != nil {
		return 0, errors.Wrap(err, "fetch pending")
	}
	r.lastPoll.Store(time.Now().UnixNano())
	if r.metrics != nil {
		r.metrics.Batch.Observe(float64(len(records)))
	}

	sent := 0
	for _, rec := range records {
		if err := r.sender.Send(ctx, rec); err != nil {
			if r.metrics != nil {
				r.metrics.Failed.Inc()
			}
			lg.Warn("Outbox record not sent",
				zap.Int64("id", rec.ID),
				zap.String("event_id", rec.EventID),
				zap.Int("attempts", rec.Attempts+1),
				zap.Error(err),
			)
			if markErr := r.store.MarkFailed(ctx, rec.ID, err.Error()); markErr != nil {
				lg.Error("Mark outbox record failed", zap.Int64("id", rec.ID), zap.Error(markErr))
			}
			continue
		}
		if err := r.store.MarkSent(ctx, rec.ID); err != nil {
			// The record will be sent again; consumers dedupe by event_id.
			lg.Error("Mark outbox record sent", zap.Int64("id", rec.ID), zap.Error(err))
			continue
		}
		if r.metrics != nil {
			r.metrics.Sent.Inc()
		}
		sent++
	}
	return sent, nil
}

// LastPoll returns when the outbox was last fetched successfully. It is the
// zero time before the first poll.
func (r *Relay) LastPoll() time.Time {
	ns := r.lastPoll.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
