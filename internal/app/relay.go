package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront-orders/internal/notify"
	"github.com/xenking/storefront-orders/internal/repository"
	"github.com/xenking/storefront-orders/pkg/health"
	"github.com/xenking/storefront-orders/pkg/httpmiddleware"
)

// RunRelay forwards outbox records to Kafka and serves Prometheus metrics
// and health endpoints on cfg.Outbox.MetricsAddr until ctx is cancelled.
func RunRelay(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	brokers := notify.ParseBrokers(cfg.Kafka.Brokers)
	if len(brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	lg.Info("Initializing relay",
		zap.Strings("brokers", brokers),
		zap.String("topic", cfg.Kafka.Topic),
		zap.String("metrics_addr", cfg.Outbox.MetricsAddr),
	)

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	writer := notify.NewKafkaWriter(brokers)
	defer func() {
		if err := writer.Close(); err != nil {
			lg.Warn("Close kafka writer", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	relay, err := notify.NewRelay(
		repository.NewOutboxRepository(pool),
		notify.NewKafkaPublisher(writer, cfg.Kafka.Topic),
		notify.RelayConfig{
			Interval:    cfg.Outbox.Interval,
			BatchSize:   cfg.Outbox.Batch,
			MaxAttempts: cfg.Outbox.MaxAttempts,
		},
		notify.NewRelayMetrics(reg),
	)
	if err != nil {
		return errors.Wrap(err, "create relay")
	}

	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.PingCheck(pool))
	healthSvc.AddLivenessCheck("relay", time.Second,
		health.StalenessCheck(relay.LastPoll, 10*cfg.Outbox.Interval+time.Minute, time.Minute))
	healthSvc.Start(ctx, 10*time.Second)
	defer healthSvc.Stop()

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)

	server := &http.Server{
		Addr:              cfg.Outbox.MetricsAddr,
		ReadHeaderTimeout: time.Second,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Recovery(),
		),
	}
	healthSvc.SetReady(true)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return relay.Run(gCtx)
	})
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "metrics server")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		healthSvc.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Graceful.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
