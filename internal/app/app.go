// Package app wires the API server from configuration.
package app

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront-orders/internal/domain/discount"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/handler"
	"github.com/xenking/storefront-orders/internal/notify"
	"github.com/xenking/storefront-orders/internal/oas"
	"github.com/xenking/storefront-orders/internal/repository"
	"github.com/xenking/storefront-orders/pkg/health"
	"github.com/xenking/storefront-orders/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the API server.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr), zap.String("notify", cfg.Notify))

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	publisher, closePublisher, err := NewPublisher(cfg, pool)
	if err != nil {
		return errors.Wrap(err, "create publisher")
	}
	defer func() {
		if err := closePublisher.Close(); err != nil {
			lg.Warn("Close publisher", zap.Error(err))
		}
	}()

	h, err := newHandler(cfg, pool, publisher, m)
	if err != nil {
		return err
	}

	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.PingCheck(pool))
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Start(ctx, 10*time.Second)
	defer healthSvc.Stop()

	oasServer, err := h.NewServer(
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	// Health endpoints and the generated API share one server.
	routeFinder := httpmiddleware.MakeRouteFinder(oasServer.FindPath)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Recovery(),
			httpmiddleware.RequestID(),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.Instrument("storefront-api", routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
		),
	}
	healthSvc.SetReady(true)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		if ctx.Err() != nil {
			time.Sleep(cfg.Graceful.ReadinessDelay)
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})
	return g.Wait()
}

// newHandler builds repositories and services on top of pool.
func newHandler(cfg *Config, pool *pgxpool.Pool, publisher notify.Publisher, m *app.Telemetry) (*handler.Handler, error) {
	products := repository.NewProductRepository(pool)
	coupons := repository.NewCouponRepository(pool)
	users := repository.NewUserRepository(pool)
	orders := repository.NewOrderRepository(pool)
	rets := repository.NewReturnRepository(pool)
	apikeys := repository.NewAPIKeyRepository(pool)
	tx := repository.NewTxManager(pool)

	amount, err := cfg.Orders.SubscriptionAmount()
	if err != nil {
		return nil, err
	}
	engine := discount.NewEngine(coupons, discount.WithSubscriptionAmount(amount))

	orderSvc, err := order.NewService(order.Deps{
		Products:   products,
		Ledger:     products,
		Orders:     orders,
		Returns:    rets,
		Users:      users,
		Coupons:    coupons,
		Discounts:  engine,
		UnitOfWork: tx,
		Publisher:  publisher,
	}, order.Options{
		CountCouponUsage: cfg.Orders.CountCouponUsage,
		TracerProvider:   m.TracerProvider(),
		MeterProvider:    m.MeterProvider(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create order service")
	}
	returnSvc := returns.NewService(rets, orders, products, users, tx, publisher)

	return handler.New(handler.Config{
		ImageBaseURL: cfg.ImageBaseURL,
		ExposeErrors: cfg.ExposeErrors,
	}, orderSvc, returnSvc, products, apikeys, []byte(cfg.APIKeyPepper)), nil
}

// NewPublisher returns the notification publisher selected by cfg.Notify and
// a closer releasing its resources.
func NewPublisher(cfg *Config, pool *pgxpool.Pool) (notify.Publisher, io.Closer, error) {
	switch cfg.Notify {
	case NotifyOutbox:
		return notify.NewOutboxPublisher(repository.NewOutboxRepository(pool), cfg.Kafka.Topic), nopCloser{}, nil
	case NotifyKafka:
		brokers := notify.ParseBrokers(cfg.Kafka.Brokers)
		if len(brokers) == 0 {
			return nil, nil, errors.New("kafka brokers are required")
		}
		w := notify.NewKafkaWriter(brokers)
		return notify.NewKafkaPublisher(w, cfg.Kafka.Topic), w, nil
	case NotifyLog:
		return notify.LogPublisher{}, nopCloser{}, nil
	default:
		return nil, nil, errors.Errorf("unknown notify mode %q", cfg.Notify)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
