package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Notification delivery modes.
const (
	NotifyOutbox = "outbox"
	NotifyKafka  = "kafka"
	NotifyLog    = "log"
)

const defaultAddr = "0.0.0.0:8080"

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	Addr         string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL  string `usage:"PostgreSQL connection URL (STORE_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	ImageBaseURL string `default:"" usage:"Base URL for product images" flag:"image-base-url"`
	APIKeyPepper string `usage:"HMAC pepper for API key hashing (STORE_API_KEY_PEPPER)" flag:"api-key-pepper"`
	ExposeErrors bool   `default:"false" usage:"Include internal error detail in 500 responses" flag:"expose-errors"`
	Notify       string `default:"outbox" usage:"Notification delivery: outbox, kafka or log"`
	RateLimit    RateLimitConfig
	Kafka        KafkaConfig
	Outbox       OutboxConfig
	Orders       OrdersConfig
	Graceful     GracefulConfig
}

// RateLimitConfig controls the per-caller sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window, 0 disables"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// KafkaConfig locates the notification topic.
type KafkaConfig struct {
	Brokers string `default:"localhost:9092" usage:"Comma separated Kafka brokers"`
	Topic   string `default:"storefront.notifications" usage:"Notification topic"`
}

// OutboxConfig controls the outbox relay.
type OutboxConfig struct {
	Interval    time.Duration `default:"1s" usage:"Outbox poll interval"`
	Batch       int           `default:"100" usage:"Records fetched per poll"`
	MaxAttempts int           `default:"10" usage:"Delivery attempts before a record is parked" flag:"outbox-max-attempts"`
	MetricsAddr string        `default:"0.0.0.0:9090" usage:"Relay Prometheus and health listen address" flag:"metrics-addr"`
}

// OrdersConfig tunes order pricing.
type OrdersConfig struct {
	CountCouponUsage     bool   `default:"false" usage:"Increment coupon used_count when an order redeems it" flag:"count-coupon-usage"`
	SubscriptionDiscount string `default:"249" usage:"Flat discount for active subscribers" flag:"subscription-discount"`
}

// SubscriptionAmount parses SubscriptionDiscount.
func (c OrdersConfig) SubscriptionAmount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.SubscriptionDiscount)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "parse subscription discount")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("subscription discount must not be negative")
	}
	return d, nil
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files and flags, then applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that cannot run.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL is required: set STORE_DATABASE_URL or DATABASE_URL")
	}
	switch c.Notify {
	case NotifyOutbox, NotifyKafka, NotifyLog:
	default:
		return errors.Errorf("unknown notify mode %q", c.Notify)
	}
	if c.Notify == NotifyKafka && c.Kafka.Brokers == "" {
		return errors.New("kafka brokers are required in kafka notify mode")
	}
	if c.Outbox.Batch <= 0 || c.Outbox.MaxAttempts <= 0 {
		return errors.New("outbox batch and max attempts must be positive")
	}
	if _, err := c.Orders.SubscriptionAmount(); err != nil {
		return err
	}
	return nil
}

// applyPlatformDefaults maps the conventional DATABASE_URL and PORT
// variables onto the STORE_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = "0.0.0.0:" + port
	}
}
