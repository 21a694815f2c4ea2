package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront-orders/internal/notify"
)

func validConfig() *Config {
	return &Config{
		Addr:        defaultAddr,
		DatabaseURL: "postgres://localhost/store",
		Notify:      NotifyOutbox,
		Kafka:       KafkaConfig{Brokers: "localhost:9092", Topic: "t"},
		Outbox:      OutboxConfig{Batch: 100, MaxAttempts: 10},
		Orders:      OrdersConfig{SubscriptionDiscount: "249"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mod     func(c *Config)
		wantErr string
	}{
		{name: "valid"},
		{name: "missing database", mod: func(c *Config) { c.DatabaseURL = "" }, wantErr: "database URL is required"},
		{name: "unknown notify mode", mod: func(c *Config) { c.Notify = "smtp" }, wantErr: "unknown notify mode"},
		{name: "kafka without brokers", mod: func(c *Config) { c.Notify = NotifyKafka; c.Kafka.Brokers = "" }, wantErr: "kafka brokers are required"},
		{name: "zero batch", mod: func(c *Config) { c.Outbox.Batch = 0 }, wantErr: "must be positive"},
		{name: "bad discount", mod: func(c *Config) { c.Orders.SubscriptionDiscount = "abc" }, wantErr: "parse subscription discount"},
		{name: "negative discount", mod: func(c *Config) { c.Orders.SubscriptionDiscount = "-1" }, wantErr: "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			if tt.mod != nil {
				tt.mod(cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOrdersConfig_SubscriptionAmount(t *testing.T) {
	d, err := OrdersConfig{SubscriptionDiscount: "249.50"}.SubscriptionAmount()
	require.NoError(t, err)
	assert.Equal(t, "249.5", d.String())
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("PORT", "3000")

	cfg := &Config{Addr: defaultAddr}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr)

	cfg = &Config{Addr: "127.0.0.1:9000", DatabaseURL: "postgres://explicit/db"}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://explicit/db", cfg.DatabaseURL)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr, "explicit address wins over PORT")
}

func TestNewPublisher(t *testing.T) {
	cfg := validConfig()

	cfg.Notify = NotifyLog
	p, closer, err := NewPublisher(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, notify.LogPublisher{}, p)
	assert.NoError(t, closer.Close())

	cfg.Notify = NotifyOutbox
	p, _, err = NewPublisher(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &notify.OutboxPublisher{}, p)

	cfg.Notify = NotifyKafka
	p, closer, err = NewPublisher(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &notify.KafkaPublisher{}, p)
	assert.NoError(t, closer.Close())

	cfg.Kafka.Brokers = " , "
	_, _, err = NewPublisher(cfg, nil)
	require.Error(t, err)
}
