package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-orders/internal/domain/auth"
	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/repository"
)

const (
	upsertProductSQL = `INSERT INTO products (id, name, price, image, stock_quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price,
			image = EXCLUDED.image, stock_quantity = EXCLUDED.stock_quantity`

	upsertCouponSQL = `INSERT INTO coupons (code, discount_type, discount_value, min_purchase,
			usage_limit, status, valid_from, valid_until)
		VALUES ($1, $2, $3, $4, $5, 'active', $6, $7)
		ON CONFLICT (code) DO UPDATE SET discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value, min_purchase = EXCLUDED.min_purchase,
			usage_limit = EXCLUDED.usage_limit, valid_from = EXCLUDED.valid_from,
			valid_until = EXCLUDED.valid_until`

	upsertUserSQL = `INSERT INTO users (id, name, email, is_subscribed, subscription_expiry, subscription_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email,
			is_subscribed = EXCLUDED.is_subscribed, subscription_expiry = EXCLUDED.subscription_expiry,
			subscription_cost = EXCLUDED.subscription_cost`
)

type productJSON struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	StockQuantity int             `json:"stock_quantity"`
}

type seedCoupon struct {
	code         string
	discountType string
	value        decimal.Decimal
	minPurchase  decimal.Decimal
	usageLimit   int
}

var coupons = []seedCoupon{
	{code: "FLAT100", discountType: "flat", value: decimal.NewFromInt(100)},
	{code: "WELCOME15", discountType: "percentage", value: decimal.NewFromInt(15), usageLimit: 1000},
	{code: "BIGSPEND", discountType: "percentage", value: decimal.NewFromInt(10), minPurchase: decimal.NewFromInt(1500)},
}

type seedUser struct {
	id, name, email string
	subscribed      bool
}

var users = []seedUser{
	{id: "user-subscriber", name: "Sam Subscriber", email: "sam@example.com", subscribed: true},
	{id: "user-regular", name: "Riley Regular", email: "riley@example.com"},
}

func main() {
	var (
		databaseURL  string
		productsFile string
		apiKey       string
		apiKeyPepper string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&productsFile, "products-file", "db/seed/products.json", "path to products JSON file")
	flag.StringVar(&apiKey, "api-key", "", "admin API key to seed (or STORE_SEED_API_KEY env)")
	flag.StringVar(&apiKeyPepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or STORE_API_KEY_PEPPER env)")
	flag.Parse()

	databaseURL = orEnv(databaseURL, "DATABASE_URL")
	apiKey = orEnv(apiKey, "STORE_SEED_API_KEY")
	apiKeyPepper = orEnv(apiKeyPepper, "STORE_API_KEY_PEPPER")

	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if apiKey == "" {
		slog.Error("API key is required: set --api-key or STORE_SEED_API_KEY")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, productsFile, apiKey, apiKeyPepper); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("seed completed successfully")
}

func orEnv(v, key string) string {
	if v != "" {
		return v
	}
	return os.Getenv(key)
}

func run(ctx context.Context, databaseURL, productsFile, apiKey, pepper string) error {
	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")
	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	products, err := readProducts(productsFile)
	if err != nil {
		return err
	}

	if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if err := seedProducts(ctx, tx, products); err != nil {
			return errors.Wrap(err, "seed products")
		}
		if err := seedCoupons(ctx, tx, time.Now()); err != nil {
			return errors.Wrap(err, "seed coupons")
		}
		if err := seedUsers(ctx, tx, time.Now()); err != nil {
			return errors.Wrap(err, "seed users")
		}
		return nil
	}); err != nil {
		return err
	}
	return seedAPIKey(ctx, repository.NewAPIKeyRepository(pool), apiKey, pepper)
}

func readProducts(path string) ([]productJSON, error) {
	slog.Info("reading products file", slog.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read products file")
	}
	var products []productJSON
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "parse products JSON")
	}
	return products, nil
}

func seedProducts(ctx context.Context, tx pgx.Tx, products []productJSON) error {
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(upsertProductSQL, p.ID, p.Name, p.Price, p.Image, p.StockQuantity)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	slog.Info("upserted products", slog.Int("count", len(products)))
	return nil
}

func seedCoupons(ctx context.Context, tx pgx.Tx, now time.Time) error {
	from, until := now.AddDate(0, -1, 0), now.AddDate(1, 0, 0)
	for _, c := range coupons {
		if _, err := tx.Exec(ctx, upsertCouponSQL,
			coupon.NormalizeCode(c.code), c.discountType, c.value, c.minPurchase, c.usageLimit, from, until,
		); err != nil {
			return errors.Wrapf(err, "upsert coupon %s", c.code)
		}
		slog.Info("upserted coupon", slog.String("code", c.code), slog.String("type", c.discountType))
	}
	return nil
}

func seedUsers(ctx context.Context, tx pgx.Tx, now time.Time) error {
	for _, u := range users {
		var expiry *time.Time
		cost := decimal.Zero
		if u.subscribed {
			at := now.AddDate(0, 6, 0)
			expiry = &at
			cost = decimal.RequireFromString("99.00")
		}
		if _, err := tx.Exec(ctx, upsertUserSQL, u.id, u.name, u.email, u.subscribed, expiry, cost); err != nil {
			return errors.Wrapf(err, "upsert user %s", u.id)
		}
		slog.Info("upserted user", slog.String("id", u.id), slog.Bool("subscribed", u.subscribed))
	}
	return nil
}

func seedAPIKey(ctx context.Context, keys *repository.APIKeyRepository, apiKey, pepper string) error {
	if err := keys.Save(ctx, &auth.APIKey{
		ID:     "default",
		Name:   "Default admin key",
		Hash:   auth.Digest([]byte(pepper), apiKey),
		Scopes: auth.NewScopes(string(auth.ScopeAdmin)),
	}); err != nil {
		return errors.Wrap(err, "seed api key")
	}
	slog.Info("upserted API key", slog.String("id", "default"))
	return nil
}

