// Command coupon-import loads coupon definitions from gzip JSONL files into
// the coupons table.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront-orders/internal/repository"
)

const (
	bloomFPR      = 0.001
	minBloomItems = 10_000
	lookupChunk   = 5_000

	insertCouponSQL = `INSERT INTO coupons (code, discount_type, discount_value, min_purchase,
			usage_limit, status, valid_from, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (code) DO NOTHING`

	upsertCouponSQL = `INSERT INTO coupons (code, discount_type, discount_value, min_purchase,
			usage_limit, status, valid_from, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (code) DO UPDATE SET discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value, min_purchase = EXCLUDED.min_purchase,
			usage_limit = EXCLUDED.usage_limit, status = EXCLUDED.status,
			valid_from = EXCLUDED.valid_from, valid_until = EXCLUDED.valid_until`
)

func main() {
	var (
		databaseURL string
		dataDir     string
		batchSize   int
		update      bool
		strict      bool
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&dataDir, "data-dir", "data/coupons", "directory containing *.jsonl.gz coupon files")
	flag.IntVar(&batchSize, "batch-size", 1000, "statements per database batch")
	flag.BoolVar(&update, "update", false, "overwrite coupons that already exist (used_count is kept)")
	flag.BoolVar(&strict, "strict", false, "fail on the first invalid line instead of skipping it")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if batchSize <= 0 {
		slog.Error("batch size must be positive", slog.Int("batch_size", batchSize))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	files, err := filepath.Glob(filepath.Join(dataDir, "*.jsonl.gz"))
	if err != nil {
		slog.Error("list coupon files", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(files) == 0 {
		slog.Error("no coupon files found", slog.String("dir", dataDir))
		os.Exit(1)
	}

	if err := run(ctx, databaseURL, files, batchSize, update, strict); err != nil {
		slog.Error("coupon import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, databaseURL string, files []string, batchSize int, update, strict bool) error {
	records, err := loadFiles(ctx, files, strict)
	if err != nil {
		return err
	}
	slog.Info("parsed coupon files",
		slog.Int("files", len(files)),
		slog.Int("coupons", len(records)),
	)

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	sql := upsertCouponSQL
	if !update {
		sql = insertCouponSQL
		if records, err = skipExisting(ctx, pool, records); err != nil {
			return err
		}
	}

	written, err := writeBatches(ctx, pool, sql, records, batchSize)
	if err != nil {
		return err
	}
	slog.Info("coupon import completed",
		slog.Int("written", written),
		slog.Bool("update", update),
	)
	return nil
}

// loadFiles parses every file concurrently and merges the results in file
// order. A code seen more than once keeps its last definition.
func loadFiles(ctx context.Context, files []string, strict bool) ([]couponRecord, error) {
	perFile := make([][]couponRecord, len(files))
	var invalid atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			var firstErr error
			err := readFile(gCtx, path,
				func(rec couponRecord) { perFile[i] = append(perFile[i], rec) },
				func(e *lineError) {
					invalid.Add(1)
					if strict && firstErr == nil {
						firstErr = e
					}
					slog.Warn("skipping invalid line",
						slog.String("file", e.File),
						slog.Int("line", e.Line),
						slog.String("error", e.Err.Error()),
					)
				},
			)
			if err != nil {
				return err
			}
			if firstErr != nil {
				return firstErr
			}
			slog.Info("parsed file", slog.String("file", filepath.Base(path)), slog.Int("coupons", len(perFile[i])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if n := invalid.Load(); n > 0 {
		slog.Warn("invalid lines skipped", slog.Int64("count", n))
	}
	return dedupe(perFile), nil
}

// dedupe flattens per-file records keeping the last definition of each code
// at the position of its first appearance.
func dedupe(perFile [][]couponRecord) []couponRecord {
	index := make(map[string]int)
	var out []couponRecord
	for _, records := range perFile {
		for _, rec := range records {
			if i, ok := index[rec.Code]; ok {
				out[i] = rec
				continue
			}
			index[rec.Code] = len(out)
			out = append(out, rec)
		}
	}
	return out
}

// skipExisting drops records whose code is already stored. Existing codes
// are loaded into a bloom filter; only codes the filter reports as possibly
// present are confirmed with an exact lookup.
func skipExisting(ctx context.Context, pool *pgxpool.Pool, records []couponRecord) ([]couponRecord, error) {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM coupons`).Scan(&count); err != nil {
		return nil, errors.Wrap(err, "count coupons")
	}
	if count == 0 {
		return records, nil
	}

	filter := bloom.NewWithEstimates(uint(max(count, minBloomItems)), bloomFPR)
	rows, err := pool.Query(ctx, `SELECT code FROM coupons`)
	if err != nil {
		return nil, errors.Wrap(err, "query coupon codes")
	}
	var code string
	if _, err := pgx.ForEachRow(rows, []any{&code}, func() error {
		filter.AddString(code)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "scan coupon codes")
	}

	fresh, suspects := partition(filter, records)
	slog.Info("bloom filter built",
		slog.Int("existing", count),
		slog.Int("definitely_new", len(fresh)),
		slog.Int("to_confirm", len(suspects)),
	)

	for start := 0; start < len(suspects); start += lookupChunk {
		chunk := suspects[start:min(start+lookupChunk, len(suspects))]
		codes := make([]string, len(chunk))
		for i, rec := range chunk {
			codes[i] = rec.Code
		}
		existing, err := existingCodes(ctx, pool, codes)
		if err != nil {
			return nil, err
		}
		for _, rec := range chunk {
			if _, ok := existing[rec.Code]; !ok {
				fresh = append(fresh, rec)
			}
		}
	}
	slog.Info("existing coupons skipped", slog.Int("count", len(records)-len(fresh)))
	return fresh, nil
}

// partition splits records into those the filter has definitely not seen and
// those that may already exist.
func partition(filter *bloom.BloomFilter, records []couponRecord) (fresh, suspects []couponRecord) {
	for _, rec := range records {
		if filter.TestString(rec.Code) {
			suspects = append(suspects, rec)
			continue
		}
		fresh = append(fresh, rec)
	}
	return fresh, suspects
}

func existingCodes(ctx context.Context, pool *pgxpool.Pool, codes []string) (map[string]struct{}, error) {
	rows, err := pool.Query(ctx, `SELECT code FROM coupons WHERE code = ANY($1)`, codes)
	if err != nil {
		return nil, errors.Wrap(err, "lookup coupon codes")
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Wrap(err, "scan coupon codes")
	}
	set := make(map[string]struct{}, len(found))
	for _, c := range found {
		set[c] = struct{}{}
	}
	return set, nil
}

// writeBatches sends records in batches of batchSize, each in its own
// transaction, and returns the number of rows affected.
func writeBatches(ctx context.Context, pool *pgxpool.Pool, sql string, records []couponRecord, batchSize int) (int, error) {
	written := 0
	for start := 0; start < len(records); start += batchSize {
		chunk := records[start:min(start+batchSize, len(records))]
		err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			batch := &pgx.Batch{}
			for _, rec := range chunk {
				batch.Queue(sql,
					rec.Code, string(rec.DiscountType), rec.DiscountValue, rec.MinPurchase,
					rec.UsageLimit, rec.Status, rec.ValidFrom, rec.ValidUntil,
				)
			}
			results := tx.SendBatch(ctx, batch)
			for range chunk {
				tag, err := results.Exec()
				if err != nil {
					_ = results.Close()
					return err
				}
				written += int(tag.RowsAffected())
			}
			return results.Close()
		})
		if err != nil {
			return written, errors.Wrapf(err, "write batch at offset %d", start)
		}
		slog.Info("batch written", slog.Int("offset", start), slog.Int("size", len(chunk)))
	}
	return written, nil
}
