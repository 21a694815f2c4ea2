package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront-orders/internal/notify"
)

const (
	insertOutboxSQL = `INSERT INTO outbox (event_id, topic, key, payload)
		VALUES ($1, $2, $3, $4) ON CONFLICT (event_id) DO NOTHING`

	fetchPendingOutboxSQL = `SELECT id, event_id, topic, key, payload, attempts, last_error, created_at, sent_at
		FROM outbox WHERE sent_at IS NULL AND attempts < $2
		ORDER BY id LIMIT $1`

	markOutboxSentSQL = `UPDATE outbox SET sent_at = now() WHERE id = $1`

	markOutboxFailedSQL = `UPDATE outbox SET attempts = attempts + 1, last_error = $2 WHERE id = $1`
)

var _ notify.OutboxStore = (*OutboxRepository)(nil)

// OutboxRepository implements notify.OutboxStore backed by PostgreSQL.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

// NewOutboxRepository returns an OutboxRepository that uses the given pool.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// Insert stores records in one batch. Records with an already stored event
// id are ignored.
func (r *OutboxRepository) Insert(ctx context.Context, records []notify.Record) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(insertOutboxSQL, rec.EventID, rec.Topic, rec.Key, rec.Payload)
	}
	if err := conn(ctx, r.pool).SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting outbox records: %w", err)
	}
	return nil
}

// FetchPending returns unsent records, oldest first.
func (r *OutboxRepository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]notify.Record, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, fetchPendingOutboxSQL, limit, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("fetching pending outbox records: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (notify.Record, error) {
		var rec notify.Record
		err := row.Scan(&rec.ID, &rec.EventID, &rec.Topic, &rec.Key, &rec.Payload,
			&rec.Attempts, &rec.LastError, &rec.CreatedAt, &rec.SentAt)
		return rec, err
	})
}

// MarkSent stamps a record as delivered.
func (r *OutboxRepository) MarkSent(ctx context.Context, id int64) error {
	if _, err := conn(ctx, r.pool).Exec(ctx, markOutboxSentSQL, id); err != nil {
		return fmt.Errorf("marking outbox record %d sent: %w", id, err)
	}
	return nil
}

// MarkFailed records a failed delivery attempt.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id int64, reason string) error {
	if _, err := conn(ctx, r.pool).Exec(ctx, markOutboxFailedSQL, id, reason); err != nil {
		return fmt.Errorf("marking outbox record %d failed: %w", id, err)
	}
	return nil
}
