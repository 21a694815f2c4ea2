package notify

import (
	"context"
	"time"

	"github.com/go-faster/jx"
)

// Record is a row of the transactional outbox.
type Record struct {
	ID        int64
	EventID   string
	Topic     string
	Key       string
	Payload   []byte
	Attempts  int
	LastError string
	CreatedAt time.Time
	SentAt    *time.Time
}

// OutboxStore persists outbox records.
type OutboxStore interface {
	Insert(ctx context.Context, records []Record) error
	// FetchPending returns unsent records that have failed fewer than
	// maxAttempts times, oldest first.
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]Record, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}

// OutboxPublisher writes events to the outbox table. A Relay later forwards
// them to the broker.
type OutboxPublisher struct {
	store OutboxStore
	topic string
}

var _ Publisher = (*OutboxPublisher)(nil)

// NewOutboxPublisher returns a publisher that stores events under topic.
func NewOutboxPublisher(store OutboxStore, topic string) *OutboxPublisher {
	return &OutboxPublisher{store: store, topic: topic}
}

// Publish inserts one outbox record per event.
func (p *OutboxPublisher) Publish(ctx context.Context, events ...Event) error {
	records := make([]Record, 0, len(events))
	for _, e := range events {
		records = append(records, NewRecord(p.topic, e))
	}
	if err := p.store.Insert(ctx, records); err != nil {
		return deliveryError(err, "insert outbox records")
	}
	return nil
}

// NewRecord encodes e into an outbox record for topic.
func NewRecord(topic string, e Event) Record {
	var enc jx.Encoder
	e.Encode(&enc)
	return Record{
		EventID: e.ID,
		Topic:   topic,
		Key:     e.Key(),
		Payload: enc.Bytes(),
	}
}
