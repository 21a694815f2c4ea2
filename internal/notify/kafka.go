package notify

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/jx"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	var brokers []string
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewKafkaWriter returns a writer hashing messages by key. The topic is set
// per message so one writer serves every outbox topic.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// KafkaPublisher writes events straight to a Kafka topic.
type KafkaPublisher struct {
	w     MessageWriter
	topic string
	now   func() time.Time
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher returns a publisher writing to topic through w.
func NewKafkaPublisher(w MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: w, topic: topic, now: time.Now}
}

// Publish writes all events in a single batch.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...Event) error {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		var enc jx.Encoder
		e.Encode(&enc)
		msgs = append(msgs, kafka.Message{
			Topic: p.topic,
			Key:   []byte(e.Key()),
			Value: enc.Bytes(),
			Time:  p.now().UTC(),
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(e.ID)},
				{Key: "event_type", Value: []byte(e.Type)},
			},
		})
	}
	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return deliveryError(err, "write kafka messages")
	}
	return nil
}

// Send forwards an outbox record unchanged.
func (p *KafkaPublisher) Send(ctx context.Context, rec Record) error {
	topic := rec.Topic
	if topic == "" {
		topic = p.topic
	}
	msg := kafka.Message{
		Topic:   topic,
		Key:     []byte(rec.Key),
		Value:   rec.Payload,
		Time:    p.now().UTC(),
		Headers: []kafka.Header{{Key: "event_id", Value: []byte(rec.EventID)}},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return deliveryError(err, "write kafka message")
	}
	return nil
}
