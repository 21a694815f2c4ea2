// Package notify delivers order and return status notifications.
//
// Delivery is best effort: publishers wrap failures in ErrDelivery and
// callers log and drop them, so a lost notification never undoes a status
// change that has already been committed.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrDelivery marks a notification that could not be handed off.
var ErrDelivery = errors.New("notification delivery failed")

func deliveryError(err error, op string) error {
	return fmt.Errorf("%w: %s: %w", ErrDelivery, op, err)
}

// Type identifies the kind of event.
type Type string

const (
	OrderCreated        Type = "order.created"
	OrderStatusChanged  Type = "order.status_changed"
	ReturnStatusChanged Type = "return.status_changed"
)

// Audience is the recipient group of an event.
type Audience string

const (
	AudienceUser  Audience = "user"
	AudienceAdmin Audience = "admin"
)

// Event is a single notification addressed to one audience.
type Event struct {
	ID         string
	Type       Type
	Audience   Audience
	OrderID    string
	ReturnID   string
	UserID     string
	UserName   string
	UserEmail  string
	OldStatus  string
	NewStatus  string
	TotalPrice decimal.Decimal
	OccurredAt time.Time
}

// Key is the partitioning key of the event. Events for the same order share
// a key so that consumers observe them in order.
func (e Event) Key() string {
	if e.OrderID != "" {
		return e.OrderID
	}
	return e.ReturnID
}

// Fanout returns one copy of base per audience, each with a fresh ID.
func Fanout(base Event) []Event {
	out := make([]Event, 0, 2)
	for _, a := range []Audience{AudienceUser, AudienceAdmin} {
		e := base
		e.ID = ulid.Make().String()
		e.Audience = a
		out = append(out, e)
	}
	return out
}

// Publisher hands events off for delivery.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// Dispatch publishes events and logs any failure instead of returning it.
func Dispatch(ctx context.Context, p Publisher, events ...Event) {
	if p == nil || len(events) == 0 {
		return
	}
	if err := p.Publish(ctx, events...); err != nil {
		zctx.From(ctx).Warn("Notification dropped",
			zap.String("type", string(events[0].Type)),
			zap.String("key", events[0].Key()),
			zap.Int("count", len(events)),
			zap.Error(err),
		)
	}
}

// Encode writes e as a JSON object.
func (e Event) Encode(enc *jx.Encoder) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("id", func(enc *jx.Encoder) { enc.Str(e.ID) })
		enc.Field("type", func(enc *jx.Encoder) { enc.Str(string(e.Type)) })
		enc.Field("audience", func(enc *jx.Encoder) { enc.Str(string(e.Audience)) })
		if e.OrderID != "" {
			enc.Field("order_id", func(enc *jx.Encoder) { enc.Str(e.OrderID) })
		}
		if e.ReturnID != "" {
			enc.Field("return_id", func(enc *jx.Encoder) { enc.Str(e.ReturnID) })
		}
		enc.Field("user_id", func(enc *jx.Encoder) { enc.Str(e.UserID) })
		enc.Field("user_name", func(enc *jx.Encoder) { enc.Str(e.UserName) })
		enc.Field("user_email", func(enc *jx.Encoder) { enc.Str(e.UserEmail) })
		enc.Field("old_status", func(enc *jx.Encoder) { enc.Str(e.OldStatus) })
		enc.Field("new_status", func(enc *jx.Encoder) { enc.Str(e.NewStatus) })
		enc.Field("total_price", func(enc *jx.Encoder) { enc.Str(e.TotalPrice.String()) })
		enc.Field("occurred_at", func(enc *jx.Encoder) { enc.Str(e.OccurredAt.UTC().Format(time.RFC3339Nano)) })
	})
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	var enc jx.Encoder
	e.Encode(&enc)
	return enc.Bytes(), nil
}

// Decode reads an event previously written by Encode.
func (e *Event) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "total_price":
			s, err := d.Str()
			if err != nil {
				return err
			}
			v, err := decimal.NewFromString(s)
			if err != nil {
				return errors.Wrap(err, "total_price")
			}
			e.TotalPrice = v
			return nil
		case "occurred_at":
			s, err := d.Str()
			if err != nil {
				return err
			}
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return errors.Wrap(err, "occurred_at")
			}
			e.OccurredAt = t
			return nil
		}

		dst := e.stringField(key)
		if dst == nil {
			return d.Skip()
		}
		s, err := d.Str()
		if err != nil {
			return errors.Wrap(err, key)
		}
		*dst = s
		return nil
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(data []byte) error {
	return e.Decode(jx.DecodeBytes(data))
}

func (e *Event) stringField(key string) *string {
	switch key {
	case "id":
		return &e.ID
	case "type":
		return (*string)(&e.Type)
	case "audience":
		return (*string)(&e.Audience)
	case "order_id":
		return &e.OrderID
	case "return_id":
		return &e.ReturnID
	case "user_id":
		return &e.UserID
	case "user_name":
		return &e.UserName
	case "user_email":
		return &e.UserEmail
	case "old_status":
		return &e.OldStatus
	case "new_status":
		return &e.NewStatus
	default:
		return nil
	}
}
