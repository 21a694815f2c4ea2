package notify

import (
	"context"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// LogPublisher writes events to the context logger. It is used when no
// broker is configured.
type LogPublisher struct{}

var _ Publisher = LogPublisher{}

// Publish logs every event at info level.
func (LogPublisher) Publish(ctx context.Context, events ...Event) error {
	lg := zctx.From(ctx)
	for _, e := range events {
		lg.Info("Notification",
			zap.String("id", e.ID),
			zap.String("type", string(e.Type)),
			zap.String("audience", string(e.Audience)),
			zap.String("order_id", e.OrderID),
			zap.String("return_id", e.ReturnID),
			zap.String("user_email", e.UserEmail),
			zap.String("old_status", e.OldStatus),
			zap.String("new_status", e.NewStatus),
		)
	}
	return nil
}
