package health

import (
	"context"
	"runtime"
	"time"

	"github.com/go-faster/errors"
)

// GoroutineCountCheck fails when the number of goroutines exceeds threshold,
// which usually indicates a leak.
func GoroutineCountCheck(threshold int) CheckFunc {
	return func(context.Context) error {
		if n := runtime.NumGoroutine(); n > threshold {
			return errors.Errorf("goroutine count %d exceeds threshold %d", n, threshold)
		}
		return nil
	}
}

// Pinger is implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck fails when p cannot be reached.
func PingCheck(p Pinger) CheckFunc {
	return func(ctx context.Context) error {
		if err := p.Ping(ctx); err != nil {
			return errors.Wrap(err, "ping")
		}
		return nil
	}
}

// StalenessCheck fails when last reports a time older than maxAge. A zero
// time passes until grace has elapsed since the check was created.
func StalenessCheck(last func() time.Time, maxAge, grace time.Duration) CheckFunc {
	created := time.Now()
	return func(context.Context) error {
		at := last()
		if at.IsZero() {
			if time.Since(created) > grace {
				return errors.New("no successful run yet")
			}
			return nil
		}
		if age := time.Since(at); age > maxAge {
			return errors.Errorf("last successful run %s ago exceeds %s", age.Round(time.Second), maxAge)
		}
		return nil
	}
}
