package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func serve(t *testing.T, endpoint http.HandlerFunc) (int, statusBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	endpoint(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body statusBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

// scripted returns a check that replays results in order and then keeps
// returning the last one.
func scripted(results ...error) CheckFunc {
	var i atomic.Int64
	return func(context.Context) error {
		n := int(i.Add(1)) - 1
		if n >= len(results) {
			n = len(results) - 1
		}
		return results[n]
	}
}

var errDown = errors.New("down")

func TestChecker_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		failure int
		success int
		results []error
		want    []bool
	}{
		{
			name:    "defaults flip after three failures",
			failure: 3, success: 1,
			results: []error{errDown, errDown, errDown, nil},
			want:    []bool{true, true, false, true},
		},
		{
			name:    "success resets failure streak",
			failure: 2, success: 1,
			results: []error{errDown, nil, errDown, errDown},
			want:    []bool{true, true, true, false},
		},
		{
			name:    "recovery needs consecutive successes",
			failure: 1, success: 2,
			results: []error{errDown, nil, errDown, nil, nil},
			want:    []bool{false, false, false, false, true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(WithThresholds(tt.failure, tt.success))
			p := h.newChecker("db", time.Second, scripted(tt.results...))
			for i, want := range tt.want {
				p.run(context.Background())
				assert.Equal(t, want, p.isHealthy(), "after run %d", i+1)
			}
		})
	}
}

func TestWithThresholds_ClampsToOne(t *testing.T) {
	h := New(WithThresholds(0, -5))
	assert.Equal(t, 1, h.failureThreshold)
	assert.Equal(t, 1, h.successThreshold)
}

func TestChecker_Timeout(t *testing.T) {
	h := New(WithThresholds(1, 1))
	p := h.newChecker("slow", 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	p.run(context.Background())

	assert.False(t, p.isHealthy())
	require.ErrorIs(t, p.lastError(), context.DeadlineExceeded)
}

func TestLiveEndpoint(t *testing.T) {
	h := New(WithThresholds(1, 1))
	h.AddLivenessCheck("goroutines", time.Second, scripted(nil))
	h.AddLivenessCheck("memory", time.Second, scripted(errDown))

	code, body := serve(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code, "checks start healthy")
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Checks)

	for _, p := range h.snapshot(&h.liveness) {
		p.run(context.Background())
	}

	code, body = serve(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, map[string]string{"memory": "down"}, body.Checks)
}

func TestReadyEndpoint(t *testing.T) {
	h := New(WithThresholds(1, 1))
	h.AddReadinessCheck("postgres", time.Second, scripted(nil))

	code, body := serve(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body.Checks, "_readiness")
	assert.False(t, h.IsReady())

	h.SetReady(true)
	code, body = serve(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	assert.True(t, h.IsReady())

	h.SetReady(false)
	code, _ = serve(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code, "cleared on shutdown")
}

func TestStart_RunsChecksUntilStopped(t *testing.T) {
	var calls atomic.Int64
	h := New(WithThresholds(1, 1))
	h.AddReadinessCheck("postgres", time.Second, func(context.Context) error {
		calls.Add(1)
		return errDown
	})
	h.SetReady(true)

	h.Start(context.Background(), 5*time.Millisecond)
	require.Eventually(t, func() bool { return !h.IsReady() }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	h.Stop()
	h.Stop()
	time.Sleep(20 * time.Millisecond)
	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, calls.Load(), "no runs after Stop")
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	t.Run("goroutine count", func(t *testing.T) {
		require.NoError(t, GoroutineCountCheck(1_000_000)(ctx))
		require.Error(t, GoroutineCountCheck(0)(ctx))
	})
	t.Run("ping", func(t *testing.T) {
		require.NoError(t, PingCheck(pinger{})(ctx))
		err := PingCheck(pinger{err: errDown})(ctx)
		require.ErrorIs(t, err, errDown)
		assert.Contains(t, err.Error(), "ping")
	})
	t.Run("staleness", func(t *testing.T) {
		fresh := func() time.Time { return time.Now() }
		old := func() time.Time { return time.Now().Add(-time.Hour) }
		never := func() time.Time { return time.Time{} }

		require.NoError(t, StalenessCheck(fresh, time.Minute, 0)(ctx))
		require.Error(t, StalenessCheck(old, time.Minute, 0)(ctx))
		require.NoError(t, StalenessCheck(never, time.Minute, time.Hour)(ctx), "within grace")

		check := StalenessCheck(never, time.Minute, time.Millisecond)
		time.Sleep(5 * time.Millisecond)
		require.Error(t, check(ctx), "grace elapsed")
	})
}
