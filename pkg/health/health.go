// Package health serves liveness and readiness endpoints.
//
// Every check runs in its own goroutine. A check flips to unhealthy only after
// failureThreshold consecutive failures and back after successThreshold
// consecutive successes, so a single slow ping does not flap the endpoint.
package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-faster/jx"
)

// CheckFunc returns nil when the checked component is healthy.
type CheckFunc func(ctx context.Context) error

// checker is one registered check. run is only called from the check's own
// goroutine; healthy and lastErr are read concurrently by the endpoints.
type checker struct {
	name    string
	timeout time.Duration
	check   CheckFunc

	failureThreshold int
	successThreshold int

	healthy atomic.Bool
	lastErr atomic.Pointer[error]

	fails int
	oks   int
}

func (p *checker) isHealthy() bool { return p.healthy.Load() }

func (p *checker) lastError() error {
	if e := p.lastErr.Load(); e != nil {
		return *e
	}
	return nil
}

func (p *checker) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.check(ctx)
	p.lastErr.Store(&err)
	if err != nil {
		p.oks = 0
		p.fails++
		if p.fails >= p.failureThreshold {
			p.healthy.Store(false)
		}
		return
	}
	p.fails = 0
	p.oks++
	if p.oks >= p.successThreshold {
		p.healthy.Store(true)
	}
}

// Health holds the liveness and readiness checks of a process.
type Health struct {
	ready atomic.Bool

	failureThreshold int
	successThreshold int

	mu        sync.RWMutex
	liveness  []*checker
	readiness []*checker
	cancel    context.CancelFunc
}

// Option configures Health.
type Option func(h *Health)

// WithThresholds sets the consecutive failure and success counts needed to
// change a check's state. Defaults are 3 and 1.
func WithThresholds(failure, success int) Option {
	return func(h *Health) {
		h.failureThreshold = max(failure, 1)
		h.successThreshold = max(success, 1)
	}
}

// New creates a Health in the not-ready state. Call SetReady(true) once the
// process has finished initialization.
func New(opts ...Option) *Health {
	h := &Health{failureThreshold: 3, successThreshold: 1}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Health) newChecker(name string, timeout time.Duration, check CheckFunc) *checker {
	p := &checker{
		name:             name,
		timeout:          timeout,
		check:            check,
		failureThreshold: h.failureThreshold,
		successThreshold: h.successThreshold,
	}
	p.healthy.Store(true)
	return p
}

// AddLivenessCheck registers a check that decides whether the process should
// be restarted.
func (h *Health) AddLivenessCheck(name string, timeout time.Duration, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.liveness = append(h.liveness, h.newChecker(name, timeout, check))
}

// AddReadinessCheck registers a check that decides whether the process
// should receive traffic.
func (h *Health) AddReadinessCheck(name string, timeout time.Duration, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readiness = append(h.readiness, h.newChecker(name, timeout, check))
}

// Start runs every registered check at interval until Stop or ctx is done.
func (h *Health) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	h.cancel = cancel
	checkers := append(append([]*checker(nil), h.liveness...), h.readiness...)
	h.mu.Unlock()

	for _, p := range checkers {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			p.run(ctx)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					p.run(ctx)
				}
			}
		}()
	}
}

// Stop cancels the check goroutines. It is safe to call more than once.
func (h *Health) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// SetReady sets the manual readiness flag. It is cleared on shutdown so the
// load balancer drains the instance.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports whether the process is marked ready and every readiness
// check passes.
func (h *Health) IsReady() bool {
	return h.ready.Load() && len(failures(h.snapshot(&h.readiness))) == 0
}

func (h *Health) snapshot(list *[]*checker) []*checker {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]*checker(nil), (*list)...)
}

// LiveEndpoint serves /livez: 200 when every liveness check passes,
// otherwise 503 listing the failing checks.
func (h *Health) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, failures(h.snapshot(&h.liveness)))
}

// ReadyEndpoint serves /readyz: 200 when the process is marked ready and
// every readiness check passes, otherwise 503.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	failed := failures(h.snapshot(&h.readiness))
	if !h.ready.Load() {
		failed["_readiness"] = "service is not ready"
	}
	writeStatus(w, failed)
}

// failures maps each unhealthy check to its last error. The stored result
// is used; checks are not re-run.
func failures(checkers []*checker) map[string]string {
	out := make(map[string]string)
	for _, p := range checkers {
		if p.isHealthy() {
			continue
		}
		if err := p.lastError(); err != nil {
			out[p.name] = err.Error()
		} else {
			out[p.name] = "check is unhealthy"
		}
	}
	return out
}

// writeStatus writes {"status":"ok"} or
// {"status":"unhealthy","checks":{name: error}}.
func writeStatus(w http.ResponseWriter, failed map[string]string) {
	status, code := "ok", http.StatusOK
	if len(failed) > 0 {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(status) })
		if len(failed) == 0 {
			return
		}
		names := make([]string, 0, len(failed))
		for name := range failed {
			names = append(names, name)
		}
		sort.Strings(names)
		e.Field("checks", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, name := range names {
					e.Field(name, func(e *jx.Encoder) { e.Str(failed[name]) })
				}
			})
		})
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(e.Bytes())
}
