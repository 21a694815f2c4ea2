package httpmiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func send(h http.Handler, headers map[string]string, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimit_UnderLimit(t *testing.T) {
	h := RateLimit(t.Context(), RateLimitConfig{Max: 5, Window: time.Minute})(okHandler())

	for i := range 5 {
		w := send(h, nil, "192.168.1.1:12345")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	h := RateLimit(t.Context(), RateLimitConfig{Max: 2, Window: time.Minute})(okHandler())

	for range 2 {
		require.Equal(t, http.StatusOK, send(h, nil, "10.0.0.1:9999").Code)
	}
	w := send(h, nil, "10.0.0.1:9999")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, rateLimitedBody, w.Body.String())
}

func TestRateLimit_KeyedByCaller(t *testing.T) {
	h := RateLimit(t.Context(), RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())

	// Same IP, different users: independent budgets.
	assert.Equal(t, http.StatusOK, send(h, map[string]string{"X-User-ID": "u1"}, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, send(h, map[string]string{"X-User-ID": "u2"}, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, send(h, map[string]string{"X-User-ID": "u1"}, "10.0.0.9:1").Code)

	assert.Equal(t, http.StatusOK, send(h, map[string]string{"api_key": "k"}, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, send(h, map[string]string{"api_key": "k"}, "").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(context.Background(), RateLimitConfig{})(okHandler())
	for range 10 {
		w := send(h, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimiter_SlidingWindow(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{Max: 10, Window: time.Minute})
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for range 10 {
		_, _, ok := rl.allow("k", start)
		require.True(t, ok)
	}
	_, _, ok := rl.allow("k", start.Add(30*time.Second))
	assert.False(t, ok, "window still full")

	// Half-way into the next window the previous count weighs 50%.
	remaining, _, ok := rl.allow("k", start.Add(90*time.Second))
	require.True(t, ok)
	assert.Equal(t, 4, remaining)

	rl.evict(start.Add(10 * time.Minute))
	assert.Empty(t, rl.windows)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2"}, "3.3.3.3:1", "1.1.1.1"},
		{"real ip", map[string]string{"X-Real-IP": "4.4.4.4"}, "3.3.3.3:1", "4.4.4.4"},
		{"remote addr", nil, "3.3.3.3:1", "3.3.3.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
