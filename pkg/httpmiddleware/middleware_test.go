package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_Order(t *testing.T) {
	var trace []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Wrap(okHandler(), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, trace)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Len(t, seen, 36, "oversized id replaced with a uuid")
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestLogRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})
	h := Wrap(mux, InjectLogger(zap.New(core)), RequestID(), LogRequests(nil))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0].ContextMap()
	assert.Equal(t, "GET /api/orders/{id}", entry["route"])
	assert.Equal(t, int64(http.StatusTeapot), entry["status"])
	assert.Equal(t, int64(5), entry["bytes"])
	assert.NotEmpty(t, entry["request_id"])
}

type fakeRoute struct{ id, pattern string }

func (r fakeRoute) OperationID() string { return r.id }
func (r fakeRoute) PathPattern() string { return r.pattern }

func TestLogRequests_RouteFinder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	find := MakeRouteFinder(func(method string, u *url.URL) (fakeRoute, bool) {
		if method == http.MethodGet && strings.HasPrefix(u.Path, "/api/orders/") {
			return fakeRoute{id: "getOrder", pattern: "/orders/{id}"}, true
		}
		return fakeRoute{}, false
	})
	mux := http.NewServeMux()
	mux.Handle("/api/", okHandler())
	h := Wrap(mux, InjectLogger(zap.New(core)), LogRequests(find))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	require.Equal(t, 2, logs.Len())
	matched := logs.All()[0].ContextMap()
	assert.Equal(t, "/orders/{id}", matched["route"])
	assert.Equal(t, "getOrder", matched["operation"])

	unmatched := logs.All()[1].ContextMap()
	assert.Equal(t, "/api/", unmatched["route"])
	assert.NotContains(t, unmatched, "operation")
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := Wrap(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		InjectLogger(zap.New(core)),
		Recovery(),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, internalErrorBody, w.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Panic recovered", logs.All()[0].Message)
}

func TestInjectLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := InjectLogger(zap.New(core))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		zctx.From(r.Context()).Info("hello")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 1, logs.Len())
}
