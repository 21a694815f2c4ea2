package httpmiddleware

import (
	"net/http"
	"net/url"
)

// Route identifies the API operation serving a request.
type Route struct {
	OperationID string
	Pattern     string
}

// RouteFinder resolves the operation serving a request.
type RouteFinder func(method string, u *url.URL) (Route, bool)

// MakeRouteFinder adapts the FindPath method of a generated server.
func MakeRouteFinder[R interface {
	OperationID() string
	PathPattern() string
}](find func(method string, u *url.URL) (R, bool)) RouteFinder {
	return func(method string, u *url.URL) (Route, bool) {
		r, ok := find(method, u)
		if !ok {
			return Route{}, false
		}
		return Route{OperationID: r.OperationID(), Pattern: r.PathPattern()}, true
	}
}

func (f RouteFinder) find(r *http.Request) (Route, bool) {
	if f == nil {
		return Route{}, false
	}
	return f(r.Method, r.URL)
}
