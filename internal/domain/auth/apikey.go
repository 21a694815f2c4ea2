package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"slices"
	"strings"

	"github.com/go-faster/errors"
)

// Scope is a permission granted to an API key.
type Scope string

const (
	// ScopeAdmin grants access to order and return administration.
	ScopeAdmin Scope = "admin"
	// ScopeAll grants every scope.
	ScopeAll Scope = "*"
)

// ErrNotFound is returned when no active key matches a hash.
var ErrNotFound = errors.New("api key not found")

// Scopes is the set of scopes granted to a key.
type Scopes map[Scope]struct{}

// NewScopes builds a set from stored scope names. Names are case-insensitive
// and blank names are ignored.
func NewScopes(names ...string) Scopes {
	s := make(Scopes, len(names))
	for _, name := range names {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			s[Scope(name)] = struct{}{}
		}
	}
	return s
}

// Has reports whether s grants scope directly or through ScopeAll.
func (s Scopes) Has(scope Scope) bool {
	_, ok := s[scope]
	if !ok {
		_, ok = s[ScopeAll]
	}
	return ok
}

// Names returns the scope names in sorted order.
func (s Scopes) Names() []string {
	out := make([]string, 0, len(s))
	for scope := range s {
		out = append(out, string(scope))
	}
	slices.Sort(out)
	return out
}

// APIKey is an active API key. Hash is the raw HMAC-SHA256 digest of the
// key under the server pepper.
type APIKey struct {
	ID     string
	Name   string
	Hash   []byte
	Scopes Scopes
}

// Digest returns the HMAC-SHA256 of key under pepper, the form in which keys
// are stored.
func Digest(pepper []byte, key string) []byte {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(key))
	return mac.Sum(nil)
}

// Repository provides lookup of active API keys by their hex-encoded digest.
type Repository interface {
	FindByHash(ctx context.Context, hash string) (*APIKey, error)
}
