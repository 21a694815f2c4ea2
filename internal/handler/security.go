package handler

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront-orders/internal/domain/auth"
	"github.com/xenking/storefront-orders/internal/oas"
)

// Compile-time check ensuring Authenticator satisfies the ogen interface.
var _ oas.SecurityHandler = (*Authenticator)(nil)

var (
	errUnauthorized = errors.New("unauthorized")
	errForbidden    = errors.New("forbidden")
)

// Authenticator resolves callers: the gateway supplied user id for customer
// operations and HMAC-SHA256 hashed API keys for admin operations.
type Authenticator struct {
	apikeys auth.Repository
	pepper  []byte
}

// NewAuthenticator creates an Authenticator with the given API key
// repository and HMAC pepper.
func NewAuthenticator(apikeys auth.Repository, pepper []byte) *Authenticator {
	return &Authenticator{
		apikeys: apikeys,
		pepper:  pepper,
	}
}

// Authenticate looks up key by its digest and compares the stored digest in
// constant time.
func (a *Authenticator) Authenticate(ctx context.Context, key string) (*auth.APIKey, error) {
	if key == "" {
		return nil, errUnauthorized
	}
	digest := auth.Digest(a.pepper, key)

	k, err := a.apikeys.FindByHash(ctx, hex.EncodeToString(digest))
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return nil, errUnauthorized
		}
		return nil, errors.Wrap(err, "find api key")
	}
	if subtle.ConstantTimeCompare(digest, k.Hash) != 1 {
		return nil, errUnauthorized
	}
	return k, nil
}

// HandleAdminKey requires an API key carrying the admin scope.
func (a *Authenticator) HandleAdminKey(ctx context.Context, _ oas.OperationName, t oas.AdminKey) (context.Context, error) {
	k, err := a.Authenticate(ctx, t.APIKey)
	if err != nil {
		return ctx, err
	}
	if !k.Scopes.Has(auth.ScopeAdmin) {
		return ctx, errForbidden
	}
	return zctx.With(ctx, zap.String("api_key", k.Name)), nil
}

// HandleUserID stores the caller id set by the upstream gateway in ctx.
func (a *Authenticator) HandleUserID(ctx context.Context, _ oas.OperationName, t oas.UserID) (context.Context, error) {
	id := strings.TrimSpace(t.APIKey)
	if id == "" {
		return ctx, errors.Wrap(errUnauthorized, "missing user id")
	}
	ctx = context.WithValue(ctx, userIDKey{}, id)
	return zctx.With(ctx, zap.String("user_id", id)), nil
}

type userIDKey struct{}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
