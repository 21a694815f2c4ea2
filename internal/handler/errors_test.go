package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront-orders/internal/domain/auth"
	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/oas"
	"github.com/xenking/storefront-orders/internal/repository"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   Kind
	}{
		{"empty items", order.ErrEmptyItems, http.StatusBadRequest, KindValidation},
		{"unknown order status", &order.UnknownStatusError{Value: "x"}, http.StatusBadRequest, KindValidation},
		{"unknown return status", &returns.UnknownStatusError{Value: "rejected"}, http.StatusBadRequest, KindValidation},
		{"product not found", &order.ProductNotFoundError{ProductID: "p"}, http.StatusUnprocessableEntity, KindValidation},
		{"invalid quantity", &order.InvalidQuantityError{ProductID: "p"}, http.StatusUnprocessableEntity, KindValidation},
		{"return quantity", &returns.QuantityError{}, http.StatusBadRequest, KindValidation},
		{"order missing", errors.Wrap(order.ErrNotFound, "get"), http.StatusNotFound, KindNotFound},
		{"user missing", user.ErrNotFound, http.StatusNotFound, KindNotFound},
		{"return missing", returns.ErrNotFound, http.StatusNotFound, KindNotFound},
		{"cas lost", order.ErrConcurrentUpdate, http.StatusConflict, KindConflict},
		{"serialization", errors.Wrap(repository.ErrSerialization, "tx"), http.StatusConflict, KindConflict},
		{"coupon invalid", coupon.ErrInvalidCoupon, http.StatusUnprocessableEntity, KindCoupon},
		{"coupon minimum", &coupon.BelowMinimumError{Code: "C", MinPurchase: decimal.NewFromInt(5)}, http.StatusUnprocessableEntity, KindCoupon},
		{"not cancellable", order.ErrNotCancellable, http.StatusConflict, KindState},
		{"order transition", &order.TransitionError{From: order.StatusCancelled, To: order.StatusDelivered}, http.StatusConflict, KindState},
		{"return transition", &returns.TransitionError{From: returns.StatusRejected, To: returns.StatusApproved}, http.StatusConflict, KindState},
		{"not returnable", returns.ErrNotReturnable, http.StatusConflict, KindState},
		{"unauthorized", errUnauthorized, http.StatusUnauthorized, KindUnauthorized},
		{"undecodable body", &ogenerrors.DecodeRequestError{Err: errors.New("unexpected EOF")}, http.StatusBadRequest, KindValidation},
		{"bad parameter", &ogenerrors.DecodeParamsError{Err: errors.New("invalid value")}, http.StatusBadRequest, KindValidation},
		{"missing credentials", &ogenerrors.SecurityError{Security: "AdminKey", Err: ogenerrors.ErrSecurityRequirementIsNotSatisfied}, http.StatusUnauthorized, KindUnauthorized},
		{"rejected credentials", &ogenerrors.SecurityError{Security: "AdminKey", Err: errUnauthorized}, http.StatusUnauthorized, KindUnauthorized},
		{"missing scope", &ogenerrors.SecurityError{Security: "AdminKey", Err: errForbidden}, http.StatusForbidden, KindForbidden},
		{"credential lookup failure", &ogenerrors.SecurityError{Security: "AdminKey", Err: errors.New("pool closed")}, http.StatusInternalServerError, KindInternal},
		{"unknown route", errRouteNotFound, http.StatusNotFound, KindNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantKind, got.Kind)
		})
	}
}

func TestClassify_CouponReasonPreserved(t *testing.T) {
	for _, target := range []error{coupon.ErrInvalidCoupon, coupon.ErrCouponNotActive, coupon.ErrCouponExhausted} {
		got := classify(errors.Wrap(target, "quote"))
		assert.Equal(t, target.Error(), got.Message)
	}
}

func TestNewError(t *testing.T) {
	h := New(Config{}, nil, nil, nil, nil, testPepper)

	res := h.NewError(context.Background(), errors.Wrap(order.ErrNotFound, "get order"))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.False(t, res.Response.Success)
	assert.Equal(t, string(KindNotFound), res.Response.Error.Kind)
	assert.False(t, res.Response.Error.Detail.IsSet())

	res = h.NewError(context.Background(), errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.False(t, res.Response.Error.Detail.IsSet(), "detail is hidden by default")

	exposed := New(Config{ExposeErrors: true}, nil, nil, nil, nil, testPepper)
	res = exposed.NewError(context.Background(), errors.New("boom"))
	assert.Equal(t, "boom", res.Response.Error.Detail.Or(""))
}

func TestAuthenticator(t *testing.T) {
	repo := newAPIKeys(map[string][]string{"k1": {"*"}})
	a := NewAuthenticator(repo, testPepper)

	k, err := a.Authenticate(context.Background(), "k1")
	require.NoError(t, err)
	assert.True(t, k.Scopes.Has(auth.ScopeAdmin), "wildcard scope grants admin")

	_, err = a.Authenticate(context.Background(), "k2")
	assert.ErrorIs(t, err, errUnauthorized)

	_, err = a.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, errUnauthorized)

	_, err = NewAuthenticator(repo, []byte("other")).Authenticate(context.Background(), "k1")
	assert.ErrorIs(t, err, errUnauthorized)

	for _, stored := range repo.keys {
		stored.Hash = []byte("tampered")
	}
	_, err = a.Authenticate(context.Background(), "k1")
	assert.ErrorIs(t, err, errUnauthorized)

	repo.err = errors.New("pool closed")
	_, err = a.Authenticate(context.Background(), "k1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errUnauthorized)
}

func TestAuthenticator_HandleAdminKey(t *testing.T) {
	a := NewAuthenticator(newAPIKeys(map[string][]string{
		"admin":  {"Admin"},
		"viewer": {"read"},
	}), testPepper)

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "admin scope", key: "admin"},
		{name: "other scope", key: "viewer", wantErr: errForbidden},
		{name: "unknown key", key: "stranger", wantErr: errUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.HandleAdminKey(context.Background(), oas.ListOrdersOperation, oas.AdminKey{APIKey: tt.key})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthenticator_HandleUserID(t *testing.T) {
	a := NewAuthenticator(newAPIKeys(nil), testPepper)

	ctx, err := a.HandleUserID(context.Background(), oas.PlaceOrderOperation, oas.UserID{APIKey: " u1 "})
	require.NoError(t, err)
	assert.Equal(t, "u1", userIDFrom(ctx))

	_, err = a.HandleUserID(context.Background(), oas.PlaceOrderOperation, oas.UserID{APIKey: "   "})
	assert.ErrorIs(t, err, errUnauthorized)
}
