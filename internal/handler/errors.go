package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
	"github.com/xenking/storefront-orders/internal/domain/order"
	"github.com/xenking/storefront-orders/internal/domain/product"
	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/domain/user"
	"github.com/xenking/storefront-orders/internal/oas"
	"github.com/xenking/storefront-orders/internal/repository"
)

// Kind classifies a failed operation for API clients.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindCoupon       Kind = "coupon"
	KindState        Kind = "state"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInternal     Kind = "internal"
)

var errRouteNotFound = errors.New("route not found")

// apiError is the HTTP rendition of a domain error.
type apiError struct {
	Status  int
	Kind    Kind
	Message string
}

var (
	validationErrors = []error{
		order.ErrEmptyItems,
		order.ErrMissingUser,
		order.ErrMissingAddress,
		order.ErrInvalidStatus,
		returns.ErrInvalidStatus,
		returns.ErrInvalidQuantity,
		returns.ErrProductNotInOrder,
	}
	notFoundErrors = []error{
		order.ErrNotFound,
		returns.ErrNotFound,
		product.ErrNotFound,
		user.ErrNotFound,
		errRouteNotFound,
	}
	conflictErrors = []error{
		order.ErrConcurrentUpdate,
		order.ErrDuplicateIdempotencyKey,
		returns.ErrConcurrentUpdate,
		repository.ErrSerialization,
	}
	stateErrors = []error{
		order.ErrNotCancellable,
		returns.ErrNotReturnable,
	}
)

// classify maps err onto the API error taxonomy. Order matters only where a
// typed error also matches a broader sentinel.
func classify(err error) apiError {
	var (
		pnf   *order.ProductNotFoundError
		iq    *order.InvalidQuantityError
		qty   *returns.QuantityError
		ot    *order.TransitionError
		rt    *returns.TransitionError
		below *coupon.BelowMinimumError

		reqErr    *ogenerrors.DecodeRequestError
		paramsErr *ogenerrors.DecodeParamsError
	)
	switch {
	case errors.As(err, &reqErr), errors.As(err, &paramsErr):
		return apiError{Status: http.StatusBadRequest, Kind: KindValidation, Message: err.Error()}
	case errors.As(err, &pnf), errors.As(err, &iq):
		return apiError{Status: http.StatusUnprocessableEntity, Kind: KindValidation, Message: err.Error()}
	case errors.As(err, &qty):
		return apiError{Status: http.StatusBadRequest, Kind: KindValidation, Message: qty.Error()}
	case errors.As(err, &below):
		return apiError{Status: http.StatusUnprocessableEntity, Kind: KindCoupon, Message: below.Error()}
	case errors.Is(err, coupon.ErrCoupon):
		return apiError{Status: http.StatusUnprocessableEntity, Kind: KindCoupon, Message: couponReason(err)}
	case errors.As(err, &ot), errors.As(err, &rt):
		return apiError{Status: http.StatusConflict, Kind: KindState, Message: err.Error()}
	case isAny(err, stateErrors):
		return apiError{Status: http.StatusConflict, Kind: KindState, Message: err.Error()}
	case isAny(err, validationErrors):
		return apiError{Status: http.StatusBadRequest, Kind: KindValidation, Message: err.Error()}
	case isAny(err, notFoundErrors):
		return apiError{Status: http.StatusNotFound, Kind: KindNotFound, Message: err.Error()}
	case isAny(err, conflictErrors):
		return apiError{Status: http.StatusConflict, Kind: KindConflict, Message: "the resource was modified concurrently, retry the request"}
	case errors.Is(err, errUnauthorized), errors.Is(err, ogenerrors.ErrSecurityRequirementIsNotSatisfied):
		return apiError{Status: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "unauthorized"}
	case errors.Is(err, errForbidden):
		return apiError{Status: http.StatusForbidden, Kind: KindForbidden, Message: "forbidden"}
	default:
		return apiError{Status: http.StatusInternalServerError, Kind: KindInternal, Message: "internal server error"}
	}
}

// couponReason returns the most specific coupon sentinel message.
func couponReason(err error) string {
	for _, target := range []error{coupon.ErrInvalidCoupon, coupon.ErrCouponNotActive, coupon.ErrCouponExhausted} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return coupon.ErrCoupon.Error()
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// NewError renders err as the failure envelope. Server errors log at error
// level, everything else at debug.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	ae := classify(err)

	lg := zctx.From(ctx)
	if ae.Status >= http.StatusInternalServerError {
		lg.Error("Request failed", zap.Error(err))
	} else {
		lg.Debug("Request rejected", zap.String("kind", string(ae.Kind)), zap.Error(err))
	}

	detail := oas.ErrorDetail{Kind: string(ae.Kind)}
	if ae.Kind == KindInternal && h.exposeErrors {
		detail.Detail = oas.NewOptString(err.Error())
	}
	return &oas.ErrorStatusCode{
		StatusCode: ae.Status,
		Response: oas.Error{
			Success: false,
			Message: ae.Message,
			Error:   detail,
		},
	}
}

// HandleError writes errors raised by the generated server before an
// operation runs, such as undecodable requests and failed security checks.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.HandleError(r.Context(), w, r, errors.Wrap(errRouteNotFound, r.URL.Path))
}
