package handler

import (
	"context"

	"github.com/xenking/storefront-orders/internal/domain/returns"
	"github.com/xenking/storefront-orders/internal/oas"
)

// RequestReturn files a return for units of one product of a delivered order.
func (h *Handler) RequestReturn(ctx context.Context, req *oas.ReturnRequest) (*oas.ReturnResponse, error) {
	ret, err := h.returns.Request(ctx, returns.RequestInput{
		UserID:    userIDFrom(ctx),
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return nil, err
	}
	return &oas.ReturnResponse{Success: true, Message: "return requested", Data: returnToOAS(ret)}, nil
}

// ListMyReturns returns the caller's returns.
func (h *Handler) ListMyReturns(ctx context.Context, params oas.ListMyReturnsParams) (*oas.ReturnListResponse, error) {
	filter, err := returnFilter(params.Status, params.OrderID, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	filter.UserID = userIDFrom(ctx)
	return h.listReturns(ctx, filter)
}

// ListReturns returns returns across all users.
func (h *Handler) ListReturns(ctx context.Context, params oas.ListReturnsParams) (*oas.ReturnListResponse, error) {
	filter, err := returnFilter(params.Status, params.OrderID, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	filter.UserID = params.UserID.Or("")
	return h.listReturns(ctx, filter)
}

func (h *Handler) listReturns(ctx context.Context, filter returns.ListFilter) (*oas.ReturnListResponse, error) {
	list, err := h.returns.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &oas.ReturnListResponse{Success: true, Message: "returns fetched", Data: returnsToOAS(list)}, nil
}

// GetReturn returns any return by id.
func (h *Handler) GetReturn(ctx context.Context, params oas.GetReturnParams) (*oas.ReturnResponse, error) {
	ret, err := h.returns.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	return &oas.ReturnResponse{Success: true, Message: "return fetched", Data: returnToOAS(ret)}, nil
}

// UpdateReturnStatus approves or rejects a return.
func (h *Handler) UpdateReturnStatus(ctx context.Context, req *oas.ReturnStatusUpdate, params oas.UpdateReturnStatusParams) (*oas.ReturnResponse, error) {
	next, err := returns.ParseStatus(string(req.Status))
	if err != nil {
		return nil, err
	}
	ret, err := h.returns.TransitionStatus(ctx, params.ID, next, req.RejectionReason.Or(""))
	if err != nil {
		return nil, err
	}
	return &oas.ReturnResponse{Success: true, Message: "return status updated", Data: returnToOAS(ret)}, nil
}

// MarkReturnReceived records that the returned goods arrived.
func (h *Handler) MarkReturnReceived(ctx context.Context, params oas.MarkReturnReceivedParams) (*oas.ReturnResponse, error) {
	ret, err := h.returns.MarkReceived(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	return &oas.ReturnResponse{Success: true, Message: "return marked as received", Data: returnToOAS(ret)}, nil
}

func returnFilter(status oas.OptReturnStatus, orderID oas.OptString, limit, offset oas.OptInt) (returns.ListFilter, error) {
	filter := returns.ListFilter{
		OrderID: orderID.Or(""),
		Limit:   limit.Or(0),
		Offset:  offset.Or(0),
	}
	if st, ok := status.Get(); ok {
		var err error
		if filter.Status, err = returns.ParseStatus(string(st)); err != nil {
			return filter, err
		}
	}
	return filter, nil
}
