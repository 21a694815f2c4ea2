// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/ogenerrors"
)

// SecurityHandler is handler for security parameters.
type SecurityHandler interface {
	// HandleAdminKey handles AdminKey security.
	// API key with the admin scope.
	HandleAdminKey(ctx context.Context, operationName OperationName, t AdminKey) (context.Context, error)
	// HandleUserID handles UserID security.
	// Caller id set by the upstream gateway.
	HandleUserID(ctx context.Context, operationName OperationName, t UserID) (context.Context, error)
}

func findAuthorization(h http.Header, prefix string) (string, bool) {
	v, ok := h["Authorization"]
	if !ok {
		return "", false
	}
	for _, vv := range v {
		scheme, value, ok := strings.Cut(vv, " ")
		if !ok || !strings.EqualFold(scheme, prefix) {
			continue
		}
		return value, true
	}
	return "", false
}

// operationRolesAdminKey is a private map storing roles per operation.
var operationRolesAdminKey = map[string][]string{
	GetOrderOperation:           []string{},
	GetReturnOperation:          []string{},
	ListOrdersOperation:         []string{},
	ListReturnsOperation:        []string{},
	MarkReturnReceivedOperation: []string{},
	UpdateOrderStatusOperation:  []string{},
	UpdateReturnStatusOperation: []string{},
}

// GetRolesForAdminKey returns the required roles for the given operation.
//
// This is useful for authorization scenarios where you need to know which roles
// are required for an operation.
//
// Example:
//
//	requiredRoles := GetRolesForAdminKey(AddPetOperation)
//
// Returns nil if the operation has no role requirements or if the operation is unknown.
func GetRolesForAdminKey(operation string) []string {
	roles, ok := operationRolesAdminKey[operation]
	if !ok {
		return nil
	}
	// Return a copy to prevent external modification
	result := make([]string, len(roles))
	copy(result, roles)
	return result
}

// operationRolesUserID is a private map storing roles per operation.
var operationRolesUserID = map[string][]string{
	CancelOrderOperation:   []string{},
	GetMyOrderOperation:    []string{},
	ListMyOrdersOperation:  []string{},
	ListMyReturnsOperation: []string{},
	PlaceOrderOperation:    []string{},
	QuoteOrderOperation:    []string{},
	RequestReturnOperation: []string{},
}

// GetRolesForUserID returns the required roles for the given operation.
//
// This is useful for authorization scenarios where you need to know which roles
// are required for an operation.
//
// Example:
//
//	requiredRoles := GetRolesForUserID(AddPetOperation)
//
// Returns nil if the operation has no role requirements or if the operation is unknown.
func GetRolesForUserID(operation string) []string {
	roles, ok := operationRolesUserID[operation]
	if !ok {
		return nil
	}
	// Return a copy to prevent external modification
	result := make([]string, len(roles))
	copy(result, roles)
	return result
}

func (s *Server) securityAdminKey(ctx context.Context, operationName OperationName, req *http.Request) (context.Context, bool, error) {
	var t AdminKey
	const parameterName = "api_key"
	value := req.Header.Get(parameterName)
	if value == "" {
		return ctx, false, nil
	}
	t.APIKey = value
	t.Roles = operationRolesAdminKey[operationName]
	rctx, err := s.sec.HandleAdminKey(ctx, operationName, t)
	if errors.Is(err, ogenerrors.ErrSkipServerSecurity) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return rctx, true, err
}

func (s *Server) securityUserID(ctx context.Context, operationName OperationName, req *http.Request) (context.Context, bool, error) {
	var t UserID
	const parameterName = "X-User-ID"
	value := req.Header.Get(parameterName)
	if value == "" {
		return ctx, false, nil
	}
	t.APIKey = value
	t.Roles = operationRolesUserID[operationName]
	rctx, err := s.sec.HandleUserID(ctx, operationName, t)
	if errors.Is(err, ogenerrors.ErrSkipServerSecurity) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return rctx, true, err
}

// SecuritySource is provider of security values (tokens, passwords, etc.).
type SecuritySource interface {
	// AdminKey provides AdminKey security value.
	// API key with the admin scope.
	AdminKey(ctx context.Context, operationName OperationName) (AdminKey, error)
	// UserID provides UserID security value.
	// Caller id set by the upstream gateway.
	UserID(ctx context.Context, operationName OperationName) (UserID, error)
}

func (s *Client) securityAdminKey(ctx context.Context, operationName OperationName, req *http.Request) error {
	t, err := s.sec.AdminKey(ctx, operationName)
	if err != nil {
		return errors.Wrap(err, "security source \"AdminKey\"")
	}
	req.Header.Set("api_key", t.APIKey)
	return nil
}
func (s *Client) securityUserID(ctx context.Context, operationName OperationName, req *http.Request) error {
	t, err := s.sec.UserID(ctx, operationName)
	if err != nil {
		return errors.Wrap(err, "security source \"UserID\"")
	}
	req.Header.Set("X-User-ID", t.APIKey)
	return nil
}
