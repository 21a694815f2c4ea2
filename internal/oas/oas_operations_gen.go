// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	CancelOrderOperation        OperationName = "CancelOrder"
	GetMyOrderOperation         OperationName = "GetMyOrder"
	GetOrderOperation           OperationName = "GetOrder"
	GetProductOperation         OperationName = "GetProduct"
	GetReturnOperation          OperationName = "GetReturn"
	ListMyOrdersOperation       OperationName = "ListMyOrders"
	ListMyReturnsOperation      OperationName = "ListMyReturns"
	ListOrdersOperation         OperationName = "ListOrders"
	ListProductsOperation       OperationName = "ListProducts"
	ListReturnsOperation        OperationName = "ListReturns"
	MarkReturnReceivedOperation OperationName = "MarkReturnReceived"
	PlaceOrderOperation         OperationName = "PlaceOrder"
	QuoteOrderOperation         OperationName = "QuoteOrder"
	RequestReturnOperation      OperationName = "RequestReturn"
	UpdateOrderStatusOperation  OperationName = "UpdateOrderStatus"
	UpdateReturnStatusOperation OperationName = "UpdateReturnStatus"
)
