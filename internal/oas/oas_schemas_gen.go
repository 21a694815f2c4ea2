// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type AdminKey struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *AdminKey) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *AdminKey) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *AdminKey) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *AdminKey) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/AppliedCoupon
type AppliedCoupon struct {
	Code           string  `json:"code"`
	DiscountType   string  `json:"discount_type"`
	DiscountValue  float64 `json:"discount_value"`
	DiscountAmount float64 `json:"discount_amount"`
}

// GetCode returns the value of Code.
func (s *AppliedCoupon) GetCode() string {
	return s.Code
}

// GetDiscountType returns the value of DiscountType.
func (s *AppliedCoupon) GetDiscountType() string {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *AppliedCoupon) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *AppliedCoupon) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// SetCode sets the value of Code.
func (s *AppliedCoupon) SetCode(val string) {
	s.Code = val
}

// SetDiscountType sets the value of DiscountType.
func (s *AppliedCoupon) SetDiscountType(val string) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *AppliedCoupon) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *AppliedCoupon) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

// GetSuccess returns the value of Success.
func (s *Error) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// GetError returns the value of Error.
func (s *Error) GetError() ErrorDetail {
	return s.Error
}

// SetSuccess sets the value of Success.
func (s *Error) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// SetError sets the value of Error.
func (s *Error) SetError(val ErrorDetail) {
	s.Error = val
}

// Ref: #/components/schemas/ErrorDetail
type ErrorDetail struct {
	// Validation, not_found, conflict, coupon, state, unauthorized, forbidden or internal.
	Kind string `json:"kind"`
	// Internal error detail, only when the server exposes errors.
	Detail OptString `json:"detail"`
}

// GetKind returns the value of Kind.
func (s *ErrorDetail) GetKind() string {
	return s.Kind
}

// GetDetail returns the value of Detail.
func (s *ErrorDetail) GetDetail() OptString {
	return s.Detail
}

// SetKind sets the value of Kind.
func (s *ErrorDetail) SetKind(val string) {
	s.Kind = val
}

// SetDetail sets the value of Detail.
func (s *ErrorDetail) SetDetail(val OptString) {
	s.Detail = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/ItemRequest
type ItemRequest struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Size      OptString `json:"size"`
	Color     OptString `json:"color"`
}

// GetProductID returns the value of ProductID.
func (s *ItemRequest) GetProductID() string {
	return s.ProductID
}

// GetQuantity returns the value of Quantity.
func (s *ItemRequest) GetQuantity() int {
	return s.Quantity
}

// GetSize returns the value of Size.
func (s *ItemRequest) GetSize() OptString {
	return s.Size
}

// GetColor returns the value of Color.
func (s *ItemRequest) GetColor() OptString {
	return s.Color
}

// SetProductID sets the value of ProductID.
func (s *ItemRequest) SetProductID(val string) {
	s.ProductID = val
}

// SetQuantity sets the value of Quantity.
func (s *ItemRequest) SetQuantity(val int) {
	s.Quantity = val
}

// SetSize sets the value of Size.
func (s *ItemRequest) SetSize(val OptString) {
	s.Size = val
}

// SetColor sets the value of Color.
func (s *ItemRequest) SetColor(val OptString) {
	s.Color = val
}

// NewOptAppliedCoupon returns new OptAppliedCoupon with value set to v.
func NewOptAppliedCoupon(v AppliedCoupon) OptAppliedCoupon {
	return OptAppliedCoupon{
		Value: v,
		Set:   true,
	}
}

// OptAppliedCoupon is optional AppliedCoupon.
type OptAppliedCoupon struct {
	Value AppliedCoupon
	Set   bool
}

// IsSet returns true if OptAppliedCoupon was set.
func (o OptAppliedCoupon) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptAppliedCoupon) Reset() {
	var v AppliedCoupon
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptAppliedCoupon) SetTo(v AppliedCoupon) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptAppliedCoupon) Get() (v AppliedCoupon, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptAppliedCoupon) Or(d AppliedCoupon) AppliedCoupon {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptOrderStatus returns new OptOrderStatus with value set to v.
func NewOptOrderStatus(v OrderStatus) OptOrderStatus {
	return OptOrderStatus{
		Value: v,
		Set:   true,
	}
}

// OptOrderStatus is optional OrderStatus.
type OptOrderStatus struct {
	Value OrderStatus
	Set   bool
}

// IsSet returns true if OptOrderStatus was set.
func (o OptOrderStatus) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptOrderStatus) Reset() {
	var v OrderStatus
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptOrderStatus) SetTo(v OrderStatus) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptOrderStatus) Get() (v OrderStatus, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptOrderStatus) Or(d OrderStatus) OrderStatus {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptPaymentInput returns new OptPaymentInput with value set to v.
func NewOptPaymentInput(v PaymentInput) OptPaymentInput {
	return OptPaymentInput{
		Value: v,
		Set:   true,
	}
}

// OptPaymentInput is optional PaymentInput.
type OptPaymentInput struct {
	Value PaymentInput
	Set   bool
}

// IsSet returns true if OptPaymentInput was set.
func (o OptPaymentInput) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptPaymentInput) Reset() {
	var v PaymentInput
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptPaymentInput) SetTo(v PaymentInput) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptPaymentInput) Get() (v PaymentInput, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptPaymentInput) Or(d PaymentInput) PaymentInput {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptReturnStatus returns new OptReturnStatus with value set to v.
func NewOptReturnStatus(v ReturnStatus) OptReturnStatus {
	return OptReturnStatus{
		Value: v,
		Set:   true,
	}
}

// OptReturnStatus is optional ReturnStatus.
type OptReturnStatus struct {
	Value ReturnStatus
	Set   bool
}

// IsSet returns true if OptReturnStatus was set.
func (o OptReturnStatus) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptReturnStatus) Reset() {
	var v ReturnStatus
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptReturnStatus) SetTo(v ReturnStatus) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptReturnStatus) Get() (v ReturnStatus, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptReturnStatus) Or(d ReturnStatus) ReturnStatus {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID                string               `json:"id"`
	UserID            string               `json:"user_id"`
	Status            OrderStatus          `json:"status"`
	Items             []OrderItem          `json:"items"`
	ShippingAddressID string               `json:"shipping_address_id"`
	Payment           PaymentSnapshot      `json:"payment"`
	TotalPrice        float64              `json:"total_price"`
	Coupon            OptAppliedCoupon     `json:"coupon"`
	Subscription      SubscriptionDiscount `json:"subscription"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// GetID returns the value of ID.
func (s *Order) GetID() string {
	return s.ID
}

// GetUserID returns the value of UserID.
func (s *Order) GetUserID() string {
	return s.UserID
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() OrderStatus {
	return s.Status
}

// GetItems returns the value of Items.
func (s *Order) GetItems() []OrderItem {
	return s.Items
}

// GetShippingAddressID returns the value of ShippingAddressID.
func (s *Order) GetShippingAddressID() string {
	return s.ShippingAddressID
}

// GetPayment returns the value of Payment.
func (s *Order) GetPayment() PaymentSnapshot {
	return s.Payment
}

// GetTotalPrice returns the value of TotalPrice.
func (s *Order) GetTotalPrice() float64 {
	return s.TotalPrice
}

// GetCoupon returns the value of Coupon.
func (s *Order) GetCoupon() OptAppliedCoupon {
	return s.Coupon
}

// GetSubscription returns the value of Subscription.
func (s *Order) GetSubscription() SubscriptionDiscount {
	return s.Subscription
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Order) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Order) SetID(val string) {
	s.ID = val
}

// SetUserID sets the value of UserID.
func (s *Order) SetUserID(val string) {
	s.UserID = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val OrderStatus) {
	s.Status = val
}

// SetItems sets the value of Items.
func (s *Order) SetItems(val []OrderItem) {
	s.Items = val
}

// SetShippingAddressID sets the value of ShippingAddressID.
func (s *Order) SetShippingAddressID(val string) {
	s.ShippingAddressID = val
}

// SetPayment sets the value of Payment.
func (s *Order) SetPayment(val PaymentSnapshot) {
	s.Payment = val
}

// SetTotalPrice sets the value of TotalPrice.
func (s *Order) SetTotalPrice(val float64) {
	s.TotalPrice = val
}

// SetCoupon sets the value of Coupon.
func (s *Order) SetCoupon(val OptAppliedCoupon) {
	s.Coupon = val
}

// SetSubscription sets the value of Subscription.
func (s *Order) SetSubscription(val SubscriptionDiscount) {
	s.Subscription = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Order) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Image     OptString `json:"image"`
	Size      OptString `json:"size"`
	Color     OptString `json:"color"`
}

// GetProductID returns the value of ProductID.
func (s *OrderItem) GetProductID() string {
	return s.ProductID
}

// GetName returns the value of Name.
func (s *OrderItem) GetName() string {
	return s.Name
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// GetUnitPrice returns the value of UnitPrice.
func (s *OrderItem) GetUnitPrice() float64 {
	return s.UnitPrice
}

// GetImage returns the value of Image.
func (s *OrderItem) GetImage() OptString {
	return s.Image
}

// GetSize returns the value of Size.
func (s *OrderItem) GetSize() OptString {
	return s.Size
}

// GetColor returns the value of Color.
func (s *OrderItem) GetColor() OptString {
	return s.Color
}

// SetProductID sets the value of ProductID.
func (s *OrderItem) SetProductID(val string) {
	s.ProductID = val
}

// SetName sets the value of Name.
func (s *OrderItem) SetName(val string) {
	s.Name = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetUnitPrice sets the value of UnitPrice.
func (s *OrderItem) SetUnitPrice(val float64) {
	s.UnitPrice = val
}

// SetImage sets the value of Image.
func (s *OrderItem) SetImage(val OptString) {
	s.Image = val
}

// SetSize sets the value of Size.
func (s *OrderItem) SetSize(val OptString) {
	s.Size = val
}

// SetColor sets the value of Color.
func (s *OrderItem) SetColor(val OptString) {
	s.Color = val
}

// Ref: #/components/schemas/OrderListResponse
type OrderListResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    []Order `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *OrderListResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *OrderListResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *OrderListResponse) GetData() []Order {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *OrderListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *OrderListResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *OrderListResponse) SetData(val []Order) {
	s.Data = val
}

// Ref: #/components/schemas/OrderResponse
type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Order  `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *OrderResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *OrderResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *OrderResponse) GetData() Order {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *OrderResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *OrderResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *OrderResponse) SetData(val Order) {
	s.Data = val
}

func (*OrderResponse) placeOrderRes() {}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusReturnApproved OrderStatus = "return_approved"
	OrderStatusReturnRejected OrderStatus = "return_rejected"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusReturnApproved,
		OrderStatusReturnRejected,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusPending:
		return []byte(s), nil
	case OrderStatusProcessing:
		return []byte(s), nil
	case OrderStatusDelivered:
		return []byte(s), nil
	case OrderStatusCancelled:
		return []byte(s), nil
	case OrderStatusReturnApproved:
		return []byte(s), nil
	case OrderStatusReturnRejected:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusPending:
		*s = OrderStatusPending
		return nil
	case OrderStatusProcessing:
		*s = OrderStatusProcessing
		return nil
	case OrderStatusDelivered:
		*s = OrderStatusDelivered
		return nil
	case OrderStatusCancelled:
		*s = OrderStatusCancelled
		return nil
	case OrderStatusReturnApproved:
		*s = OrderStatusReturnApproved
		return nil
	case OrderStatusReturnRejected:
		*s = OrderStatusReturnRejected
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/OrderStatusUpdate
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// GetStatus returns the value of Status.
func (s *OrderStatusUpdate) GetStatus() OrderStatus {
	return s.Status
}

// SetStatus sets the value of Status.
func (s *OrderStatusUpdate) SetStatus(val OrderStatus) {
	s.Status = val
}

// Ref: #/components/schemas/PaymentInput
type PaymentInput struct {
	ID     OptString `json:"id"`
	Status OptString `json:"status"`
	Method OptString `json:"method"`
}

// GetID returns the value of ID.
func (s *PaymentInput) GetID() OptString {
	return s.ID
}

// GetStatus returns the value of Status.
func (s *PaymentInput) GetStatus() OptString {
	return s.Status
}

// GetMethod returns the value of Method.
func (s *PaymentInput) GetMethod() OptString {
	return s.Method
}

// SetID sets the value of ID.
func (s *PaymentInput) SetID(val OptString) {
	s.ID = val
}

// SetStatus sets the value of Status.
func (s *PaymentInput) SetStatus(val OptString) {
	s.Status = val
}

// SetMethod sets the value of Method.
func (s *PaymentInput) SetMethod(val OptString) {
	s.Method = val
}

// Ref: #/components/schemas/PaymentSnapshot
type PaymentSnapshot struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	OriginalPrice float64 `json:"original_price"`
}

// GetID returns the value of ID.
func (s *PaymentSnapshot) GetID() string {
	return s.ID
}

// GetStatus returns the value of Status.
func (s *PaymentSnapshot) GetStatus() string {
	return s.Status
}

// GetMethod returns the value of Method.
func (s *PaymentSnapshot) GetMethod() string {
	return s.Method
}

// GetOriginalPrice returns the value of OriginalPrice.
func (s *PaymentSnapshot) GetOriginalPrice() float64 {
	return s.OriginalPrice
}

// SetID sets the value of ID.
func (s *PaymentSnapshot) SetID(val string) {
	s.ID = val
}

// SetStatus sets the value of Status.
func (s *PaymentSnapshot) SetStatus(val string) {
	s.Status = val
}

// SetMethod sets the value of Method.
func (s *PaymentSnapshot) SetMethod(val string) {
	s.Method = val
}

// SetOriginalPrice sets the value of OriginalPrice.
func (s *PaymentSnapshot) SetOriginalPrice(val float64) {
	s.OriginalPrice = val
}

// Ref: #/components/schemas/PlaceOrderRequest
type PlaceOrderRequest struct {
	Items             []ItemRequest   `json:"items"`
	ShippingAddressID OptString       `json:"shipping_address_id"`
	Payment           OptPaymentInput `json:"payment"`
	CouponCode        OptString       `json:"coupon_code"`
}

// GetItems returns the value of Items.
func (s *PlaceOrderRequest) GetItems() []ItemRequest {
	return s.Items
}

// GetShippingAddressID returns the value of ShippingAddressID.
func (s *PlaceOrderRequest) GetShippingAddressID() OptString {
	return s.ShippingAddressID
}

// GetPayment returns the value of Payment.
func (s *PlaceOrderRequest) GetPayment() OptPaymentInput {
	return s.Payment
}

// GetCouponCode returns the value of CouponCode.
func (s *PlaceOrderRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// SetItems sets the value of Items.
func (s *PlaceOrderRequest) SetItems(val []ItemRequest) {
	s.Items = val
}

// SetShippingAddressID sets the value of ShippingAddressID.
func (s *PlaceOrderRequest) SetShippingAddressID(val OptString) {
	s.ShippingAddressID = val
}

// SetPayment sets the value of Payment.
func (s *PlaceOrderRequest) SetPayment(val OptPaymentInput) {
	s.Payment = val
}

// SetCouponCode sets the value of CouponCode.
func (s *PlaceOrderRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// Ref: #/components/schemas/Product
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	StockQuantity int     `json:"stock_quantity"`
	SoldCount     int     `json:"sold_count"`
}

// GetID returns the value of ID.
func (s *Product) GetID() string {
	return s.ID
}

// GetName returns the value of Name.
func (s *Product) GetName() string {
	return s.Name
}

// GetPrice returns the value of Price.
func (s *Product) GetPrice() float64 {
	return s.Price
}

// GetImage returns the value of Image.
func (s *Product) GetImage() string {
	return s.Image
}

// GetStockQuantity returns the value of StockQuantity.
func (s *Product) GetStockQuantity() int {
	return s.StockQuantity
}

// GetSoldCount returns the value of SoldCount.
func (s *Product) GetSoldCount() int {
	return s.SoldCount
}

// SetID sets the value of ID.
func (s *Product) SetID(val string) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Product) SetName(val string) {
	s.Name = val
}

// SetPrice sets the value of Price.
func (s *Product) SetPrice(val float64) {
	s.Price = val
}

// SetImage sets the value of Image.
func (s *Product) SetImage(val string) {
	s.Image = val
}

// SetStockQuantity sets the value of StockQuantity.
func (s *Product) SetStockQuantity(val int) {
	s.StockQuantity = val
}

// SetSoldCount sets the value of SoldCount.
func (s *Product) SetSoldCount(val int) {
	s.SoldCount = val
}

// Ref: #/components/schemas/ProductListResponse
type ProductListResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    []Product `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *ProductListResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *ProductListResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *ProductListResponse) GetData() []Product {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *ProductListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *ProductListResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *ProductListResponse) SetData(val []Product) {
	s.Data = val
}

// Ref: #/components/schemas/ProductResponse
type ProductResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    Product `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *ProductResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *ProductResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *ProductResponse) GetData() Product {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *ProductResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *ProductResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *ProductResponse) SetData(val Product) {
	s.Data = val
}

// Ref: #/components/schemas/Quote
type Quote struct {
	BasePrice            float64   `json:"base_price"`
	CouponDiscount       float64   `json:"coupon_discount"`
	CouponCode           OptString `json:"coupon_code"`
	SubscriptionDiscount float64   `json:"subscription_discount"`
	SubscriptionApplied  bool      `json:"subscription_applied"`
	FinalPrice           float64   `json:"final_price"`
}

// GetBasePrice returns the value of BasePrice.
func (s *Quote) GetBasePrice() float64 {
	return s.BasePrice
}

// GetCouponDiscount returns the value of CouponDiscount.
func (s *Quote) GetCouponDiscount() float64 {
	return s.CouponDiscount
}

// GetCouponCode returns the value of CouponCode.
func (s *Quote) GetCouponCode() OptString {
	return s.CouponCode
}

// GetSubscriptionDiscount returns the value of SubscriptionDiscount.
func (s *Quote) GetSubscriptionDiscount() float64 {
	return s.SubscriptionDiscount
}

// GetSubscriptionApplied returns the value of SubscriptionApplied.
func (s *Quote) GetSubscriptionApplied() bool {
	return s.SubscriptionApplied
}

// GetFinalPrice returns the value of FinalPrice.
func (s *Quote) GetFinalPrice() float64 {
	return s.FinalPrice
}

// SetBasePrice sets the value of BasePrice.
func (s *Quote) SetBasePrice(val float64) {
	s.BasePrice = val
}

// SetCouponDiscount sets the value of CouponDiscount.
func (s *Quote) SetCouponDiscount(val float64) {
	s.CouponDiscount = val
}

// SetCouponCode sets the value of CouponCode.
func (s *Quote) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetSubscriptionDiscount sets the value of SubscriptionDiscount.
func (s *Quote) SetSubscriptionDiscount(val float64) {
	s.SubscriptionDiscount = val
}

// SetSubscriptionApplied sets the value of SubscriptionApplied.
func (s *Quote) SetSubscriptionApplied(val bool) {
	s.SubscriptionApplied = val
}

// SetFinalPrice sets the value of FinalPrice.
func (s *Quote) SetFinalPrice(val float64) {
	s.FinalPrice = val
}

// Ref: #/components/schemas/QuoteRequest
type QuoteRequest struct {
	Items      []ItemRequest `json:"items"`
	CouponCode OptString     `json:"coupon_code"`
}

// GetItems returns the value of Items.
func (s *QuoteRequest) GetItems() []ItemRequest {
	return s.Items
}

// GetCouponCode returns the value of CouponCode.
func (s *QuoteRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// SetItems sets the value of Items.
func (s *QuoteRequest) SetItems(val []ItemRequest) {
	s.Items = val
}

// SetCouponCode sets the value of CouponCode.
func (s *QuoteRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// Ref: #/components/schemas/QuoteResponse
type QuoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Quote  `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *QuoteResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *QuoteResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *QuoteResponse) GetData() Quote {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *QuoteResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *QuoteResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *QuoteResponse) SetData(val Quote) {
	s.Data = val
}

// Ref: #/components/schemas/ReplayedOrderResponse
type ReplayedOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Order  `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *ReplayedOrderResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *ReplayedOrderResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *ReplayedOrderResponse) GetData() Order {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *ReplayedOrderResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *ReplayedOrderResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *ReplayedOrderResponse) SetData(val Order) {
	s.Data = val
}

func (*ReplayedOrderResponse) placeOrderRes() {}

// Ref: #/components/schemas/Return
type Return struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	OrderID         string       `json:"order_id"`
	ProductID       string       `json:"product_id"`
	Quantity        int          `json:"quantity"`
	Status          ReturnStatus `json:"status"`
	RejectionReason OptString    `json:"rejection_reason"`
	Received        bool         `json:"received"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// GetID returns the value of ID.
func (s *Return) GetID() string {
	return s.ID
}

// GetUserID returns the value of UserID.
func (s *Return) GetUserID() string {
	return s.UserID
}

// GetOrderID returns the value of OrderID.
func (s *Return) GetOrderID() string {
	return s.OrderID
}

// GetProductID returns the value of ProductID.
func (s *Return) GetProductID() string {
	return s.ProductID
}

// GetQuantity returns the value of Quantity.
func (s *Return) GetQuantity() int {
	return s.Quantity
}

// GetStatus returns the value of Status.
func (s *Return) GetStatus() ReturnStatus {
	return s.Status
}

// GetRejectionReason returns the value of RejectionReason.
func (s *Return) GetRejectionReason() OptString {
	return s.RejectionReason
}

// GetReceived returns the value of Received.
func (s *Return) GetReceived() bool {
	return s.Received
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Return) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Return) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Return) SetID(val string) {
	s.ID = val
}

// SetUserID sets the value of UserID.
func (s *Return) SetUserID(val string) {
	s.UserID = val
}

// SetOrderID sets the value of OrderID.
func (s *Return) SetOrderID(val string) {
	s.OrderID = val
}

// SetProductID sets the value of ProductID.
func (s *Return) SetProductID(val string) {
	s.ProductID = val
}

// SetQuantity sets the value of Quantity.
func (s *Return) SetQuantity(val int) {
	s.Quantity = val
}

// SetStatus sets the value of Status.
func (s *Return) SetStatus(val ReturnStatus) {
	s.Status = val
}

// SetRejectionReason sets the value of RejectionReason.
func (s *Return) SetRejectionReason(val OptString) {
	s.RejectionReason = val
}

// SetReceived sets the value of Received.
func (s *Return) SetReceived(val bool) {
	s.Received = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Return) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Return) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/ReturnListResponse
type ReturnListResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    []Return `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *ReturnListResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *ReturnListResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *ReturnListResponse) GetData() []Return {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *ReturnListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *ReturnListResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *ReturnListResponse) SetData(val []Return) {
	s.Data = val
}

// Ref: #/components/schemas/ReturnRequest
type ReturnRequest struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// GetOrderID returns the value of OrderID.
func (s *ReturnRequest) GetOrderID() string {
	return s.OrderID
}

// GetProductID returns the value of ProductID.
func (s *ReturnRequest) GetProductID() string {
	return s.ProductID
}

// GetQuantity returns the value of Quantity.
func (s *ReturnRequest) GetQuantity() int {
	return s.Quantity
}

// SetOrderID sets the value of OrderID.
func (s *ReturnRequest) SetOrderID(val string) {
	s.OrderID = val
}

// SetProductID sets the value of ProductID.
func (s *ReturnRequest) SetProductID(val string) {
	s.ProductID = val
}

// SetQuantity sets the value of Quantity.
func (s *ReturnRequest) SetQuantity(val int) {
	s.Quantity = val
}

// Ref: #/components/schemas/ReturnResponse
type ReturnResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Return `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *ReturnResponse) GetSuccess() bool {
	return s.Success
}

// GetMessage returns the value of Message.
func (s *ReturnResponse) GetMessage() string {
	return s.Message
}

// GetData returns the value of Data.
func (s *ReturnResponse) GetData() Return {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *ReturnResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetMessage sets the value of Message.
func (s *ReturnResponse) SetMessage(val string) {
	s.Message = val
}

// SetData sets the value of Data.
func (s *ReturnResponse) SetData(val Return) {
	s.Data = val
}

// Ref: #/components/schemas/ReturnStatus
type ReturnStatus string

const (
	ReturnStatusPending        ReturnStatus = "pending"
	ReturnStatusApproved       ReturnStatus = "approved"
	ReturnStatusReturnRejected ReturnStatus = "return_rejected"
)

// AllValues returns all ReturnStatus values.
func (ReturnStatus) AllValues() []ReturnStatus {
	return []ReturnStatus{
		ReturnStatusPending,
		ReturnStatusApproved,
		ReturnStatusReturnRejected,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ReturnStatus) MarshalText() ([]byte, error) {
	switch s {
	case ReturnStatusPending:
		return []byte(s), nil
	case ReturnStatusApproved:
		return []byte(s), nil
	case ReturnStatusReturnRejected:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ReturnStatus) UnmarshalText(data []byte) error {
	switch ReturnStatus(data) {
	case ReturnStatusPending:
		*s = ReturnStatusPending
		return nil
	case ReturnStatusApproved:
		*s = ReturnStatusApproved
		return nil
	case ReturnStatusReturnRejected:
		*s = ReturnStatusReturnRejected
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/ReturnStatusUpdate
type ReturnStatusUpdate struct {
	Status          ReturnStatus `json:"status"`
	RejectionReason OptString    `json:"rejection_reason"`
}

// GetStatus returns the value of Status.
func (s *ReturnStatusUpdate) GetStatus() ReturnStatus {
	return s.Status
}

// GetRejectionReason returns the value of RejectionReason.
func (s *ReturnStatusUpdate) GetRejectionReason() OptString {
	return s.RejectionReason
}

// SetStatus sets the value of Status.
func (s *ReturnStatusUpdate) SetStatus(val ReturnStatus) {
	s.Status = val
}

// SetRejectionReason sets the value of RejectionReason.
func (s *ReturnStatusUpdate) SetRejectionReason(val OptString) {
	s.RejectionReason = val
}

// Ref: #/components/schemas/SubscriptionDiscount
type SubscriptionDiscount struct {
	Applied          bool    `json:"applied"`
	Amount           float64 `json:"amount"`
	SubscriptionCost float64 `json:"subscription_cost"`
}

// GetApplied returns the value of Applied.
func (s *SubscriptionDiscount) GetApplied() bool {
	return s.Applied
}

// GetAmount returns the value of Amount.
func (s *SubscriptionDiscount) GetAmount() float64 {
	return s.Amount
}

// GetSubscriptionCost returns the value of SubscriptionCost.
func (s *SubscriptionDiscount) GetSubscriptionCost() float64 {
	return s.SubscriptionCost
}

// SetApplied sets the value of Applied.
func (s *SubscriptionDiscount) SetApplied(val bool) {
	s.Applied = val
}

// SetAmount sets the value of Amount.
func (s *SubscriptionDiscount) SetAmount(val float64) {
	s.Amount = val
}

// SetSubscriptionCost sets the value of SubscriptionCost.
func (s *SubscriptionDiscount) SetSubscriptionCost(val float64) {
	s.SubscriptionCost = val
}

type UserID struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *UserID) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *UserID) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *UserID) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *UserID) SetRoles(val []string) {
	s.Roles = val
}
