package request

type CreateOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type RecordPaymentRequest struct {
	BookingID        string  `json:"booking_id" validate:"required,uuid4"`
	GatewayPaymentID string  `json:"gateway_payment_id" validate:"required,max=100"`
	GatewayOrderID   *string `json:"gateway_order_id,omitempty" validate:"omitempty,max=100"`
	GatewaySignature *string `json:"gateway_signature,omitempty" validate:"omitempty,max=200"`
	Method           *string `json:"method,omitempty" validate:"omitempty,max=50"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" validate:"required,max=100"`
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required,max=100"`
	GatewaySignature string `json:"gateway_signature" validate:"required,max=200"`
}
