package response

import (
	"time"

	"wheelio-backend/internal/data/entity"
)

type PaymentResponse struct {
	ID               string    `json:"id"`
	BookingID        string    `json:"booking_id"`
	GatewayPaymentID string    `json:"gateway_payment_id"`
	GatewayOrderID   *string   `json:"gateway_order_id,omitempty"`
	Method           *string   `json:"method,omitempty"`
	Amount           float64   `json:"amount"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// OrderResponse carries what the checkout widget needs to open a payment.
type OrderResponse struct {
	OrderID  string  `json:"order_id"`
	KeyID    string  `json:"key_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type VerifyPaymentResponse struct {
	Valid            bool   `json:"valid"`
	Recorded         bool   `json:"recorded"`
	GatewayPaymentID string `json:"gateway_payment_id"`
}

// Helper converters
func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               payment.ID.String(),
		BookingID:        payment.BookingID.String(),
		GatewayPaymentID: payment.GatewayPaymentID,
		GatewayOrderID:   payment.GatewayOrderID,
		Method:           payment.Method,
		Amount:           payment.Amount,
		Status:           payment.Status,
		CreatedAt:        payment.CreatedAt,
	}
}

func PaymentsToResponse(payments []*entity.Payment) []PaymentResponse {
	result := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		result = append(result, PaymentToResponse(payment))
	}
	return result
}
