package entity

import (
	"github.com/google/uuid"
)

// Payment records a captured gateway payment for a booking. There is no
// pending-payment flow: the gateway confirms before the record is created,
// so status defaults to SUCCESS.
type Payment struct {
	BaseSimple
	BookingID        uuid.UUID `db:"booking_id"`
	GatewayPaymentID string    `db:"gateway_payment_id"`
	GatewayOrderID   *string   `db:"gateway_order_id"`
	GatewaySignature *string   `db:"gateway_signature"`
	Amount           float64   `db:"amount"`
	Method           *string   `db:"method"`
	Status           string    `db:"status"`
}

const PaymentRecordStatusSuccess = "SUCCESS"
