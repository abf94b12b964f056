package request

type CreateBookingRequest struct {
	VehicleID      string  `json:"vehicle_id" validate:"required,uuid4"`
	DriverID       *string `json:"driver_id,omitempty" validate:"omitempty,uuid4"`
	StartDate      string  `json:"start_date" validate:"required"`
	EndDate        string  `json:"end_date" validate:"required"`
	TotalAmount    float64 `json:"total_amount" validate:"required,gt=0"`
	PickupLocation string  `json:"pickup_location" validate:"required,max=200"`
	DropLocation   string  `json:"drop_location" validate:"required,max=200"`
	ContactPhone   string  `json:"contact_phone" validate:"required,min=7,max=20"`
}

type UpdateBookingStatusRequest struct {
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	PaymentStatus *string `json:"payment_status,omitempty" validate:"omitempty,oneof=PENDING PAID REFUNDED"`
}

type CheckAvailabilityRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}
