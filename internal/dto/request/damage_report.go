package request

type CreateDamageReportRequest struct {
	VehicleID     string   `json:"vehicle_id" validate:"required,uuid4"`
	Description   string   `json:"description" validate:"required,min=5,max=2000"`
	Images        []string `json:"images,omitempty"`
	Severity      *string  `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty" validate:"omitempty,gt=0"`
}

type UpdateDamageReportStatusRequest struct {
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=OPEN INVESTIGATING ESTIMATED RESOLVED PAID"`
	Severity      *string  `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty" validate:"omitempty,gt=0"`
}

type PayDamageReportRequest struct {
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required,max=100"`
}
