package response

import (
	"time"

	"wheelio-backend/internal/data/entity"
)

type DamageReportResponse struct {
	ID               string                 `json:"id"`
	VehicleID        string                 `json:"vehicle_id"`
	VehicleName      string                 `json:"vehicle_name"`
	ReportedByID     string                 `json:"reported_by_id"`
	ReportedByName   string                 `json:"reported_by_name"`
	Description      string                 `json:"description"`
	Images           []string               `json:"images,omitempty"`
	Severity         *entity.DamageSeverity `json:"severity,omitempty"`
	Status           entity.DamageStatus    `json:"status"`
	EstimatedCost    *float64               `json:"estimated_cost,omitempty"`
	GatewayPaymentID *string                `json:"gateway_payment_id,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// Helper converters
func DamageReportToResponse(report *entity.DamageReport) DamageReportResponse {
	return DamageReportResponse{
		ID:               report.ID.String(),
		VehicleID:        report.VehicleID.String(),
		VehicleName:      report.VehicleName,
		ReportedByID:     report.ReportedByID.String(),
		ReportedByName:   report.ReportedByName,
		Description:      report.Description,
		Images:           report.Images,
		Severity:         report.Severity,
		Status:           report.Status,
		EstimatedCost:    report.EstimatedCost,
		GatewayPaymentID: report.GatewayPaymentID,
		CreatedAt:        report.CreatedAt,
	}
}

func DamageReportsToResponse(reports []*entity.DamageReport) []DamageReportResponse {
	result := make([]DamageReportResponse, 0, len(reports))
	for _, report := range reports {
		result = append(result, DamageReportToResponse(report))
	}
	return result
}
