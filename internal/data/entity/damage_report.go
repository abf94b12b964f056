package entity

import (
	"github.com/google/uuid"
)

type DamageSeverity string

const (
	SeverityLow      DamageSeverity = "LOW"
	SeverityMedium   DamageSeverity = "MEDIUM"
	SeverityHigh     DamageSeverity = "HIGH"
	SeverityCritical DamageSeverity = "CRITICAL"
)

func ParseDamageSeverity(s string) (DamageSeverity, bool) {
	switch DamageSeverity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return DamageSeverity(s), true
	}
	return "", false
}

type DamageStatus string

const (
	DamageStatusOpen          DamageStatus = "OPEN"
	DamageStatusInvestigating DamageStatus = "INVESTIGATING"
	DamageStatusEstimated     DamageStatus = "ESTIMATED"
	DamageStatusResolved      DamageStatus = "RESOLVED"
	DamageStatusPaid          DamageStatus = "PAID"
)

func ParseDamageStatus(s string) (DamageStatus, bool) {
	switch DamageStatus(s) {
	case DamageStatusOpen, DamageStatusInvestigating, DamageStatusEstimated,
		DamageStatusResolved, DamageStatusPaid:
		return DamageStatus(s), true
	}
	return "", false
}

type DamageReport struct {
	BaseSimple
	VehicleID        uuid.UUID       `db:"vehicle_id"`
	VehicleName      string          `db:"vehicle_name"`
	ReportedByID     uuid.UUID       `db:"reported_by"`
	ReportedByName   string          `db:"reported_by_name"`
	Description      string          `db:"description"`
	Images           []string        `db:"images"`
	Severity         *DamageSeverity `db:"severity"`
	Status           DamageStatus    `db:"status"`
	EstimatedCost    *float64        `db:"estimated_cost"`
	GatewayPaymentID *string         `db:"gateway_payment_id"`
}
