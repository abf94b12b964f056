package entity

import (
	"github.com/google/uuid"
)

type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "ACTIVE"
	DriverStatusOnTrip   DriverStatus = "ON_TRIP"
	DriverStatusInactive DriverStatus = "INACTIVE"
)

func ParseDriverStatus(s string) (DriverStatus, bool) {
	switch DriverStatus(s) {
	case DriverStatusActive, DriverStatusOnTrip, DriverStatusInactive:
		return DriverStatus(s), true
	}
	return "", false
}

// DriverProfile is keyed by the user it belongs to (one profile per DRIVER
// user). Contact fields are denormalized from the user row so driver listings
// render without a join.
type DriverProfile struct {
	UserID        uuid.UUID         `db:"user_id"`
	FullName      string            `db:"full_name"`
	Email         string            `db:"email"`
	Phone         *string           `db:"phone"`
	City          *string           `db:"city"`
	AvatarURL     *string           `db:"avatar_url"`
	LicenseNumber string            `db:"license_number"`
	Rating        float64           `db:"rating"`
	Status        DriverStatus      `db:"status"`
	Documents     map[string]string `db:"documents"`
}
