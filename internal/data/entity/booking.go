package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// IsActive reports whether a booking in this status occupies its vehicle.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// CanTransitionTo validates the booking lifecycle:
// PENDING -> CONFIRMED -> COMPLETED, any non-terminal state -> CANCELLED.
// Repeating the current status is allowed so transitions stay idempotent.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		// COMPLETED and CANCELLED are terminal
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return PaymentStatus(s), true
	}
	return "", false
}

// VehicleSnapshot is the vehicle's display data copied into a booking at
// creation time, so booking history stays stable when the vehicle is later
// renamed, repriced or deleted.
type VehicleSnapshot struct {
	VehicleID   uuid.UUID   `json:"vehicle_id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Type        VehicleType `json:"type"`
	ImageURL    *string     `json:"image_url,omitempty"`
	PricePerDay float64     `json:"price_per_day"`
	Location    string      `json:"location"`
}

type Booking struct {
	BaseSimple
	UserID          uuid.UUID       `db:"user_id"`
	UserName        string          `db:"user_name"`
	VehicleID       uuid.UUID       `db:"vehicle_id"`
	VehicleSnapshot VehicleSnapshot `db:"vehicle_snapshot"`
	DriverID        *uuid.UUID      `db:"driver_id"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
	TotalAmount     float64         `db:"total_amount"`
	PickupLocation  string          `db:"pickup_location"`
	DropLocation    string          `db:"drop_location"`
	ContactPhone    string          `db:"contact_phone"`
	Status          BookingStatus   `db:"status"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`
}

// IntervalsOverlap applies the half-open interval test: [s1,e1) and [s2,e2)
// overlap iff s1 < e2 && s2 < e1. Touching endpoints do not overlap.
func IntervalsOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Overlaps reports whether the booking's interval intersects [start,end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(b.StartDate, b.EndDate, start, end)
}
