package response

import (
	"time"

	"wheelio-backend/internal/data/entity"
)

type BookingResponse struct {
	ID             string                 `json:"id"`
	UserID         string                 `json:"user_id"`
	UserName       string                 `json:"user_name"`
	VehicleID      string                 `json:"vehicle_id"`
	Vehicle        entity.VehicleSnapshot `json:"vehicle"`
	DriverID       *string                `json:"driver_id,omitempty"`
	StartDate      time.Time              `json:"start_date"`
	EndDate        time.Time              `json:"end_date"`
	TotalAmount    float64                `json:"total_amount"`
	PickupLocation string                 `json:"pickup_location"`
	DropLocation   string                 `json:"drop_location"`
	ContactPhone   string                 `json:"contact_phone"`
	Status         entity.BookingStatus   `json:"status"`
	PaymentStatus  entity.PaymentStatus   `json:"payment_status"`
	CreatedAt      time.Time              `json:"created_at"`
}

type AvailabilityResponse struct {
	VehicleID string `json:"vehicle_id"`
	Available bool   `json:"available"`
}

// BookedDateResponse is one occupied interval on a vehicle's calendar.
type BookedDateResponse struct {
	StartDate time.Time            `json:"start_date"`
	EndDate   time.Time            `json:"end_date"`
	Status    entity.BookingStatus `json:"status"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:             booking.ID.String(),
		UserID:         booking.UserID.String(),
		UserName:       booking.UserName,
		VehicleID:      booking.VehicleID.String(),
		Vehicle:        booking.VehicleSnapshot,
		StartDate:      booking.StartDate,
		EndDate:        booking.EndDate,
		TotalAmount:    booking.TotalAmount,
		PickupLocation: booking.PickupLocation,
		DropLocation:   booking.DropLocation,
		ContactPhone:   booking.ContactPhone,
		Status:         booking.Status,
		PaymentStatus:  booking.PaymentStatus,
		CreatedAt:      booking.CreatedAt,
	}

	if booking.DriverID != nil {
		driverID := booking.DriverID.String()
		resp.DriverID = &driverID
	}

	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, BookingToResponse(booking))
	}
	return result
}
