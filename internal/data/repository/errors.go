package repository

import "errors"

var (
	// ErrIntervalConflict is returned by BookingRepository.CreateIfAvailable
	// when another PENDING or CONFIRMED booking overlaps the requested
	// interval at commit time.
	ErrIntervalConflict = errors.New("vehicle is already booked for the selected period")

	// ErrVehicleMissing is returned when the booked vehicle row does not
	// exist inside the booking-creation transaction.
	ErrVehicleMissing = errors.New("vehicle not found")
)
