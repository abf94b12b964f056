package usecase

import (
	"context"
	"testing"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateBooking(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	user := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	booking, err := service.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01T10:00",
		EndDate:        "2026-03-05T10:00",
		TotalAmount:    10000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status, "payment is captured up front")
	assert.Equal(t, entity.PaymentStatusPaid, booking.PaymentStatus)
	assert.Equal(t, user.FullName, booking.UserName)
	assert.Equal(t, vehicle.Name, booking.Vehicle.Name)
	assert.Equal(t, vehicle.PricePerDay, booking.Vehicle.PricePerDay)

	stored, err := repo.Vehicle.FindByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleStatusBooked, stored.Status, "vehicle should flip to BOOKED")
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	alice := seedUser(repo, "alice")
	bob := seedUser(repo, "bob")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	first := &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-10",
		TotalAmount:    10000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	}
	_, err := service.CreateBooking(ctx, alice.ID, first)
	require.NoError(t, err)

	// Overlapping interval on the same vehicle is rejected.
	overlapping := *first
	overlapping.StartDate = "2026-03-05"
	overlapping.EndDate = "2026-03-12"
	_, err = service.CreateBooking(ctx, bob.ID, &overlapping)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// A back-to-back interval starting exactly at the previous end is fine.
	touching := *first
	touching.StartDate = "2026-03-10"
	touching.EndDate = "2026-03-15"
	_, err = service.CreateBooking(ctx, bob.ID, &touching)
	assert.NoError(t, err)
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	user := seedUser(repo, "alice")

	_, err := service.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
		VehicleID:      uuid.NewString(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation, "a request referencing an unknown vehicle is a bad request")

	// Nothing was written.
	bookings, err := repo.Booking.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	user := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	base := request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	}

	malformed := base
	malformed.StartDate = "03/01/2026"
	malformed.EndDate = "2026-03-05"
	_, err := service.CreateBooking(ctx, user.ID, &malformed)
	assert.ErrorIs(t, err, ErrValidation)

	inverted := base
	inverted.StartDate = "2026-03-05"
	inverted.EndDate = "2026-03-01"
	_, err = service.CreateBooking(ctx, user.ID, &inverted)
	assert.ErrorIs(t, err, ErrValidation)

	empty := base
	empty.StartDate = "2026-03-01"
	empty.EndDate = "2026-03-01"
	_, err = service.CreateBooking(ctx, user.ID, &empty)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBookingMaintenanceVehicle(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	user := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusMaintenance)

	_, err := service.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	user := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	booking, err := service.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	// Repeating the current status is idempotent.
	confirmed, err := service.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: stringPtr("CONFIRMED")})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)

	// Completion releases the vehicle.
	completed, err := service.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: stringPtr("COMPLETED")})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, completed.Status)

	stored, err := repo.Vehicle.FindByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleStatusAvailable, stored.Status, "vehicle released after completion")

	// Terminal states reject further moves.
	_, err = service.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: stringPtr("PENDING")})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateStatusPaymentOnly(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	user := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	booking, err := service.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	require.NoError(t, service.CancelBooking(ctx, booking.ID, user.ID, string(entity.RoleUser)))

	// Refunding a cancelled booking only touches the payment side.
	updated, err := service.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{
		PaymentStatus: stringPtr("REFUNDED"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, updated.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, updated.PaymentStatus)

	// A body carrying neither field has nothing to apply.
	_, err = service.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	user := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	booking, err := service.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	// There is no edge back into PENDING.
	_, err = service.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: stringPtr("PENDING")})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCancelBooking(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	alice := seedUser(repo, "alice")
	mallory := seedUser(repo, "mallory")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	booking, err := service.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	// Someone else's booking cannot be cancelled by a plain user.
	err = service.CancelBooking(ctx, booking.ID, mallory.ID, string(entity.RoleUser))
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = service.CancelBooking(ctx, booking.ID, alice.ID, string(entity.RoleUser))
	require.NoError(t, err)

	stored, err := repo.Booking.FindByID(ctx, uuid.MustParse(booking.ID))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)

	vehicleRow, err := repo.Vehicle.FindByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleStatusAvailable, vehicleRow.Status, "vehicle released after cancellation")
}

func TestGetBookedDatesOnlyActive(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	alice := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	first, err := service.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	_, err = service.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-10",
		EndDate:        "2026-03-15",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	require.NoError(t, service.CancelBooking(ctx, first.ID, alice.ID, string(entity.RoleUser)))

	dates, err := service.GetBookedDates(ctx, vehicle.ID.String())
	require.NoError(t, err)
	require.Len(t, dates, 1, "cancelled interval should not appear on the calendar")
	assert.Equal(t, entity.BookingStatusConfirmed, dates[0].Status, "each interval carries its booking status")
}

func TestCheckAvailability(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, newTestMailer(), zap.NewNop())
	ctx := context.Background()

	alice := seedUser(repo, "alice")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	_, err := service.CreateBooking(ctx, alice.ID, &request.CreateBookingRequest{
		VehicleID:      vehicle.ID.String(),
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
		TotalAmount:    5000,
		PickupLocation: "Airport",
		DropLocation:   "Downtown",
		ContactPhone:   "+919876543210",
	})
	require.NoError(t, err)

	occupied, err := service.CheckAvailability(ctx, &request.CheckAvailabilityRequest{
		VehicleID: vehicle.ID.String(),
		StartDate: "2026-03-03",
		EndDate:   "2026-03-08",
	})
	require.NoError(t, err)
	assert.False(t, occupied.Available)

	free, err := service.CheckAvailability(ctx, &request.CheckAvailabilityRequest{
		VehicleID: vehicle.ID.String(),
		StartDate: "2026-03-05",
		EndDate:   "2026-03-08",
	})
	require.NoError(t, err)
	assert.True(t, free.Available)
}
