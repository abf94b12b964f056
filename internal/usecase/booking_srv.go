package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/dto/request"
	"wheelio-backend/internal/dto/response"
	"wheelio-backend/pkg/mailer"
	"wheelio-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error)
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetAllBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	GetDriverBookings(ctx context.Context, driverID uuid.UUID) ([]response.BookingResponse, error)
	GetVehicleBookings(ctx context.Context, vehicleID string) ([]response.BookingResponse, error)
	GetBookedDates(ctx context.Context, vehicleID string) ([]response.BookedDateResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string, callerID uuid.UUID, callerRole string) error
}

type bookingService struct {
	repo *repository.Repository
	mail *mailer.Mailer
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, mail *mailer.Mailer, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "booking")),
	}
}

// parseBookingDates parses the flexible client date formats and enforces
// start < end.
func parseBookingDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := utils.ParseFlexibleTime(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start date: %v", ErrValidation, err)
	}

	end, err := utils.ParseFlexibleTime(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end date: %v", ErrValidation, err)
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date must be before end date", ErrValidation)
	}

	return start, end, nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, req.VehicleID)
	}

	start, end, err := parseBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, req.VehicleID)
	}

	occupied, err := s.repo.Booking.ExistsActiveOverlap(ctx, vehicleID, start, end)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	return &response.AvailabilityResponse{
		VehicleID: req.VehicleID,
		Available: !occupied && vehicle.Status != entity.VehicleStatusMaintenance,
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, req.VehicleID)
	}

	var driverID *uuid.UUID
	if req.DriverID != nil {
		parsed, err := uuid.Parse(*req.DriverID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid driver ID %s", ErrValidation, *req.DriverID)
		}
		driverID = &parsed
	}

	start, end, err := parseBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// A booking request pointing at a user or vehicle that does not exist is
	// a bad request, not a miss on a lookup endpoint.
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown user %s", ErrValidation, userID.String())
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: unknown vehicle %s", ErrValidation, req.VehicleID)
	}
	if vehicle.Status == entity.VehicleStatusMaintenance {
		return nil, fmt.Errorf("%w: vehicle %s is under maintenance", ErrConflict, req.VehicleID)
	}

	if driverID != nil {
		driver, err := s.repo.Driver.FindByUserID(ctx, *driverID)
		if err != nil {
			return nil, fmt.Errorf("find driver: %w", err)
		}
		if driver == nil {
			return nil, fmt.Errorf("%w: unknown driver %s", ErrValidation, *req.DriverID)
		}
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   userID,
		UserName: user.FullName,

		VehicleID: vehicleID,
		VehicleSnapshot: entity.VehicleSnapshot{
			VehicleID:   vehicle.ID,
			Name:        vehicle.Name,
			Brand:       vehicle.Brand,
			Type:        vehicle.Type,
			ImageURL:    vehicle.ImageURL,
			PricePerDay: vehicle.PricePerDay,
			Location:    vehicle.Location,
		},

		DriverID:       driverID,
		StartDate:      start,
		EndDate:        end,
		TotalAmount:    req.TotalAmount,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		ContactPhone:   req.ContactPhone,
		// Payment is captured before the booking request is made, so the
		// happy path lands directly in CONFIRMED/PAID.
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	if err := s.repo.Booking.CreateIfAvailable(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrVehicleMissing):
			return nil, fmt.Errorf("%w: unknown vehicle %s", ErrValidation, req.VehicleID)
		case errors.Is(err, repository.ErrIntervalConflict):
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		default:
			return nil, fmt.Errorf("create booking: %w", err)
		}
	}

	s.sendConfirmationEmail(ctx, booking)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("vehicle_id", vehicleID.String()),
		zap.Time("start", start),
		zap.Time("end", end))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetDriverBookings(ctx context.Context, driverID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByDriverID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list driver bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetVehicleBookings(ctx context.Context, vehicleID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, vehicleID)
	}

	bookings, err := s.repo.Booking.FindByVehicleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list vehicle bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookedDates(ctx context.Context, vehicleID string) ([]response.BookedDateResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, vehicleID)
	}

	bookings, err := s.repo.Booking.FindActiveByVehicleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list booked dates: %w", err)
	}

	dates := make([]response.BookedDateResponse, 0, len(bookings))
	for _, booking := range bookings {
		dates = append(dates, response.BookedDateResponse{
			StartDate: booking.StartDate,
			EndDate:   booking.EndDate,
			Status:    booking.Status,
		})
	}

	return dates, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	if req.Status == nil && req.PaymentStatus == nil {
		return nil, fmt.Errorf("%w: status or payment_status is required", ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	previous := booking.Status

	// Either field may arrive alone. A payment-status-only body leaves the
	// booking state machine untouched.
	if req.Status != nil {
		next, ok := entity.ParseBookingStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown booking status %s", ErrValidation, *req.Status)
		}
		if !booking.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: cannot move booking from %s to %s", ErrConflict, booking.Status, next)
		}
		booking.Status = next
	}

	if req.PaymentStatus != nil {
		paymentStatus, ok := entity.ParsePaymentStatus(*req.PaymentStatus)
		if !ok {
			return nil, fmt.Errorf("%w: unknown payment status %s", ErrValidation, *req.PaymentStatus)
		}
		booking.PaymentStatus = paymentStatus
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if previous.IsActive() && !booking.Status.IsActive() {
		s.releaseVehicleIfIdle(ctx, booking.VehicleID)
	}

	if previous != entity.BookingStatusConfirmed && booking.Status == entity.BookingStatusConfirmed {
		s.sendConfirmationEmail(ctx, booking)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(previous)),
		zap.String("to", string(booking.Status)))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, callerID uuid.UUID, callerRole string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if booking.UserID != callerID && callerRole != string(entity.RoleAdmin) {
		return fmt.Errorf("%w: booking %s belongs to another user", ErrUnauthorized, bookingID)
	}

	if !booking.Status.CanTransitionTo(entity.BookingStatusCancelled) {
		return fmt.Errorf("%w: cannot cancel booking in status %s", ErrConflict, booking.Status)
	}

	wasActive := booking.Status.IsActive()
	booking.Status = entity.BookingStatusCancelled

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	if wasActive {
		s.releaseVehicleIfIdle(ctx, booking.VehicleID)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

// releaseVehicleIfIdle flips the vehicle back to AVAILABLE once no active
// booking references it. Failure here is logged and absorbed, the booking
// state change already committed.
func (s *bookingService) releaseVehicleIfIdle(ctx context.Context, vehicleID uuid.UUID) {
	active, err := s.repo.Booking.FindActiveByVehicleID(ctx, vehicleID)
	if err != nil {
		s.log.Error("Failed to check active bookings for release",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()))
		return
	}
	if len(active) > 0 {
		return
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil || vehicle == nil {
		// Vehicle may have been removed from the fleet.
		return
	}
	if vehicle.Status != entity.VehicleStatusBooked {
		return
	}

	if err := s.repo.Vehicle.UpdateStatus(ctx, vehicleID, entity.VehicleStatusAvailable); err != nil {
		s.log.Error("Failed to release vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()))
	}
}

func (s *bookingService) sendConfirmationEmail(ctx context.Context, booking *entity.Booking) {
	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil || user == nil {
		return
	}

	b := *booking
	email, name := user.Email, user.FullName
	go func() {
		if err := s.mail.SendBookingConfirmation(email, name, b.VehicleSnapshot.Name, b.StartDate, b.EndDate, b.TotalAmount); err != nil {
			s.log.Error("Failed to send booking confirmation email",
				zap.String("booking_id", b.ID.String()),
				zap.Error(err))
		}
	}()
}
