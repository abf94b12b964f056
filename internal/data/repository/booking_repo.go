package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateIfAvailable inserts the booking and flips the vehicle to BOOKED
	// in one transaction. The vehicle row is locked for the duration, so two
	// concurrent creates for the same vehicle serialize and the loser of an
	// overlapping pair gets ErrIntervalConflict.
	CreateIfAvailable(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error)
	FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*entity.Booking, error)
	FindActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error)
	ExistsActiveOverlap(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) (bool, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, user_name, vehicle_id, vehicle_snapshot, driver_id,
	start_date, end_date, total_amount, pickup_location, drop_location, contact_phone,
	status, payment_status, created_at`

// Half-open interval overlap: [s1,e1) and [s2,e2) overlap iff s1 < e2 AND s2 < e1.
const activeOverlapCondition = `vehicle_id = $1
	  AND status IN ('PENDING', 'CONFIRMED')
	  AND start_date < $3 AND $2 < end_date`

func (r *bookingRepository) scanBooking(row rowScanner) (*entity.Booking, error) {
	var booking entity.Booking
	var snapshot []byte
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserName,
		&booking.VehicleID,
		&snapshot,
		&booking.DriverID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalAmount,
		&booking.PickupLocation,
		&booking.DropLocation,
		&booking.ContactPhone,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &booking.VehicleSnapshot); err != nil {
			return nil, fmt.Errorf("decode vehicle snapshot: %w", err)
		}
	}
	return &booking, nil
}

func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the vehicle row. Every booking for this vehicle passes through
	// here, so the availability check below cannot race another create.
	var vehicleStatus entity.VehicleStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM vehicles WHERE id = $1 FOR UPDATE`,
		booking.VehicleID,
	).Scan(&vehicleStatus)
	if err == pgx.ErrNoRows {
		return ErrVehicleMissing
	}
	if err != nil {
		r.log.Error("Failed to lock vehicle row",
			zap.Error(err),
			zap.String("vehicle_id", booking.VehicleID.String()),
		)
		return fmt.Errorf("lock vehicle %s: %w", booking.VehicleID.String(), err)
	}

	var overlaps bool
	err = tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM bookings WHERE %s)`, activeOverlapCondition),
		booking.VehicleID, booking.StartDate, booking.EndDate,
	).Scan(&overlaps)
	if err != nil {
		r.log.Error("Failed to check interval overlap",
			zap.Error(err),
			zap.String("vehicle_id", booking.VehicleID.String()),
		)
		return fmt.Errorf("check interval overlap for vehicle %s: %w", booking.VehicleID.String(), err)
	}
	if overlaps {
		return ErrIntervalConflict
	}

	snapshot, err := json.Marshal(booking.VehicleSnapshot)
	if err != nil {
		return fmt.Errorf("encode vehicle snapshot: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, user_id, user_name, vehicle_id, vehicle_snapshot, driver_id,
		                      start_date, end_date, total_amount, pickup_location, drop_location,
		                      contact_phone, status, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		booking.ID,
		booking.UserID,
		booking.UserName,
		booking.VehicleID,
		snapshot,
		booking.DriverID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalAmount,
		booking.PickupLocation,
		booking.DropLocation,
		booking.ContactPhone,
		booking.Status,
		booking.PaymentStatus,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE vehicles SET status = $2 WHERE id = $1`,
		booking.VehicleID, entity.VehicleStatusBooked,
	)
	if err != nil {
		r.log.Error("Failed to mark vehicle booked",
			zap.Error(err),
			zap.String("vehicle_id", booking.VehicleID.String()),
		)
		return fmt.Errorf("mark vehicle %s booked: %w", booking.VehicleID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY created_at DESC`, bookingColumns)

	bookings, err := r.findMany(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, bookingColumns)

	bookings, err := r.findMany(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE vehicle_id = $1 ORDER BY created_at`, bookingColumns)

	bookings, err := r.findMany(ctx, query, vehicleID)
	if err != nil {
		r.log.Error("Failed to find bookings by vehicle ID",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil, fmt.Errorf("find bookings by vehicle ID %s: %w", vehicleID.String(), err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE driver_id = $1 ORDER BY created_at DESC`, bookingColumns)

	bookings, err := r.findMany(ctx, query, driverID)
	if err != nil {
		r.log.Error("Failed to find bookings by driver ID",
			zap.Error(err),
			zap.String("driver_id", driverID.String()),
		)
		return nil, fmt.Errorf("find bookings by driver ID %s: %w", driverID.String(), err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE vehicle_id = $1 AND status IN ('PENDING', 'CONFIRMED')
		ORDER BY start_date
	`, bookingColumns)

	bookings, err := r.findMany(ctx, query, vehicleID)
	if err != nil {
		r.log.Error("Failed to find active bookings by vehicle ID",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil, fmt.Errorf("find active bookings by vehicle ID %s: %w", vehicleID.String(), err)
	}
	return bookings, nil
}

func (r *bookingRepository) ExistsActiveOverlap(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM bookings WHERE %s)`, activeOverlapCondition)

	var exists bool
	if err := r.db.QueryRow(ctx, query, vehicleID, start, end).Scan(&exists); err != nil {
		r.log.Error("Failed to check active overlap",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return false, fmt.Errorf("check active overlap for vehicle %s: %w", vehicleID.String(), err)
	}

	return exists, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET driver_id = $2, start_date = $3, end_date = $4, total_amount = $5,
		    pickup_location = $6, drop_location = $7, contact_phone = $8,
		    status = $9, payment_status = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.DriverID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalAmount,
		booking.PickupLocation,
		booking.DropLocation,
		booking.ContactPhone,
		booking.Status,
		booking.PaymentStatus,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}
