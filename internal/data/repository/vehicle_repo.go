package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	FindByStatus(ctx context.Context, status entity.VehicleStatus) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

const vehicleColumns = `id, name, brand, type, price_per_day, location, status, image_url,
	features, description, seats, fuel_type, transmission, rating, created_at`

func (r *vehicleRepository) scanVehicle(row rowScanner) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	var features []byte
	err := row.Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.Brand,
		&vehicle.Type,
		&vehicle.PricePerDay,
		&vehicle.Location,
		&vehicle.Status,
		&vehicle.ImageURL,
		&features,
		&vehicle.Description,
		&vehicle.Seats,
		&vehicle.FuelType,
		&vehicle.Transmission,
		&vehicle.Rating,
		&vehicle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &vehicle.Features); err != nil {
			return nil, fmt.Errorf("decode vehicle features: %w", err)
		}
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, name, brand, type, price_per_day, location, status, image_url,
		                      features, description, seats, fuel_type, transmission, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	features, err := json.Marshal(vehicle.Features)
	if err != nil {
		return fmt.Errorf("encode vehicle features: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Type,
		vehicle.PricePerDay,
		vehicle.Location,
		vehicle.Status,
		vehicle.ImageURL,
		features,
		vehicle.Description,
		vehicle.Seats,
		vehicle.FuelType,
		vehicle.Transmission,
		vehicle.Rating,
		vehicle.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("name", vehicle.Name),
		)
		return fmt.Errorf("create vehicle %s: %w", vehicle.Name, err)
	}

	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns)

	vehicle, err := r.scanVehicle(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles ORDER BY created_at DESC`, vehicleColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find vehicles", zap.Error(err))
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*entity.Vehicle
	for rows.Next() {
		vehicle, err := r.scanVehicle(rows)
		if err != nil {
			r.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) FindByStatus(ctx context.Context, status entity.VehicleStatus) ([]*entity.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE status = $1 ORDER BY created_at DESC`, vehicleColumns)

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find vehicles by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find vehicles by status %s: %w", string(status), err)
	}
	defer rows.Close()

	var vehicles []*entity.Vehicle
	for rows.Next() {
		vehicle, err := r.scanVehicle(rows)
		if err != nil {
			r.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET name = $2, brand = $3, type = $4, price_per_day = $5, location = $6,
		    status = $7, image_url = $8, features = $9, description = $10,
		    seats = $11, fuel_type = $12, transmission = $13, rating = $14
		WHERE id = $1
	`

	features, err := json.Marshal(vehicle.Features)
	if err != nil {
		return fmt.Errorf("encode vehicle features: %w", err)
	}

	result, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Type,
		vehicle.PricePerDay,
		vehicle.Location,
		vehicle.Status,
		vehicle.ImageURL,
		features,
		vehicle.Description,
		vehicle.Seats,
		vehicle.FuelType,
		vehicle.Transmission,
		vehicle.Rating,
	)

	if err != nil {
		r.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()),
		)
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}

	return nil
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update vehicle status",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update vehicle %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	r.log.Info("Vehicle deleted", zap.String("vehicle_id", id.String()))
	return nil
}
