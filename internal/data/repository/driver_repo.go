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

type DriverRepository interface {
	Create(ctx context.Context, profile *entity.DriverProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DriverProfile, error)
	FindAll(ctx context.Context) ([]*entity.DriverProfile, error)
	FindByStatus(ctx context.Context, status entity.DriverStatus) ([]*entity.DriverProfile, error)
	Update(ctx context.Context, profile *entity.DriverProfile) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type driverRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDriverRepository(db database.PgxIface, log *zap.Logger) DriverRepository {
	return &driverRepository{
		db:  db,
		log: log.With(zap.String("repository", "driver")),
	}
}

const driverColumns = `user_id, full_name, email, phone, city, avatar_url,
	license_number, rating, status, documents`

func (r *driverRepository) scanDriver(row rowScanner) (*entity.DriverProfile, error) {
	var profile entity.DriverProfile
	var documents []byte
	err := row.Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Email,
		&profile.Phone,
		&profile.City,
		&profile.AvatarURL,
		&profile.LicenseNumber,
		&profile.Rating,
		&profile.Status,
		&documents,
	)
	if err != nil {
		return nil, err
	}
	if len(documents) > 0 {
		if err := json.Unmarshal(documents, &profile.Documents); err != nil {
			return nil, fmt.Errorf("decode driver documents: %w", err)
		}
	}
	return &profile, nil
}

func (r *driverRepository) Create(ctx context.Context, profile *entity.DriverProfile) error {
	query := `
		INSERT INTO driver_profiles (user_id, full_name, email, phone, city, avatar_url,
		                             license_number, rating, status, documents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	documents, err := json.Marshal(profile.Documents)
	if err != nil {
		return fmt.Errorf("encode driver documents: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Email,
		profile.Phone,
		profile.City,
		profile.AvatarURL,
		profile.LicenseNumber,
		profile.Rating,
		profile.Status,
		documents,
	)

	if err != nil {
		r.log.Error("Failed to create driver profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create driver profile %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *driverRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DriverProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM driver_profiles WHERE user_id = $1`, driverColumns)

	profile, err := r.scanDriver(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find driver profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find driver profile %s: %w", userID.String(), err)
	}

	return profile, nil
}

func (r *driverRepository) FindAll(ctx context.Context) ([]*entity.DriverProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM driver_profiles ORDER BY full_name`, driverColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find driver profiles", zap.Error(err))
		return nil, fmt.Errorf("find driver profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.DriverProfile
	for rows.Next() {
		profile, err := r.scanDriver(rows)
		if err != nil {
			r.log.Error("Failed to scan driver profile row", zap.Error(err))
			return nil, fmt.Errorf("scan driver profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *driverRepository) FindByStatus(ctx context.Context, status entity.DriverStatus) ([]*entity.DriverProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM driver_profiles WHERE status = $1 ORDER BY rating DESC`, driverColumns)

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find driver profiles by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find driver profiles by status %s: %w", string(status), err)
	}
	defer rows.Close()

	var profiles []*entity.DriverProfile
	for rows.Next() {
		profile, err := r.scanDriver(rows)
		if err != nil {
			r.log.Error("Failed to scan driver profile row", zap.Error(err))
			return nil, fmt.Errorf("scan driver profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *driverRepository) Update(ctx context.Context, profile *entity.DriverProfile) error {
	query := `
		UPDATE driver_profiles
		SET full_name = $2, email = $3, phone = $4, city = $5, avatar_url = $6,
		    license_number = $7, rating = $8, status = $9, documents = $10
		WHERE user_id = $1
	`

	documents, err := json.Marshal(profile.Documents)
	if err != nil {
		return fmt.Errorf("encode driver documents: %w", err)
	}

	result, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Email,
		profile.Phone,
		profile.City,
		profile.AvatarURL,
		profile.LicenseNumber,
		profile.Rating,
		profile.Status,
		documents,
	)

	if err != nil {
		r.log.Error("Failed to update driver profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("update driver profile %s: %w", profile.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("driver profile %s not found", profile.UserID.String())
	}

	return nil
}

func (r *driverRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM driver_profiles WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete driver profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete driver profile %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("driver profile %s not found", userID.String())
	}

	r.log.Info("Driver profile deleted", zap.String("user_id", userID.String()))
	return nil
}
