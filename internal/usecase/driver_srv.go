package usecase

import (
	"context"
	"fmt"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/dto/request"
	"wheelio-backend/internal/dto/response"
	"wheelio-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultDriverPassword seeds accounts created by staff without an explicit
// password. Drivers are expected to change it on first login.
const defaultDriverPassword = "Driver@123"

type DriverService interface {
	CreateDriver(ctx context.Context, req *request.CreateDriverRequest) (*response.DriverResponse, error)
	GetDriverByID(ctx context.Context, driverID string) (*response.DriverResponse, error)
	GetAllDrivers(ctx context.Context) ([]response.DriverResponse, error)
	GetDriversByStatus(ctx context.Context, status string) ([]response.DriverResponse, error)
	UpdateDriver(ctx context.Context, driverID string, req *request.UpdateDriverRequest) (*response.DriverResponse, error)
	DeleteDriver(ctx context.Context, driverID string) error
}

type driverService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDriverService(repo *repository.Repository, log *zap.Logger) DriverService {
	return &driverService{
		repo: repo,
		log:  log.With(zap.String("service", "driver")),
	}
}

// CreateDriver registers the driver account and its profile. When a user with
// the email already exists the account is reused: a plain USER is promoted to
// DRIVER, elevated roles are left untouched.
func (s *driverService) CreateDriver(ctx context.Context, req *request.CreateDriverRequest) (*response.DriverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create driver validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	now := time.Now()
	if user == nil {
		password := defaultDriverPassword
		if req.Password != nil {
			password = *req.Password
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}

		user = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Email:        req.Email,
			PasswordHash: hash,
			FullName:     req.FullName,
			Role:         entity.RoleDriver,
			Phone:        req.Phone,
			City:         req.City,
		}

		if err := s.repo.User.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create driver user: %w", err)
		}
	} else {
		existing, err := s.repo.Driver.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("find driver profile: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: driver profile for %s already exists", ErrConflict, req.Email)
		}

		if user.Role == entity.RoleUser {
			user.Role = entity.RoleDriver
			user.UpdatedAt = now
			if err := s.repo.User.Update(ctx, user); err != nil {
				return nil, fmt.Errorf("promote user to driver: %w", err)
			}
		}
	}

	driver := &entity.DriverProfile{
		UserID:        user.ID,
		FullName:      user.FullName,
		Email:         user.Email,
		Phone:         user.Phone,
		City:          user.City,
		AvatarURL:     user.AvatarURL,
		LicenseNumber: req.LicenseNumber,
		Rating:        0,
		Status:        entity.DriverStatusActive,
	}

	if err := s.repo.Driver.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("create driver profile: %w", err)
	}

	s.log.Info("Driver created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.DriverToResponse(driver)
	return &resp, nil
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*response.DriverResponse, error) {
	id, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid driver ID %s", ErrValidation, driverID)
	}

	driver, err := s.repo.Driver.FindByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find driver: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver %s", ErrNotFound, driverID)
	}

	resp := response.DriverToResponse(driver)
	return &resp, nil
}

func (s *driverService) GetAllDrivers(ctx context.Context) ([]response.DriverResponse, error) {
	drivers, err := s.repo.Driver.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	return response.DriversToResponse(drivers), nil
}

func (s *driverService) GetDriversByStatus(ctx context.Context, status string) ([]response.DriverResponse, error) {
	driverStatus, ok := entity.ParseDriverStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown driver status %s", ErrValidation, status)
	}

	drivers, err := s.repo.Driver.FindByStatus(ctx, driverStatus)
	if err != nil {
		return nil, fmt.Errorf("list drivers by status: %w", err)
	}

	return response.DriversToResponse(drivers), nil
}

func (s *driverService) UpdateDriver(ctx context.Context, driverID string, req *request.UpdateDriverRequest) (*response.DriverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid driver ID %s", ErrValidation, driverID)
	}

	driver, err := s.repo.Driver.FindByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find driver: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver %s", ErrNotFound, driverID)
	}

	if req.Phone != nil {
		driver.Phone = req.Phone
	}
	if req.City != nil {
		driver.City = req.City
	}
	if req.AvatarURL != nil {
		driver.AvatarURL = req.AvatarURL
	}
	if req.LicenseNumber != nil {
		driver.LicenseNumber = *req.LicenseNumber
	}
	if req.Status != nil {
		status, ok := entity.ParseDriverStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown driver status %s", ErrValidation, *req.Status)
		}
		driver.Status = status
	}
	if req.Rating != nil {
		driver.Rating = *req.Rating
	}
	if req.Documents != nil {
		driver.Documents = req.Documents
	}

	if err := s.repo.Driver.Update(ctx, driver); err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}

	resp := response.DriverToResponse(driver)
	return &resp, nil
}

func (s *driverService) DeleteDriver(ctx context.Context, driverID string) error {
	id, err := uuid.Parse(driverID)
	if err != nil {
		return fmt.Errorf("%w: invalid driver ID %s", ErrValidation, driverID)
	}

	driver, err := s.repo.Driver.FindByUserID(ctx, id)
	if err != nil {
		return fmt.Errorf("find driver: %w", err)
	}
	if driver == nil {
		return fmt.Errorf("%w: driver %s", ErrNotFound, driverID)
	}

	if err := s.repo.Driver.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}

	// Demote the backing account so it no longer appears as a driver.
	user, err := s.repo.User.FindByID(ctx, id)
	if err == nil && user != nil && user.Role == entity.RoleDriver {
		user.Role = entity.RoleUser
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Warn("Failed to demote driver account", zap.Error(err))
		}
	}

	s.log.Info("Driver deleted", zap.String("user_id", driverID))
	return nil
}
