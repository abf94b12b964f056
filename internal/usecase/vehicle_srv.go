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

type VehicleService interface {
	CreateVehicle(ctx context.Context, req *request.CreateVehicleRequest) (*response.VehicleResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)
	GetAllVehicles(ctx context.Context) ([]response.VehicleResponse, error)
	GetAvailableVehicles(ctx context.Context) ([]response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *request.UpdateVehicleRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.CreateVehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	vehicleType, ok := entity.ParseVehicleType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unknown vehicle type %s", ErrValidation, req.Type)
	}

	vehicle := &entity.Vehicle{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Brand:        req.Brand,
		Type:         vehicleType,
		PricePerDay:  req.PricePerDay,
		Location:     req.Location,
		Status:       entity.VehicleStatusAvailable,
		ImageURL:     req.ImageURL,
		Features:     req.Features,
		Description:  req.Description,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Seats:        req.Seats,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("name", vehicle.Name))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, vehicleID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) GetAllVehicles(ctx context.Context) ([]response.VehicleResponse, error) {
	vehicles, err := s.repo.Vehicle.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	return response.VehiclesToResponse(vehicles), nil
}

func (s *vehicleService) GetAvailableVehicles(ctx context.Context) ([]response.VehicleResponse, error) {
	vehicles, err := s.repo.Vehicle.FindByStatus(ctx, entity.VehicleStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available vehicles: %w", err)
	}

	return response.VehiclesToResponse(vehicles), nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req *request.UpdateVehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, vehicleID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Type != nil {
		vehicleType, ok := entity.ParseVehicleType(*req.Type)
		if !ok {
			return nil, fmt.Errorf("%w: unknown vehicle type %s", ErrValidation, *req.Type)
		}
		vehicle.Type = vehicleType
	}
	if req.PricePerDay != nil {
		vehicle.PricePerDay = *req.PricePerDay
	}
	if req.Location != nil {
		vehicle.Location = *req.Location
	}
	if req.Status != nil {
		status, ok := entity.ParseVehicleStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown vehicle status %s", ErrValidation, *req.Status)
		}
		vehicle.Status = status
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = req.ImageURL
	}
	if req.Features != nil {
		vehicle.Features = req.Features
	}
	if req.Description != nil {
		vehicle.Description = req.Description
	}
	if req.FuelType != nil {
		vehicle.FuelType = req.FuelType
	}
	if req.Transmission != nil {
		vehicle.Transmission = req.Transmission
	}
	if req.Seats != nil {
		vehicle.Seats = req.Seats
	}
	if req.Rating != nil {
		vehicle.Rating = req.Rating
	}

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, vehicleID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}

	// Bookings keep rendering from their stored snapshot after the row is gone.
	if err := s.repo.Vehicle.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}

	s.log.Info("Vehicle deleted", zap.String("vehicle_id", vehicleID))
	return nil
}
