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

type DamageReportService interface {
	CreateReport(ctx context.Context, reporterID uuid.UUID, req *request.CreateDamageReportRequest) (*response.DamageReportResponse, error)
	GetReportByID(ctx context.Context, reportID string) (*response.DamageReportResponse, error)
	GetAllReports(ctx context.Context) ([]response.DamageReportResponse, error)
	GetReportsByVehicle(ctx context.Context, vehicleID string) ([]response.DamageReportResponse, error)
	GetMyReports(ctx context.Context, reporterID uuid.UUID) ([]response.DamageReportResponse, error)
	GetReportsByUser(ctx context.Context, userID string) ([]response.DamageReportResponse, error)
	GetReportsByStatus(ctx context.Context, status string) ([]response.DamageReportResponse, error)
	UpdateReportStatus(ctx context.Context, reportID string, req *request.UpdateDamageReportStatusRequest) (*response.DamageReportResponse, error)
	PayReport(ctx context.Context, reportID string, req *request.PayDamageReportRequest) (*response.DamageReportResponse, error)
}

type damageReportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDamageReportService(repo *repository.Repository, log *zap.Logger) DamageReportService {
	return &damageReportService{
		repo: repo,
		log:  log.With(zap.String("service", "damage_report")),
	}
}

func (s *damageReportService) CreateReport(ctx context.Context, reporterID uuid.UUID, req *request.CreateDamageReportRequest) (*response.DamageReportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create damage report validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, req.VehicleID)
	}

	// A report pointing at a vehicle or reporter that does not exist is a
	// bad request, not a miss on a lookup endpoint.
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: unknown vehicle %s", ErrValidation, req.VehicleID)
	}

	reporter, err := s.repo.User.FindByID(ctx, reporterID)
	if err != nil {
		return nil, fmt.Errorf("find reporter: %w", err)
	}
	if reporter == nil {
		return nil, fmt.Errorf("%w: unknown user %s", ErrValidation, reporterID.String())
	}

	var severity *entity.DamageSeverity
	if req.Severity != nil {
		parsed, ok := entity.ParseDamageSeverity(*req.Severity)
		if !ok {
			return nil, fmt.Errorf("%w: unknown severity %s", ErrValidation, *req.Severity)
		}
		severity = &parsed
	}

	report := &entity.DamageReport{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		VehicleID:      vehicleID,
		VehicleName:    vehicle.Name,
		ReportedByID:   reporterID,
		ReportedByName: reporter.FullName,
		Description:    req.Description,
		Images:         req.Images,
		Severity:       severity,
		EstimatedCost:  req.EstimatedCost,
		Status:         entity.DamageStatusOpen,
	}

	// A report filed with a cost attached is already priced.
	if req.EstimatedCost != nil {
		report.Status = entity.DamageStatusEstimated
	}

	if err := s.repo.DamageReport.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create damage report: %w", err)
	}

	s.log.Info("Damage report created",
		zap.String("report_id", report.ID.String()),
		zap.String("vehicle_id", vehicleID.String()))

	resp := response.DamageReportToResponse(report)
	return &resp, nil
}

func (s *damageReportService) GetReportByID(ctx context.Context, reportID string) (*response.DamageReportResponse, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid report ID %s", ErrValidation, reportID)
	}

	report, err := s.repo.DamageReport.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find damage report: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("%w: damage report %s", ErrNotFound, reportID)
	}

	resp := response.DamageReportToResponse(report)
	return &resp, nil
}

func (s *damageReportService) GetAllReports(ctx context.Context) ([]response.DamageReportResponse, error) {
	reports, err := s.repo.DamageReport.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list damage reports: %w", err)
	}

	return response.DamageReportsToResponse(reports), nil
}

func (s *damageReportService) GetReportsByVehicle(ctx context.Context, vehicleID string) ([]response.DamageReportResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID %s", ErrValidation, vehicleID)
	}

	reports, err := s.repo.DamageReport.FindByVehicleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list damage reports by vehicle: %w", err)
	}

	return response.DamageReportsToResponse(reports), nil
}

func (s *damageReportService) GetMyReports(ctx context.Context, reporterID uuid.UUID) ([]response.DamageReportResponse, error) {
	reports, err := s.repo.DamageReport.FindByReporterID(ctx, reporterID)
	if err != nil {
		return nil, fmt.Errorf("list damage reports by reporter: %w", err)
	}

	return response.DamageReportsToResponse(reports), nil
}

func (s *damageReportService) GetReportsByUser(ctx context.Context, userID string) ([]response.DamageReportResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	return s.GetMyReports(ctx, id)
}

func (s *damageReportService) GetReportsByStatus(ctx context.Context, status string) ([]response.DamageReportResponse, error) {
	damageStatus, ok := entity.ParseDamageStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown damage status %s", ErrValidation, status)
	}

	reports, err := s.repo.DamageReport.FindByStatus(ctx, damageStatus)
	if err != nil {
		return nil, fmt.Errorf("list damage reports by status: %w", err)
	}

	return response.DamageReportsToResponse(reports), nil
}

func (s *damageReportService) UpdateReportStatus(ctx context.Context, reportID string, req *request.UpdateDamageReportStatusRequest) (*response.DamageReportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid report ID %s", ErrValidation, reportID)
	}

	report, err := s.repo.DamageReport.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find damage report: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("%w: damage report %s", ErrNotFound, reportID)
	}

	if req.Severity != nil {
		severity, ok := entity.ParseDamageSeverity(*req.Severity)
		if !ok {
			return nil, fmt.Errorf("%w: unknown severity %s", ErrValidation, *req.Severity)
		}
		report.Severity = &severity
	}

	if req.EstimatedCost != nil {
		report.EstimatedCost = req.EstimatedCost
		// Pricing the damage moves an open investigation to ESTIMATED.
		if report.Status == entity.DamageStatusOpen || report.Status == entity.DamageStatusInvestigating {
			report.Status = entity.DamageStatusEstimated
		}
	}

	if req.Status != nil {
		status, ok := entity.ParseDamageStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown damage status %s", ErrValidation, *req.Status)
		}
		report.Status = status
	}

	if err := s.repo.DamageReport.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("update damage report: %w", err)
	}

	s.log.Info("Damage report updated",
		zap.String("report_id", reportID),
		zap.String("status", string(report.Status)))

	resp := response.DamageReportToResponse(report)
	return &resp, nil
}

func (s *damageReportService) PayReport(ctx context.Context, reportID string, req *request.PayDamageReportRequest) (*response.DamageReportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid report ID %s", ErrValidation, reportID)
	}

	report, err := s.repo.DamageReport.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find damage report: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("%w: damage report %s", ErrNotFound, reportID)
	}

	if report.EstimatedCost == nil {
		return nil, fmt.Errorf("%w: damage report %s has no estimated cost yet", ErrConflict, reportID)
	}
	if report.Status == entity.DamageStatusPaid {
		return nil, fmt.Errorf("%w: damage report %s is already paid", ErrConflict, reportID)
	}

	report.GatewayPaymentID = &req.GatewayPaymentID
	report.Status = entity.DamageStatusPaid

	if err := s.repo.DamageReport.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("mark damage report paid: %w", err)
	}

	s.log.Info("Damage report paid",
		zap.String("report_id", reportID),
		zap.String("gateway_payment_id", req.GatewayPaymentID))

	resp := response.DamageReportToResponse(report)
	return &resp, nil
}
