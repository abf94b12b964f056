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

type DamageReportRepository interface {
	Create(ctx context.Context, report *entity.DamageReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DamageReport, error)
	FindAll(ctx context.Context) ([]*entity.DamageReport, error)
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.DamageReport, error)
	FindByReporterID(ctx context.Context, userID uuid.UUID) ([]*entity.DamageReport, error)
	FindByStatus(ctx context.Context, status entity.DamageStatus) ([]*entity.DamageReport, error)
	Update(ctx context.Context, report *entity.DamageReport) error
}

type damageReportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDamageReportRepository(db database.PgxIface, log *zap.Logger) DamageReportRepository {
	return &damageReportRepository{
		db:  db,
		log: log.With(zap.String("repository", "damage_report")),
	}
}

const damageReportColumns = `id, vehicle_id, vehicle_name, reported_by, reported_by_name,
	description, images, severity, status, estimated_cost, gateway_payment_id, created_at`

func (r *damageReportRepository) scanReport(row rowScanner) (*entity.DamageReport, error) {
	var report entity.DamageReport
	var images []byte
	err := row.Scan(
		&report.ID,
		&report.VehicleID,
		&report.VehicleName,
		&report.ReportedByID,
		&report.ReportedByName,
		&report.Description,
		&images,
		&report.Severity,
		&report.Status,
		&report.EstimatedCost,
		&report.GatewayPaymentID,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &report.Images); err != nil {
			return nil, fmt.Errorf("decode damage report images: %w", err)
		}
	}
	return &report, nil
}

func (r *damageReportRepository) Create(ctx context.Context, report *entity.DamageReport) error {
	query := `
		INSERT INTO damage_reports (id, vehicle_id, vehicle_name, reported_by, reported_by_name,
		                            description, images, severity, status, estimated_cost,
		                            gateway_payment_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	images, err := json.Marshal(report.Images)
	if err != nil {
		return fmt.Errorf("encode damage report images: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		report.ID,
		report.VehicleID,
		report.VehicleName,
		report.ReportedByID,
		report.ReportedByName,
		report.Description,
		images,
		report.Severity,
		report.Status,
		report.EstimatedCost,
		report.GatewayPaymentID,
		report.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create damage report",
			zap.Error(err),
			zap.String("vehicle_id", report.VehicleID.String()),
		)
		return fmt.Errorf("create damage report for vehicle %s: %w", report.VehicleID.String(), err)
	}

	return nil
}

func (r *damageReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DamageReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM damage_reports WHERE id = $1`, damageReportColumns)

	report, err := r.scanReport(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find damage report by ID",
			zap.Error(err),
			zap.String("report_id", id.String()),
		)
		return nil, fmt.Errorf("find damage report by ID %s: %w", id.String(), err)
	}

	return report, nil
}

func (r *damageReportRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.DamageReport, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*entity.DamageReport
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			r.log.Error("Failed to scan damage report row", zap.Error(err))
			return nil, fmt.Errorf("scan damage report row: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (r *damageReportRepository) FindAll(ctx context.Context) ([]*entity.DamageReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM damage_reports ORDER BY created_at DESC`, damageReportColumns)

	reports, err := r.findMany(ctx, query)
	if err != nil {
		r.log.Error("Failed to find damage reports", zap.Error(err))
		return nil, fmt.Errorf("find damage reports: %w", err)
	}
	return reports, nil
}

func (r *damageReportRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.DamageReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM damage_reports WHERE vehicle_id = $1 ORDER BY created_at DESC`, damageReportColumns)

	reports, err := r.findMany(ctx, query, vehicleID)
	if err != nil {
		r.log.Error("Failed to find damage reports by vehicle ID",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil, fmt.Errorf("find damage reports by vehicle ID %s: %w", vehicleID.String(), err)
	}
	return reports, nil
}

func (r *damageReportRepository) FindByReporterID(ctx context.Context, userID uuid.UUID) ([]*entity.DamageReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM damage_reports WHERE reported_by = $1 ORDER BY created_at DESC`, damageReportColumns)

	reports, err := r.findMany(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find damage reports by reporter ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find damage reports by reporter ID %s: %w", userID.String(), err)
	}
	return reports, nil
}

func (r *damageReportRepository) FindByStatus(ctx context.Context, status entity.DamageStatus) ([]*entity.DamageReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM damage_reports WHERE status = $1 ORDER BY created_at DESC`, damageReportColumns)

	reports, err := r.findMany(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find damage reports by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find damage reports by status %s: %w", string(status), err)
	}
	return reports, nil
}

func (r *damageReportRepository) Update(ctx context.Context, report *entity.DamageReport) error {
	query := `
		UPDATE damage_reports
		SET description = $2, images = $3, severity = $4, status = $5,
		    estimated_cost = $6, gateway_payment_id = $7
		WHERE id = $1
	`

	images, err := json.Marshal(report.Images)
	if err != nil {
		return fmt.Errorf("encode damage report images: %w", err)
	}

	result, err := r.db.Exec(ctx, query,
		report.ID,
		report.Description,
		images,
		report.Severity,
		report.Status,
		report.EstimatedCost,
		report.GatewayPaymentID,
	)

	if err != nil {
		r.log.Error("Failed to update damage report",
			zap.Error(err),
			zap.String("report_id", report.ID.String()),
		)
		return fmt.Errorf("update damage report %s: %w", report.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("damage report %s not found", report.ID.String())
	}

	return nil
}
