package usecase

import (
	"context"
	"testing"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func seedReport(t *testing.T, repo *repository.Repository, service DamageReportService) string {
	t.Helper()
	reporter := seedUser(repo, "reporter")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	report, err := service.CreateReport(context.Background(), reporter.ID, &request.CreateDamageReportRequest{
		VehicleID:   vehicle.ID.String(),
		Description: "Deep scratch along the left rear door",
	})
	require.NoError(t, err)
	return report.ID
}

func TestCreateDamageReport(t *testing.T) {
	repo := newTestRepository()
	service := NewDamageReportService(repo, zap.NewNop())
	ctx := context.Background()

	reporter := seedUser(repo, "reporter")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	report, err := service.CreateReport(ctx, reporter.ID, &request.CreateDamageReportRequest{
		VehicleID:   vehicle.ID.String(),
		Description: "Cracked windshield on the passenger side",
		Severity:    stringPtr("HIGH"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DamageStatusOpen, report.Status)
	assert.Equal(t, vehicle.Name, report.VehicleName)
	assert.Equal(t, reporter.FullName, report.ReportedByName)
	require.NotNil(t, report.Severity)
	assert.Equal(t, entity.SeverityHigh, *report.Severity)
	assert.Nil(t, report.EstimatedCost)
}

func TestCreateDamageReportUnknownVehicle(t *testing.T) {
	repo := newTestRepository()
	service := NewDamageReportService(repo, zap.NewNop())

	reporter := seedUser(repo, "reporter")

	_, err := service.CreateReport(context.Background(), reporter.ID, &request.CreateDamageReportRequest{
		VehicleID:   uuid.NewString(),
		Description: "Dented front bumper",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation, "a report referencing an unknown vehicle is a bad request")
}

func TestCreateDamageReportWithEstimate(t *testing.T) {
	repo := newTestRepository()
	service := NewDamageReportService(repo, zap.NewNop())
	ctx := context.Background()

	reporter := seedUser(repo, "reporter")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	// Filing the report with a cost attached lands it in ESTIMATED directly.
	report, err := service.CreateReport(ctx, reporter.ID, &request.CreateDamageReportRequest{
		VehicleID:     vehicle.ID.String(),
		Description:   "Shattered rear window after a break-in",
		EstimatedCost: floatPtr(7200),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DamageStatusEstimated, report.Status)
	require.NotNil(t, report.EstimatedCost)
	assert.Equal(t, 7200.0, *report.EstimatedCost)

	// An already priced report can be paid straight away.
	paid, err := service.PayReport(ctx, report.ID, &request.PayDamageReportRequest{
		GatewayPaymentID: "pay_damage100",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DamageStatusPaid, paid.Status)
}

func TestUpdateReportStatusEstimateAdvances(t *testing.T) {
	repo := newTestRepository()
	service := NewDamageReportService(repo, zap.NewNop())
	ctx := context.Background()

	reportID := seedReport(t, repo, service)

	// Setting a cost on an open report moves it to ESTIMATED on its own.
	updated, err := service.UpdateReportStatus(ctx, reportID, &request.UpdateDamageReportStatusRequest{
		EstimatedCost: floatPtr(4500),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DamageStatusEstimated, updated.Status)
	require.NotNil(t, updated.EstimatedCost)
	assert.Equal(t, 4500.0, *updated.EstimatedCost)

	// An explicit status wins over the estimate auto-advance.
	updated, err = service.UpdateReportStatus(ctx, reportID, &request.UpdateDamageReportStatusRequest{
		Status: stringPtr("RESOLVED"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DamageStatusResolved, updated.Status)
}

func TestPayDamageReport(t *testing.T) {
	repo := newTestRepository()
	service := NewDamageReportService(repo, zap.NewNop())
	ctx := context.Background()

	reportID := seedReport(t, repo, service)

	// Paying before an estimate exists is rejected.
	_, err := service.PayReport(ctx, reportID, &request.PayDamageReportRequest{
		GatewayPaymentID: "pay_damage001",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = service.UpdateReportStatus(ctx, reportID, &request.UpdateDamageReportStatusRequest{
		EstimatedCost: floatPtr(4500),
	})
	require.NoError(t, err)

	paid, err := service.PayReport(ctx, reportID, &request.PayDamageReportRequest{
		GatewayPaymentID: "pay_damage001",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DamageStatusPaid, paid.Status)
	require.NotNil(t, paid.GatewayPaymentID)
	assert.Equal(t, "pay_damage001", *paid.GatewayPaymentID)

	// Paying twice is rejected.
	_, err = service.PayReport(ctx, reportID, &request.PayDamageReportRequest{
		GatewayPaymentID: "pay_damage002",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetMyReports(t *testing.T) {
	repo := newTestRepository()
	service := NewDamageReportService(repo, zap.NewNop())
	ctx := context.Background()

	alice := seedUser(repo, "alice")
	bob := seedUser(repo, "bob")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	_, err := service.CreateReport(ctx, alice.ID, &request.CreateDamageReportRequest{
		VehicleID:   vehicle.ID.String(),
		Description: "Broken left mirror",
	})
	require.NoError(t, err)

	mine, err := service.GetMyReports(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := service.GetMyReports(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, others)
}
