package wire

import (
	"wheelio-backend/internal/adaptor"
	"wheelio-backend/pkg/middleware"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDamageReport(
	r chi.Router,
	damageHandler *adaptor.DamageReportHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/damage-reports", damageHandler.CreateReport)
		r.Get("/api/damage-reports/my", damageHandler.GetMyReports)
		r.Get("/api/damage-reports/{id}", damageHandler.GetReportByID)
		r.Post("/api/damage-reports/{id}/pay", damageHandler.PayReport)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, "ADMIN", "STAFF"))

		r.Get("/api/damage-reports", damageHandler.GetAllReports)
		r.Get("/api/damage-reports/vehicle/{id}", damageHandler.GetReportsByVehicle)
		r.Get("/api/damage-reports/user/{id}", damageHandler.GetReportsByUser)
		r.Get("/api/damage-reports/status/{status}", damageHandler.GetReportsByStatus)
		r.Put("/api/damage-reports/{id}/status", damageHandler.UpdateStatus)
	})
}
