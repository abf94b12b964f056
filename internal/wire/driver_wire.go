package wire

import (
	"wheelio-backend/internal/adaptor"
	"wheelio-backend/pkg/middleware"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDriver(
	r chi.Router,
	driverHandler *adaptor.DriverHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/api/drivers", driverHandler.GetAllDrivers)
		r.Get("/api/drivers/available", driverHandler.GetAvailableDrivers)
		r.Get("/api/drivers/{id}", driverHandler.GetDriverByID)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, "ADMIN", "STAFF"))

		r.Post("/api/drivers", driverHandler.CreateDriver)
		r.Put("/api/drivers/{id}", driverHandler.UpdateDriver)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, "ADMIN"))

		r.Delete("/api/drivers/{id}", driverHandler.DeleteDriver)
	})
}
