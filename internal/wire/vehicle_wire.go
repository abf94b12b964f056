package wire

import (
	"wheelio-backend/internal/adaptor"
	"wheelio-backend/pkg/middleware"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the fleet needs no account
	r.Get("/api/vehicles", vehicleHandler.GetAllVehicles)
	r.Get("/api/vehicles/available", vehicleHandler.GetAvailableVehicles)
	r.Get("/api/vehicles/{id}", vehicleHandler.GetVehicleByID)

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, "ADMIN", "STAFF"))

		r.Post("/api/vehicles", vehicleHandler.CreateVehicle)
		r.Put("/api/vehicles/{id}", vehicleHandler.UpdateVehicle)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, "ADMIN"))

		r.Delete("/api/vehicles/{id}", vehicleHandler.DeleteVehicle)
	})
}
