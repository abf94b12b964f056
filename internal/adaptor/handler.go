package adaptor

import (
	"errors"
	"net/http"

	"wheelio-backend/internal/usecase"
	"wheelio-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Vehicle      *VehicleHandler
	Booking      *BookingHandler
	Driver       *DriverHandler
	DamageReport *DamageReportHandler
	Payment      *PaymentHandler
	File         *FileHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Vehicle:      NewVehicleHandler(service.Vehicle, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Driver:       NewDriverHandler(service.Driver, log),
		DamageReport: NewDamageReportHandler(service.DamageReport, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		File:         NewFileHandler(service.File, log),
	}
}

// handleServiceError maps the service sentinel errors onto HTTP responses.
// Anything unrecognized is a 500 and logged at error level.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
