package adaptor

import (
	"encoding/json"
	"net/http"

	"wheelio-backend/internal/dto/request"
	"wheelio-backend/internal/usecase"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DriverHandler struct {
	service usecase.DriverService
	log     *zap.Logger
}

func NewDriverHandler(service usecase.DriverService, log *zap.Logger) *DriverHandler {
	return &DriverHandler{
		service: service,
		log:     log.With(zap.String("handler", "driver")),
	}
}

// CreateDriver handles POST /api/drivers (admin/staff)
func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	driver, err := h.service.CreateDriver(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create driver")
		return
	}

	utils.ResponseCreated(w, "success", driver)
}

// GetAllDrivers handles GET /api/drivers (protected)
func (h *DriverHandler) GetAllDrivers(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		drivers, err := h.service.GetDriversByStatus(r.Context(), status)
		if err != nil {
			handleServiceError(h.log, w, err, "list drivers by status")
			return
		}
		utils.ResponseSuccess(w, "success", drivers)
		return
	}

	drivers, err := h.service.GetAllDrivers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list drivers")
		return
	}

	utils.ResponseSuccess(w, "success", drivers)
}

// GetAvailableDrivers handles GET /api/drivers/available (protected)
func (h *DriverHandler) GetAvailableDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.GetDriversByStatus(r.Context(), "ACTIVE")
	if err != nil {
		handleServiceError(h.log, w, err, "list available drivers")
		return
	}

	utils.ResponseSuccess(w, "success", drivers)
}

// GetDriverByID handles GET /api/drivers/{id} (protected)
func (h *DriverHandler) GetDriverByID(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	driver, err := h.service.GetDriverByID(r.Context(), driverID)
	if err != nil {
		handleServiceError(h.log, w, err, "get driver")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// UpdateDriver handles PUT /api/drivers/{id} (admin/staff)
func (h *DriverHandler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	var req request.UpdateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	driver, err := h.service.UpdateDriver(r.Context(), driverID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update driver")
		return
	}

	utils.ResponseSuccess(w, "success", driver)
}

// DeleteDriver handles DELETE /api/drivers/{id} (admin only)
func (h *DriverHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")
	if driverID == "" {
		utils.ResponseBadRequest(w, "Driver ID is required", nil)
		return
	}

	if err := h.service.DeleteDriver(r.Context(), driverID); err != nil {
		handleServiceError(h.log, w, err, "delete driver")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
