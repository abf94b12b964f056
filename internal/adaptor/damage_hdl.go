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

type DamageReportHandler struct {
	service usecase.DamageReportService
	log     *zap.Logger
}

func NewDamageReportHandler(service usecase.DamageReportService, log *zap.Logger) *DamageReportHandler {
	return &DamageReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "damage_report")),
	}
}

// CreateReport handles POST /api/damage-reports (protected)
func (h *DamageReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	reporterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateDamageReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	report, err := h.service.CreateReport(r.Context(), reporterID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create damage report")
		return
	}

	utils.ResponseCreated(w, "success", report)
}

// GetAllReports handles GET /api/damage-reports (admin/staff)
func (h *DamageReportHandler) GetAllReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.GetAllReports(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list damage reports")
		return
	}

	utils.ResponseSuccess(w, "success", reports)
}

// GetMyReports handles GET /api/damage-reports/my (protected)
func (h *DamageReportHandler) GetMyReports(w http.ResponseWriter, r *http.Request) {
	reporterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reports, err := h.service.GetMyReports(r.Context(), reporterID)
	if err != nil {
		handleServiceError(h.log, w, err, "list my damage reports")
		return
	}

	utils.ResponseSuccess(w, "success", reports)
}

// GetReportsByVehicle handles GET /api/damage-reports/vehicle/{id} (admin/staff)
func (h *DamageReportHandler) GetReportsByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	reports, err := h.service.GetReportsByVehicle(r.Context(), vehicleID)
	if err != nil {
		handleServiceError(h.log, w, err, "list damage reports by vehicle")
		return
	}

	utils.ResponseSuccess(w, "success", reports)
}

// GetReportsByUser handles GET /api/damage-reports/user/{id} (admin/staff)
func (h *DamageReportHandler) GetReportsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	reports, err := h.service.GetReportsByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list damage reports by user")
		return
	}

	utils.ResponseSuccess(w, "success", reports)
}

// GetReportsByStatus handles GET /api/damage-reports/status/{status} (admin/staff)
func (h *DamageReportHandler) GetReportsByStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")
	if status == "" {
		utils.ResponseBadRequest(w, "Status is required", nil)
		return
	}

	reports, err := h.service.GetReportsByStatus(r.Context(), status)
	if err != nil {
		handleServiceError(h.log, w, err, "list damage reports by status")
		return
	}

	utils.ResponseSuccess(w, "success", reports)
}

// GetReportByID handles GET /api/damage-reports/{id} (protected)
func (h *DamageReportHandler) GetReportByID(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")
	if reportID == "" {
		utils.ResponseBadRequest(w, "Report ID is required", nil)
		return
	}

	report, err := h.service.GetReportByID(r.Context(), reportID)
	if err != nil {
		handleServiceError(h.log, w, err, "get damage report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// UpdateStatus handles PUT /api/damage-reports/{id}/status (admin/staff)
func (h *DamageReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")
	if reportID == "" {
		utils.ResponseBadRequest(w, "Report ID is required", nil)
		return
	}

	var req request.UpdateDamageReportStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	report, err := h.service.UpdateReportStatus(r.Context(), reportID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update damage report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// PayReport handles POST /api/damage-reports/{id}/pay (protected)
func (h *DamageReportHandler) PayReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")
	if reportID == "" {
		utils.ResponseBadRequest(w, "Report ID is required", nil)
		return
	}

	var req request.PayDamageReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	report, err := h.service.PayReport(r.Context(), reportID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "pay damage report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
