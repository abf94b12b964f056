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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreateOrder handles POST /api/payments/order (protected)
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create payment order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// RecordPayment handles POST /api/payments (protected)
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// VerifyPayment handles POST /api/payments/verify (protected)
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.VerifyPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "verify payment")
		return
	}

	if !result.Valid {
		utils.ResponseBadRequest(w, "Payment signature verification failed", result)
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetAllPayments handles GET /api/payments (admin/staff)
func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetAllPayments(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetPaymentsByBooking handles GET /api/payments/booking/{id} (protected)
func (h *PaymentHandler) GetPaymentsByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	payments, err := h.service.GetPaymentsByBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "list payments by booking")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
