package wire

import (
	"wheelio-backend/internal/adaptor"
	"wheelio-backend/pkg/middleware"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/payments", paymentHandler.RecordPayment)
		r.Post("/api/payments/order", paymentHandler.CreateOrder)
		r.Post("/api/payments/verify", paymentHandler.VerifyPayment)
		r.Get("/api/payments/booking/{id}", paymentHandler.GetPaymentsByBooking)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, "ADMIN", "STAFF"))

		r.Get("/api/payments", paymentHandler.GetAllPayments)
	})
}
