package wire

import (
	"wheelio-backend/internal/adaptor"
	"wheelio-backend/pkg/middleware"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Calendars are public so browsing users can see occupied dates
	r.Get("/api/bookings/vehicle/{id}/booked-dates", bookingHandler.GetBookedDates)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Post("/api/bookings/check-availability", bookingHandler.CheckAvailability)
		r.Get("/api/bookings/my", bookingHandler.GetMyBookings)
		r.Get("/api/bookings/driver/{id}", bookingHandler.GetDriverBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, "ADMIN", "STAFF"))

		r.Get("/api/bookings", bookingHandler.GetAllBookings)
		r.Get("/api/bookings/user/{id}", bookingHandler.GetUserBookings)
		r.Get("/api/bookings/vehicle/{id}", bookingHandler.GetVehicleBookings)
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
	})
}
