package wire

import (
	"net/http"

	"wheelio-backend/internal/adaptor"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/usecase"
	"wheelio-backend/pkg/mailer"
	"wheelio-backend/pkg/middleware"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mail := mailer.NewMailer(config.Email, config.App.FrontendURL, logger)
	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireVehicle(r, handler.Vehicle, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireDriver(r, handler.Driver, config, logger)
	wireDamageReport(r, handler.DamageReport, config, logger)
	wirePayment(r, handler.Payment, config, logger)
	wireFile(r, handler.File, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
