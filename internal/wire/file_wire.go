package wire

import (
	"wheelio-backend/internal/adaptor"
	"wheelio-backend/pkg/middleware"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFile(
	r chi.Router,
	fileHandler *adaptor.FileHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Stored files are referenced by vehicle images and driver documents
	r.Get("/api/files/{id}", fileHandler.Download)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/files/upload", fileHandler.Upload)
	})
}
