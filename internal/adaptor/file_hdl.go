package adaptor

import (
	"fmt"
	"io"
	"net/http"

	"wheelio-backend/internal/usecase"
	"wheelio-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FileHandler struct {
	service usecase.FileService
	log     *zap.Logger
}

func NewFileHandler(service usecase.FileService, log *zap.Logger) *FileHandler {
	return &FileHandler{
		service: service,
		log:     log.With(zap.String("handler", "file")),
	}
}

// Upload handles POST /api/files/upload (protected, multipart form)
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("Failed to read uploaded file", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to read uploaded file")
		return
	}

	stored, err := h.service.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		handleServiceError(h.log, w, err, "upload file")
		return
	}

	utils.ResponseCreated(w, "success", stored)
}

// Download handles GET /api/files/{id} (public)
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "id")
	if fileID == "" {
		utils.ResponseBadRequest(w, "File ID is required", nil)
		return
	}

	file, err := h.service.Download(r.Context(), fileID)
	if err != nil {
		handleServiceError(h.log, w, err, "download file")
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data)
}
