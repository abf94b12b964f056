package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxFileSize caps stored uploads at 10 MB.
const maxFileSize = 10 << 20

type FileService interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (*response.FileResponse, error)
	Download(ctx context.Context, fileID string) (*entity.File, error)
}

type fileService struct {
	files repository.FileRepository
	log   *zap.Logger
}

func NewFileService(files repository.FileRepository, log *zap.Logger) FileService {
	return &fileService{
		files: files,
		log:   log.With(zap.String("service", "file")),
	}
}

// sanitizeFileName strips any directory components so a crafted name cannot
// point outside the upload namespace.
func sanitizeFileName(name string) (string, error) {
	cleaned := filepath.Base(strings.TrimSpace(name))
	if cleaned == "" || cleaned == "." || cleaned == ".." || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("%w: invalid file name %q", ErrValidation, name)
	}
	return cleaned, nil
}

func (s *fileService) Upload(ctx context.Context, name, contentType string, data []byte) (*response.FileResponse, error) {
	cleaned, err := sanitizeFileName(name)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrValidation)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("%w: file exceeds the %d byte limit", ErrValidation, maxFileSize)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file := &entity.File{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        cleaned,
		ContentType: contentType,
		Data:        data,
	}

	if err := s.files.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	s.log.Info("File uploaded",
		zap.String("file_id", file.ID.String()),
		zap.String("name", cleaned),
		zap.Int("size", len(data)))

	resp := response.FileToResponse(file)
	return &resp, nil
}

func (s *fileService) Download(ctx context.Context, fileID string) (*entity.File, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid file ID %s", ErrValidation, fileID)
	}

	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find file: %w", err)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: file %s", ErrNotFound, fileID)
	}

	return file, nil
}
