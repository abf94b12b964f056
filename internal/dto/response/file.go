package response

import (
	"time"

	"wheelio-backend/internal/data/entity"
)

type FileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converters
func FileToResponse(file *entity.File) FileResponse {
	return FileResponse{
		ID:          file.ID.String(),
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        len(file.Data),
		URL:         "/api/files/" + file.ID.String(),
		CreatedAt:   file.CreatedAt,
	}
}
