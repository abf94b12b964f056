package repository

import (
	"context"
	"fmt"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.File) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error)
}

type fileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFileRepository(db database.PgxIface, log *zap.Logger) FileRepository {
	return &fileRepository{
		db:  db,
		log: log.With(zap.String("repository", "file")),
	}
}

func (r *fileRepository) Create(ctx context.Context, file *entity.File) error {
	query := `
		INSERT INTO files (id, name, content_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		file.ID,
		file.Name,
		file.ContentType,
		file.Data,
		file.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to store file",
			zap.Error(err),
			zap.String("name", file.Name),
		)
		return fmt.Errorf("store file %s: %w", file.Name, err)
	}

	return nil
}

func (r *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	query := `SELECT id, name, content_type, data, created_at FROM files WHERE id = $1`

	var file entity.File
	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.Name,
		&file.ContentType,
		&file.Data,
		&file.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find file by ID",
			zap.Error(err),
			zap.String("file_id", id.String()),
		)
		return nil, fmt.Errorf("find file by ID %s: %w", id.String(), err)
	}

	return &file, nil
}
