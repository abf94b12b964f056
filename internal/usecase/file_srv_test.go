package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileUploadAndDownload(t *testing.T) {
	repo := newTestRepository()
	service := NewFileService(repo.File, zap.NewNop())
	ctx := context.Background()

	data := []byte("fake png bytes")
	uploaded, err := service.Upload(ctx, "damage-photo.png", "image/png", data)
	require.NoError(t, err)
	assert.Equal(t, "damage-photo.png", uploaded.Name)
	assert.Equal(t, "image/png", uploaded.ContentType)
	assert.Equal(t, len(data), uploaded.Size)
	assert.Equal(t, "/api/files/"+uploaded.ID, uploaded.URL)

	file, err := service.Download(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, data, file.Data)
	assert.Equal(t, "image/png", file.ContentType)
}

func TestFileUploadSanitizesName(t *testing.T) {
	repo := newTestRepository()
	service := NewFileService(repo.File, zap.NewNop())
	ctx := context.Background()

	uploaded, err := service.Upload(ctx, "../../etc/passwd", "text/plain", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", uploaded.Name, "directory components are stripped")

	_, err = service.Upload(ctx, "..", "text/plain", []byte("x"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Upload(ctx, "   ", "text/plain", []byte("x"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileUploadRejectsEmptyAndOversize(t *testing.T) {
	repo := newTestRepository()
	service := NewFileService(repo.File, zap.NewNop())
	ctx := context.Background()

	_, err := service.Upload(ctx, "empty.bin", "", nil)
	assert.ErrorIs(t, err, ErrValidation)

	oversize := bytes.Repeat([]byte{0xAB}, maxFileSize+1)
	_, err = service.Upload(ctx, "huge.bin", "", oversize)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileUploadDefaultsContentType(t *testing.T) {
	repo := newTestRepository()
	service := NewFileService(repo.File, zap.NewNop())

	uploaded, err := service.Upload(context.Background(), "blob.bin", "", []byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", uploaded.ContentType)
}

func TestFileDownloadErrors(t *testing.T) {
	repo := newTestRepository()
	service := NewFileService(repo.File, zap.NewNop())
	ctx := context.Background()

	_, err := service.Download(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Download(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
