package usecase

import (
	"context"
	"testing"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateDriverNewAccount(t *testing.T) {
	repo := newTestRepository()
	service := NewDriverService(repo, zap.NewNop())
	ctx := context.Background()

	driver, err := service.CreateDriver(ctx, &request.CreateDriverRequest{
		FullName:      "Ravi Sharma",
		Email:         "ravi@example.com",
		Phone:         stringPtr("+919812345678"),
		LicenseNumber: "KA01-2024-0012345",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DriverStatusActive, driver.Status)
	assert.Equal(t, "KA01-2024-0012345", driver.LicenseNumber)
	assert.Zero(t, driver.Rating)

	// A DRIVER user account was created alongside.
	user, err := repo.User.FindByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleDriver, user.Role)
	assert.Equal(t, user.ID.String(), driver.UserID)
}

func TestCreateDriverPromotesExistingUser(t *testing.T) {
	repo := newTestRepository()
	service := NewDriverService(repo, zap.NewNop())
	ctx := context.Background()

	existing := seedUser(repo, "ravi")

	driver, err := service.CreateDriver(ctx, &request.CreateDriverRequest{
		FullName:      existing.FullName,
		Email:         existing.Email,
		LicenseNumber: "KA01-2024-0012345",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID.String(), driver.UserID)

	user, err := repo.User.FindByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDriver, user.Role)

	// A second profile for the same account is rejected.
	_, err = service.CreateDriver(ctx, &request.CreateDriverRequest{
		FullName:      existing.FullName,
		Email:         existing.Email,
		LicenseNumber: "KA01-2024-0099999",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateDriver(t *testing.T) {
	repo := newTestRepository()
	service := NewDriverService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := service.CreateDriver(ctx, &request.CreateDriverRequest{
		FullName:      "Ravi Sharma",
		Email:         "ravi@example.com",
		LicenseNumber: "KA01-2024-0012345",
	})
	require.NoError(t, err)

	updated, err := service.UpdateDriver(ctx, created.UserID, &request.UpdateDriverRequest{
		Status:    stringPtr("INACTIVE"),
		Documents: map[string]string{"license": "/api/files/abc"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DriverStatusInactive, updated.Status)
	assert.Equal(t, "/api/files/abc", updated.Documents["license"])
}

func TestDeleteDriverDemotesUser(t *testing.T) {
	repo := newTestRepository()
	service := NewDriverService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := service.CreateDriver(ctx, &request.CreateDriverRequest{
		FullName:      "Ravi Sharma",
		Email:         "ravi@example.com",
		LicenseNumber: "KA01-2024-0012345",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteDriver(ctx, created.UserID))

	_, err = service.GetDriverByID(ctx, created.UserID)
	assert.ErrorIs(t, err, ErrNotFound)

	user, err := repo.User.FindByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	require.NotNil(t, user, "the user account survives profile deletion")
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestGetDriversByStatus(t *testing.T) {
	repo := newTestRepository()
	service := NewDriverService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := service.CreateDriver(ctx, &request.CreateDriverRequest{
		FullName:      "Ravi Sharma",
		Email:         "ravi@example.com",
		LicenseNumber: "KA01-2024-0012345",
	})
	require.NoError(t, err)

	active, err := service.GetDriversByStatus(ctx, "ACTIVE")
	require.NoError(t, err)
	assert.Len(t, active, 1)

	inactive, err := service.GetDriversByStatus(ctx, "INACTIVE")
	require.NoError(t, err)
	assert.Empty(t, inactive)

	_, err = service.GetDriversByStatus(ctx, "SLEEPING")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetDriverByIDRejectsBadID(t *testing.T) {
	service := NewDriverService(newTestRepository(), zap.NewNop())

	_, err := service.GetDriverByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.GetDriverByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
