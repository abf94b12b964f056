package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/dto/request"
	"wheelio-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKeySecret = "test-secret"

func newPaymentService(repo *repository.Repository) PaymentService {
	config := &utils.Config{
		Payment: utils.PaymentConfig{KeyID: "rzp_test", KeySecret: testKeySecret},
	}
	return NewPaymentService(repo, config, zap.NewNop())
}

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func seedBooking(t *testing.T, repo *repository.Repository) *entity.Booking {
	t.Helper()
	user := seedUser(repo, "payer")
	vehicle := seedVehicle(repo, entity.VehicleStatusAvailable)

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     user.ID,
		UserName:   user.FullName,
		VehicleID:  vehicle.ID,
		VehicleSnapshot: entity.VehicleSnapshot{
			VehicleID:   vehicle.ID,
			Name:        vehicle.Name,
			Brand:       vehicle.Brand,
			Type:        vehicle.Type,
			PricePerDay: vehicle.PricePerDay,
			Location:    vehicle.Location,
		},
		StartDate:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local),
		EndDate:       time.Date(2026, 3, 5, 10, 0, 0, 0, time.Local),
		TotalAmount:   5000,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
	require.NoError(t, repo.Booking.CreateIfAvailable(context.Background(), booking))
	return booking
}

func TestCreateOrder(t *testing.T) {
	service := newPaymentService(newTestRepository())
	ctx := context.Background()

	order, err := service.CreateOrder(ctx, &request.CreateOrderRequest{Amount: 5000})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderID, "RENT-"), "order ID %q", order.OrderID)
	assert.Equal(t, "rzp_test", order.KeyID)
	assert.Equal(t, 5000.0, order.Amount)
	assert.Equal(t, "INR", order.Currency)

	_, err = service.CreateOrder(ctx, &request.CreateOrderRequest{Amount: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerifyPayment(t *testing.T) {
	service := newPaymentService(newTestRepository())
	ctx := context.Background()

	orderID := "order_abc123"
	paymentID := "pay_def456"

	result, err := service.VerifyPayment(ctx, &request.VerifyPaymentRequest{
		GatewayOrderID:   orderID,
		GatewayPaymentID: paymentID,
		GatewaySignature: signPayment(orderID, paymentID),
	})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.False(t, result.Recorded, "nothing captured for this payment yet")
	assert.Equal(t, paymentID, result.GatewayPaymentID)

	result, err = service.VerifyPayment(ctx, &request.VerifyPaymentRequest{
		GatewayOrderID:   orderID,
		GatewayPaymentID: paymentID,
		GatewaySignature: "deadbeef",
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestRecordPaymentSettlesBooking(t *testing.T) {
	repo := newTestRepository()
	service := newPaymentService(repo)
	ctx := context.Background()

	booking := seedBooking(t, repo)

	orderID := "order_abc123"
	paymentID := "pay_def456"
	signature := signPayment(orderID, paymentID)

	payment, err := service.RecordPayment(ctx, &request.RecordPaymentRequest{
		BookingID:        booking.ID.String(),
		GatewayPaymentID: paymentID,
		GatewayOrderID:   &orderID,
		GatewaySignature: &signature,
		Amount:           5000,
	})
	require.NoError(t, err)
	assert.Equal(t, paymentID, payment.GatewayPaymentID)
	assert.Equal(t, entity.PaymentRecordStatusSuccess, payment.Status)

	stored, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, entity.BookingStatusConfirmed, stored.Status, "pending booking confirms on payment")

	verify, err := service.VerifyPayment(ctx, &request.VerifyPaymentRequest{
		GatewayOrderID:   orderID,
		GatewayPaymentID: paymentID,
		GatewaySignature: signature,
	})
	require.NoError(t, err)
	assert.True(t, verify.Valid)
	assert.True(t, verify.Recorded)
}

func TestRecordPaymentRejectsBadSignature(t *testing.T) {
	repo := newTestRepository()
	service := newPaymentService(repo)
	ctx := context.Background()

	booking := seedBooking(t, repo)

	orderID := "order_abc123"
	badSignature := "not-the-signature"

	_, err := service.RecordPayment(ctx, &request.RecordPaymentRequest{
		BookingID:        booking.ID.String(),
		GatewayPaymentID: "pay_def456",
		GatewayOrderID:   &orderID,
		GatewaySignature: &badSignature,
		Amount:           5000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// The booking stays untouched.
	stored, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, stored.PaymentStatus)
	assert.Equal(t, entity.BookingStatusPending, stored.Status)
}

func TestRecordPaymentDuplicate(t *testing.T) {
	repo := newTestRepository()
	service := newPaymentService(repo)
	ctx := context.Background()

	booking := seedBooking(t, repo)

	req := &request.RecordPaymentRequest{
		BookingID:        booking.ID.String(),
		GatewayPaymentID: "pay_def456",
		Amount:           5000,
	}
	_, err := service.RecordPayment(ctx, req)
	require.NoError(t, err)

	_, err = service.RecordPayment(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRecordPaymentBookingNotFound(t *testing.T) {
	service := newPaymentService(newTestRepository())

	_, err := service.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:        uuid.NewString(),
		GatewayPaymentID: "pay_def456",
		Amount:           5000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPaymentsByBooking(t *testing.T) {
	repo := newTestRepository()
	service := newPaymentService(repo)
	ctx := context.Background()

	booking := seedBooking(t, repo)

	_, err := service.RecordPayment(ctx, &request.RecordPaymentRequest{
		BookingID:        booking.ID.String(),
		GatewayPaymentID: "pay_def456",
		Amount:           5000,
	})
	require.NoError(t, err)

	payments, err := service.GetPaymentsByBooking(ctx, booking.ID.String())
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, booking.ID.String(), payments[0].BookingID)

	_, err = service.GetPaymentsByBooking(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrValidation)
}
