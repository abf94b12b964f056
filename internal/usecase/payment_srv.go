package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/dto/request"
	"wheelio-backend/internal/dto/response"
	"wheelio-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
	VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error)
	GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error)
	GetPaymentsByBooking(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewPaymentService(repo *repository.Repository, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "payment")),
	}
}

// verifySignature checks the gateway's HMAC-SHA256 signature over
// "orderID|paymentID" against the configured key secret.
func (s *paymentService) verifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.config.Payment.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// CreateOrder hands the client everything the hosted checkout needs, a fresh
// order ID and the public key of the gateway account.
func (s *paymentService) CreateOrder(_ context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	orderID := utils.GenerateOrderID()

	s.log.Info("Payment order created",
		zap.String("order_id", orderID),
		zap.Float64("amount", req.Amount))

	return &response.OrderResponse{
		OrderID:  orderID,
		KeyID:    s.config.Payment.KeyID,
		Amount:   req.Amount,
		Currency: "INR",
	}, nil
}

func (s *paymentService) RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, req.BookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, req.BookingID)
	}

	if req.GatewayOrderID != nil && req.GatewaySignature != nil {
		if !s.verifySignature(*req.GatewayOrderID, req.GatewayPaymentID, *req.GatewaySignature) {
			s.log.Warn("Payment signature rejected",
				zap.String("gateway_payment_id", req.GatewayPaymentID))
			return nil, fmt.Errorf("%w: payment signature verification failed", ErrValidation)
		}
	}

	existing, err := s.repo.Payment.FindByGatewayPaymentID(ctx, req.GatewayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: payment %s is already recorded", ErrConflict, req.GatewayPaymentID)
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:        bookingID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewayOrderID:   req.GatewayOrderID,
		GatewaySignature: req.GatewaySignature,
		Method:           req.Method,
		Amount:           req.Amount,
		Status:           entity.PaymentRecordStatusSuccess,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	// A successful payment settles the booking and confirms it if still pending.
	booking.PaymentStatus = entity.PaymentStatusPaid
	if booking.Status == entity.BookingStatusPending {
		booking.Status = entity.BookingStatusConfirmed
	}
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to settle booking after payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("settle booking %s: %w", req.BookingID, err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", req.Amount))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	valid := s.verifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature)
	if !valid {
		s.log.Warn("Payment verification failed",
			zap.String("gateway_payment_id", req.GatewayPaymentID))
	}

	existing, err := s.repo.Payment.FindByGatewayPaymentID(ctx, req.GatewayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("look up payment: %w", err)
	}

	return &response.VerifyPaymentResponse{
		Valid:            valid,
		Recorded:         existing != nil,
		GatewayPaymentID: req.GatewayPaymentID,
	}, nil
}

func (s *paymentService) GetAllPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return response.PaymentsToResponse(payments), nil
}

func (s *paymentService) GetPaymentsByBooking(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list payments by booking: %w", err)
	}

	return response.PaymentsToResponse(payments), nil
}
