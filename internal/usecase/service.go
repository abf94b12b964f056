package usecase

import (
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/pkg/mailer"
	"wheelio-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Vehicle      VehicleService
	Booking      BookingService
	Driver       DriverService
	DamageReport DamageReportService
	Payment      PaymentService
	File         FileService
}

func NewService(repo *repository.Repository, config *utils.Config, mail *mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, mail, log),
		Vehicle:      NewVehicleService(repo, log),
		Booking:      NewBookingService(repo, mail, log),
		Driver:       NewDriverService(repo, log),
		DamageReport: NewDamageReportService(repo, log),
		Payment:      NewPaymentService(repo, config, log),
		File:         NewFileService(repo.File, log),
	}
}
