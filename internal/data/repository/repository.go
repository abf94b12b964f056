package repository

import (
	"wheelio-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Vehicle      VehicleRepository
	Booking      BookingRepository
	Driver       DriverRepository
	DamageReport DamageReportRepository
	Payment      PaymentRepository
	File         FileRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Vehicle:      NewVehicleRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Driver:       NewDriverRepository(db, log),
		DamageReport: NewDamageReportRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		File:         NewFileRepository(db, log),
	}
}
