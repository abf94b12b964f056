package usecase

import (
	"context"
	"fmt"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/pkg/mailer"
	"wheelio-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the row-level behavior of the
// postgres implementations closely enough for service-level tests, including
// the transactional availability check on booking creation.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*entity.User, error) {
	for _, user := range f.users {
		if user.ResetToken != nil && *user.ResetToken == token {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	user, _ := f.FindByEmail(ctx, email)
	return user != nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	delete(f.users, id)
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entity.Vehicle)}
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *entity.Vehicle) error {
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return f.vehicles[id], nil
}

func (f *fakeVehicleRepo) FindAll(_ context.Context) ([]*entity.Vehicle, error) {
	var result []*entity.Vehicle
	for _, vehicle := range f.vehicles {
		result = append(result, vehicle)
	}
	return result, nil
}

func (f *fakeVehicleRepo) FindByStatus(_ context.Context, status entity.VehicleStatus) ([]*entity.Vehicle, error) {
	var result []*entity.Vehicle
	for _, vehicle := range f.vehicles {
		if vehicle.Status == status {
			result = append(result, vehicle)
		}
	}
	return result, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, vehicle *entity.Vehicle) error {
	if _, ok := f.vehicles[vehicle.ID]; !ok {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.VehicleStatus) error {
	vehicle, ok := f.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s not found", id.String())
	}
	vehicle.Status = status
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.vehicles[id]; !ok {
		return fmt.Errorf("vehicle %s not found", id.String())
	}
	delete(f.vehicles, id)
	return nil
}

type fakeBookingRepo struct {
	vehicles *fakeVehicleRepo
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo(vehicles *fakeVehicleRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		vehicles: vehicles,
		bookings: make(map[uuid.UUID]*entity.Booking),
	}
}

func (f *fakeBookingRepo) CreateIfAvailable(ctx context.Context, booking *entity.Booking) error {
	vehicle, ok := f.vehicles.vehicles[booking.VehicleID]
	if !ok {
		return repository.ErrVehicleMissing
	}

	occupied, _ := f.ExistsActiveOverlap(ctx, booking.VehicleID, booking.StartDate, booking.EndDate)
	if occupied {
		return repository.ErrIntervalConflict
	}

	f.bookings[booking.ID] = booking
	vehicle.Status = entity.VehicleStatusBooked
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) FindByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.VehicleID == vehicleID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) FindByDriverID(_ context.Context, driverID uuid.UUID) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.DriverID != nil && *booking.DriverID == driverID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) FindActiveByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.VehicleID == vehicleID && booking.Status.IsActive() {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) ExistsActiveOverlap(_ context.Context, vehicleID uuid.UUID, start, end time.Time) (bool, error) {
	for _, booking := range f.bookings {
		if booking.VehicleID == vehicleID && booking.Status.IsActive() && booking.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}
	f.bookings[booking.ID] = booking
	return nil
}

type fakeDriverRepo struct {
	drivers map[uuid.UUID]*entity.DriverProfile
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: make(map[uuid.UUID]*entity.DriverProfile)}
}

func (f *fakeDriverRepo) Create(_ context.Context, driver *entity.DriverProfile) error {
	f.drivers[driver.UserID] = driver
	return nil
}

func (f *fakeDriverRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.DriverProfile, error) {
	return f.drivers[userID], nil
}

func (f *fakeDriverRepo) FindAll(_ context.Context) ([]*entity.DriverProfile, error) {
	var result []*entity.DriverProfile
	for _, driver := range f.drivers {
		result = append(result, driver)
	}
	return result, nil
}

func (f *fakeDriverRepo) FindByStatus(_ context.Context, status entity.DriverStatus) ([]*entity.DriverProfile, error) {
	var result []*entity.DriverProfile
	for _, driver := range f.drivers {
		if driver.Status == status {
			result = append(result, driver)
		}
	}
	return result, nil
}

func (f *fakeDriverRepo) Update(_ context.Context, driver *entity.DriverProfile) error {
	if _, ok := f.drivers[driver.UserID]; !ok {
		return fmt.Errorf("driver %s not found", driver.UserID.String())
	}
	f.drivers[driver.UserID] = driver
	return nil
}

func (f *fakeDriverRepo) Delete(_ context.Context, userID uuid.UUID) error {
	if _, ok := f.drivers[userID]; !ok {
		return fmt.Errorf("driver %s not found", userID.String())
	}
	delete(f.drivers, userID)
	return nil
}

type fakeDamageReportRepo struct {
	reports map[uuid.UUID]*entity.DamageReport
}

func newFakeDamageReportRepo() *fakeDamageReportRepo {
	return &fakeDamageReportRepo{reports: make(map[uuid.UUID]*entity.DamageReport)}
}

func (f *fakeDamageReportRepo) Create(_ context.Context, report *entity.DamageReport) error {
	f.reports[report.ID] = report
	return nil
}

func (f *fakeDamageReportRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DamageReport, error) {
	return f.reports[id], nil
}

func (f *fakeDamageReportRepo) FindAll(_ context.Context) ([]*entity.DamageReport, error) {
	var result []*entity.DamageReport
	for _, report := range f.reports {
		result = append(result, report)
	}
	return result, nil
}

func (f *fakeDamageReportRepo) FindByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*entity.DamageReport, error) {
	var result []*entity.DamageReport
	for _, report := range f.reports {
		if report.VehicleID == vehicleID {
			result = append(result, report)
		}
	}
	return result, nil
}

func (f *fakeDamageReportRepo) FindByReporterID(_ context.Context, userID uuid.UUID) ([]*entity.DamageReport, error) {
	var result []*entity.DamageReport
	for _, report := range f.reports {
		if report.ReportedByID == userID {
			result = append(result, report)
		}
	}
	return result, nil
}

func (f *fakeDamageReportRepo) FindByStatus(_ context.Context, status entity.DamageStatus) ([]*entity.DamageReport, error) {
	var result []*entity.DamageReport
	for _, report := range f.reports {
		if report.Status == status {
			result = append(result, report)
		}
	}
	return result, nil
}

func (f *fakeDamageReportRepo) Update(_ context.Context, report *entity.DamageReport) error {
	if _, ok := f.reports[report.ID]; !ok {
		return fmt.Errorf("damage report %s not found", report.ID.String())
	}
	f.reports[report.ID] = report
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context) ([]*entity.Payment, error) {
	var result []*entity.Payment
	for _, payment := range f.payments {
		result = append(result, payment)
	}
	return result, nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	var result []*entity.Payment
	for _, payment := range f.payments {
		if payment.BookingID == bookingID {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) FindByGatewayPaymentID(_ context.Context, gatewayPaymentID string) (*entity.Payment, error) {
	for _, payment := range f.payments {
		if payment.GatewayPaymentID == gatewayPaymentID {
			return payment, nil
		}
	}
	return nil, nil
}

type fakeFileRepo struct {
	files map[uuid.UUID]*entity.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[uuid.UUID]*entity.File)}
}

func (f *fakeFileRepo) Create(_ context.Context, file *entity.File) error {
	f.files[file.ID] = file
	return nil
}

func (f *fakeFileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.File, error) {
	return f.files[id], nil
}

// newTestRepository assembles a repository backed entirely by fakes.
func newTestRepository() *repository.Repository {
	vehicles := newFakeVehicleRepo()
	return &repository.Repository{
		User:         newFakeUserRepo(),
		Vehicle:      vehicles,
		Booking:      newFakeBookingRepo(vehicles),
		Driver:       newFakeDriverRepo(),
		DamageReport: newFakeDamageReportRepo(),
		Payment:      newFakePaymentRepo(),
		File:         newFakeFileRepo(),
	}
}

func newTestMailer() *mailer.Mailer {
	return mailer.NewMailer(utils.EmailConfig{}, "http://localhost:5173", zap.NewNop())
}

func seedUser(repo *repository.Repository, name string) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        name + "@example.com",
		PasswordHash: "x",
		FullName:     name,
		Role:         entity.RoleUser,
	}
	repo.User.Create(context.Background(), user)
	return user
}

func seedVehicle(repo *repository.Repository, status entity.VehicleStatus) *entity.Vehicle {
	vehicle := &entity.Vehicle{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        "Creta",
		Brand:       "Hyundai",
		Type:        entity.VehicleTypeSUV,
		PricePerDay: 2500,
		Location:    "Bengaluru",
		Status:      status,
	}
	repo.Vehicle.Create(context.Background(), vehicle)
	return vehicle
}
