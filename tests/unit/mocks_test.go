package unit

import (
	"context"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int64), args.Error(2)
}
func (m *MockVehicleRepo) ListByOwner(ctx context.Context, ownerID int64, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int64), args.Error(2)
}
func (m *MockVehicleRepo) Search(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int64), args.Error(2)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateWithVehicle(ctx context.Context, booking *domain.Booking, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, booking, vehicle)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}
func (m *MockBookingRepo) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}
func (m *MockBookingRepo) FindConflicts(ctx context.Context, vehicleID int64, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) FindNeedingActivation(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) FindOverdue(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}
func (m *MockPaymentRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// stubGateway is a deterministic PaymentGateway for service tests.
type stubGateway struct {
	chargeOK bool
	refundOK bool
}

func (g *stubGateway) Charge(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (bool, error) {
	return g.chargeOK, nil
}

func (g *stubGateway) Refund(ctx context.Context, payment *domain.Payment, amount decimal.Decimal) (bool, error) {
	return g.refundOK, nil
}
