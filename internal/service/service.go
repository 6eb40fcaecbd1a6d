package service

import (
	"context"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error) // user, access token
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName, email, phoneNumber string) (*domain.User, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, actor domain.Actor, id int64) error
	ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int64, error)
	ListMyVehicles(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Vehicle, int64, error)
	SearchVehicles(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int64, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor domain.Actor, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error)
	GetBookingByReference(ctx context.Context, actor domain.Actor, reference string) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Booking, int64, error)
	ListAllBookings(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Booking, int64, error)
	UpdateBooking(ctx context.Context, actor domain.Actor, id int64, input UpdateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actor domain.Actor, id int64, reason string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error)
	ActivateBooking(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, actor domain.Actor, id int64, lateFee, damageCharges decimal.Decimal) (*domain.Booking, error)
	CheckAvailability(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error)
	BookingsNeedingActivation(ctx context.Context) ([]domain.Booking, error)
	OverdueBookings(ctx context.Context) ([]domain.Booking, error)
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, actor domain.Actor, input PaymentInput) (*domain.Payment, error)
	ProcessRefund(ctx context.Context, actor domain.Actor, paymentID int64, refundAmount decimal.Decimal, reason string) (*domain.Payment, error)
	GetPayment(ctx context.Context, actor domain.Actor, id int64) (*domain.Payment, error)
	GetPaymentByTransactionID(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Payment, error)
	ListMyPayments(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Payment, int64, error)
	ListPaymentsByStatus(ctx context.Context, actor domain.Actor, status domain.PaymentStatus) ([]domain.Payment, error)
	ListBookingPayments(ctx context.Context, actor domain.Actor, bookingID int64) ([]domain.Payment, error)
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

type CreateBookingInput struct {
	VehicleID       int64
	StartDate       time.Time
	EndDate         time.Time
	PickupLocation  string
	ReturnLocation  string
	SecurityDeposit *decimal.Decimal
	Notes           string
}

type UpdateBookingInput struct {
	PickupLocation *string
	ReturnLocation *string
	Notes          *string
}

type PaymentInput struct {
	BookingID     int64
	Amount        decimal.Decimal
	PaymentType   domain.PaymentType
	PaymentMethod domain.PaymentMethod
	Notes         string
}
