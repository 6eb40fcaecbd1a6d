package repository

import (
	"context"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int64, error)
	ListByOwner(ctx context.Context, ownerID int64, page, pageSize int32) ([]domain.Vehicle, int64, error)
	Search(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// UpdateWithVehicle persists the booking and the vehicle in a single
	// database transaction. Either both rows commit or neither does.
	UpdateWithVehicle(ctx context.Context, booking *domain.Booking, vehicle *domain.Vehicle) error
	ListByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Booking, int64, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.Booking, int64, error)
	// FindConflicts returns bookings for the vehicle whose interval
	// intersects [start, end] and whose status is CONFIRMED or ACTIVE.
	// Touching endpoints count as a conflict.
	FindConflicts(ctx context.Context, vehicleID int64, start, end time.Time) ([]domain.Booking, error)
	FindNeedingActivation(ctx context.Context, now time.Time) ([]domain.Booking, error)
	FindOverdue(ctx context.Context, now time.Time) ([]domain.Booking, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	ListByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Payment, int64, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
}
