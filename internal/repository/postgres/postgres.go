package postgres

import (
	"database/sql"
	"errors"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.BookingRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		VehicleRepository: NewVehicleRepository(db),
		BookingRepository: NewBookingRepository(db),
		PaymentRepository: NewPaymentRepository(db),
	}
}

const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

// mapConstraintError translates Postgres constraint violations on the
// bookings table into the business taxonomy: the range-overlap exclusion
// constraint becomes a scheduling conflict, the reference unique index a
// duplicate reference. Anything else passes through untouched.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqExclusionViolation:
		return domain.ErrSchedulingConflict
	case pqUniqueViolation:
		if pqErr.Constraint == "bookings_booking_reference_key" {
			return domain.ErrDuplicateReference
		}
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
