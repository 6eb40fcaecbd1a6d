package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MysticHqra/Rydio/internal/clock"
	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/logger"
	"github.com/MysticHqra/Rydio/internal/repository"
	"github.com/MysticHqra/Rydio/internal/utils"

	"github.com/shopspring/decimal"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	clock       clock.Clock
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	clk clock.Clock,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		clock:       clk,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor domain.Actor, input CreateBookingInput) (*domain.Booking, error) {
	now := s.clock.Now()
	if !input.StartDate.Before(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if !input.StartDate.After(now) {
		return nil, domain.ErrInvalidDateRange
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.ErrVehicleUnavailable
	}

	conflicts, err := s.bookingRepo.FindConflicts(ctx, vehicle.ID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("check conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, domain.ErrSchedulingConflict
	}

	deposit := vehicle.DailyRate
	if input.SecurityDeposit != nil {
		deposit = *input.SecurityDeposit
	}

	booking := &domain.Booking{
		BookingReference: utils.BookingReference(now),
		UserID:           actor.UserID,
		VehicleID:        vehicle.ID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		PickupLocation:   input.PickupLocation,
		ReturnLocation:   input.ReturnLocation,
		TotalAmount:      utils.ComputeTotal(vehicle.DailyRate, input.StartDate, input.EndDate),
		SecurityDeposit:  deposit,
		Status:           domain.BookingStatusPending,
		Notes:            input.Notes,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Created booking", "reference", booking.BookingReference, "user_id", actor.UserID, "vehicle_id", vehicle.ID)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return booking, nil
}

func (s *bookingService) GetBookingByReference(ctx context.Context, actor domain.Actor, reference string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return booking, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Booking, int64, error) {
	return s.bookingRepo.ListByUser(ctx, actor.UserID, page, pageSize)
}

func (s *bookingService) ListAllBookings(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Booking, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.ErrAccessDenied
	}
	return s.bookingRepo.ListAll(ctx, page, pageSize)
}

// UpdateBooking mutates the booking's mutable fields. Only the owning user
// may update, and only while the booking is still PENDING.
func (s *bookingService) UpdateBooking(ctx context.Context, actor domain.Actor, id int64, input UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID {
		return nil, domain.ErrAccessDenied
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidStateTransition
	}

	if input.PickupLocation != nil {
		booking.PickupLocation = *input.PickupLocation
	}
	if input.ReturnLocation != nil {
		booking.ReturnLocation = *input.ReturnLocation
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("Updated booking", "reference", booking.BookingReference, "user_id", actor.UserID)
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor domain.Actor, id int64, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID {
		return nil, domain.ErrAccessDenied
	}
	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrInvalidStateTransition
	}

	now := s.clock.Now()
	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = reason

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("Cancelled booking", "reference", booking.BookingReference, "user_id", actor.UserID)
	return booking, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidStateTransition
	}

	booking.Status = domain.BookingStatusConfirmed
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("Confirmed booking", "reference", booking.BookingReference)
	return booking, nil
}

// ActivateBooking moves a CONFIRMED booking to ACTIVE and flips the vehicle
// to RENTED. Both writes go through one database transaction.
func (s *bookingService) ActivateBooking(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrInvalidStateTransition
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusActive
	vehicle.Status = domain.VehicleStatusRented
	if err := s.bookingRepo.UpdateWithVehicle(ctx, booking, vehicle); err != nil {
		return nil, err
	}
	logger.Info("Activated booking", "reference", booking.BookingReference, "vehicle_id", vehicle.ID)
	return booking, nil
}

// CompleteBooking settles an ACTIVE booking: the vehicle returns to
// AVAILABLE, the actual return time is stamped and the late fee / damage
// charges are recorded. The stored total amount is not touched; the
// settlement figure is reported through the returned booking's fields.
func (s *bookingService) CompleteBooking(ctx context.Context, actor domain.Actor, id int64, lateFee, damageCharges decimal.Decimal) (*domain.Booking, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	if lateFee.IsNegative() || damageCharges.IsNegative() {
		return nil, domain.ErrInvalidCharge
	}
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusActive {
		return nil, domain.ErrInvalidStateTransition
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	booking.Status = domain.BookingStatusCompleted
	booking.ActualReturnDate = &now
	booking.LateFee = &lateFee
	booking.DamageCharges = &damageCharges
	vehicle.Status = domain.VehicleStatusAvailable

	if err := s.bookingRepo.UpdateWithVehicle(ctx, booking, vehicle); err != nil {
		return nil, err
	}

	settlement := utils.ComputeSettlement(booking.TotalAmount, lateFee, damageCharges)
	logger.Info("Completed booking", "reference", booking.BookingReference, "settlement", settlement.String())
	return booking, nil
}

// CheckAvailability reports whether the vehicle is free for [start, end].
func (s *bookingService) CheckAvailability(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, domain.ErrInvalidDateRange
	}
	conflicts, err := s.bookingRepo.FindConflicts(ctx, vehicleID, start, end)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

func (s *bookingService) BookingsNeedingActivation(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.FindNeedingActivation(ctx, s.clock.Now())
}

func (s *bookingService) OverdueBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.FindOverdue(ctx, s.clock.Now())
}
