package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/MysticHqra/Rydio/internal/clock"
	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/logger"
	"github.com/MysticHqra/Rydio/internal/repository"
	"github.com/MysticHqra/Rydio/internal/utils"

	"github.com/shopspring/decimal"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	gateway     PaymentGateway
	clock       clock.Clock
	rng         *rand.Rand
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	gateway PaymentGateway,
	clk clock.Clock,
	rng *rand.Rand,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		clock:       clk,
		rng:         rng,
	}
}

func (s *paymentService) ProcessPayment(ctx context.Context, actor domain.Actor, input PaymentInput) (*domain.Payment, error) {
	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID {
		return nil, domain.ErrAccessDenied
	}

	now := s.clock.Now()
	payment := &domain.Payment{
		TransactionID: utils.TransactionID(now, s.rng),
		BookingID:     booking.ID,
		UserID:        actor.UserID,
		Amount:        input.Amount,
		PaymentType:   input.PaymentType,
		PaymentMethod: input.PaymentMethod,
		Status:        domain.PaymentStatusPending,
		Notes:         input.Notes,
	}

	ok, err := s.gateway.Charge(ctx, input.PaymentMethod, input.Amount)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	if ok {
		paidAt := s.clock.Now()
		payment.Status = domain.PaymentStatusSuccess
		payment.PaymentDate = &paidAt
		payment.GatewayReference = fmt.Sprintf("GW%d", paidAt.UnixMilli())
		payment.GatewayResponse = "Payment successful"
	} else {
		payment.Status = domain.PaymentStatusFailed
		payment.GatewayResponse = "Payment failed - insufficient funds or invalid card details"
	}

	// The payment row is the record of money taken, so it persists before
	// any booking mutation. A failed insert must not leave the booking
	// CONFIRMED with no payment behind it.
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	// A successful booking payment confirms the pending booking.
	if ok && input.PaymentType == domain.PaymentTypeBooking && booking.Status == domain.BookingStatusPending {
		booking.Status = domain.BookingStatusConfirmed
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return nil, err
		}
	}

	logger.Info("Processed payment", "transaction_id", payment.TransactionID,
		"booking_reference", booking.BookingReference, "status", payment.Status)
	return payment, nil
}

func (s *paymentService) ProcessRefund(ctx context.Context, actor domain.Actor, paymentID int64, refundAmount decimal.Decimal, reason string) (*domain.Payment, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentStatusSuccess {
		return nil, domain.ErrInvalidStateTransition
	}
	if refundAmount.GreaterThan(payment.Amount) {
		return nil, domain.ErrInvalidCharge
	}

	ok, err := s.gateway.Refund(ctx, payment, refundAmount)
	if err != nil {
		return nil, fmt.Errorf("refund gateway: %w", err)
	}
	if !ok {
		return payment, nil
	}

	now := s.clock.Now()
	payment.RefundAmount = &refundAmount
	payment.RefundDate = &now
	if refundAmount.Equal(payment.Amount) {
		payment.Status = domain.PaymentStatusRefunded
	} else {
		payment.Status = domain.PaymentStatusPartialRefund
	}
	if payment.Notes != "" {
		payment.Notes += "; "
	}
	payment.Notes += "Refund reason: " + reason

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Processed refund", "transaction_id", payment.TransactionID, "amount", refundAmount.String())
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, actor domain.Actor, id int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return payment, nil
}

func (s *paymentService) GetPaymentByTransactionID(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if payment.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return payment, nil
}

func (s *paymentService) ListMyPayments(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Payment, int64, error) {
	return s.paymentRepo.ListByUser(ctx, actor.UserID, page, pageSize)
}

// ListPaymentsByStatus is the admin reconciliation view: all payments in a
// given status across users, e.g. PENDING rows stuck mid-gateway.
func (s *paymentService) ListPaymentsByStatus(ctx context.Context, actor domain.Actor, status domain.PaymentStatus) ([]domain.Payment, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return s.paymentRepo.ListByStatus(ctx, status)
}

func (s *paymentService) ListBookingPayments(ctx context.Context, actor domain.Actor, bookingID int64) ([]domain.Payment, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}
	return s.paymentRepo.ListByBooking(ctx, bookingID)
}
