package unit

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/MysticHqra/Rydio/internal/clock"
	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_ProcessPayment(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 30, 45, 0, time.UTC)
	fixed := clock.NewFixed(now)
	rng := rand.New(rand.NewSource(1))
	ctx := context.Background()

	pendingBooking := func() *domain.Booking {
		return &domain.Booking{
			ID: 10, UserID: 7, BookingReference: "BK20250315093045",
			Status:      domain.BookingStatusPending,
			TotalAmount: decimal.NewFromInt(1800),
		}
	}

	t.Run("Success Confirms Booking", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewPaymentService(paymentRepo, bookingRepo, &stubGateway{chargeOK: true}, fixed, rng)

		booking := pendingBooking()
		bookingRepo.On("GetByID", ctx, int64(10)).Return(booking, nil)
		bookingRepo.On("Update", ctx, booking).Return(nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		payment, err := svc.ProcessPayment(ctx, userActor, service.PaymentInput{
			BookingID:     10,
			Amount:        decimal.NewFromInt(1800),
			PaymentType:   domain.PaymentTypeBooking,
			PaymentMethod: domain.PaymentMethodCreditCard,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusSuccess, payment.Status)
		assert.Regexp(t, `^TXN20250315093045\d{4}$`, payment.TransactionID)
		require.NotNil(t, payment.PaymentDate)
		assert.NotEmpty(t, payment.GatewayReference)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Deposit Does Not Confirm", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewPaymentService(paymentRepo, bookingRepo, &stubGateway{chargeOK: true}, fixed, rng)

		booking := pendingBooking()
		bookingRepo.On("GetByID", ctx, int64(10)).Return(booking, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		_, err := svc.ProcessPayment(ctx, userActor, service.PaymentInput{
			BookingID:     10,
			Amount:        decimal.NewFromInt(600),
			PaymentType:   domain.PaymentTypeSecurityDeposit,
			PaymentMethod: domain.PaymentMethodUPI,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Declined Charge", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewPaymentService(paymentRepo, bookingRepo, &stubGateway{chargeOK: false}, fixed, rng)

		booking := pendingBooking()
		bookingRepo.On("GetByID", ctx, int64(10)).Return(booking, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		payment, err := svc.ProcessPayment(ctx, userActor, service.PaymentInput{
			BookingID:     10,
			Amount:        decimal.NewFromInt(1800),
			PaymentType:   domain.PaymentTypeBooking,
			PaymentMethod: domain.PaymentMethodCreditCard,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
		assert.Contains(t, payment.GatewayResponse, "Payment failed")
		assert.Equal(t, domain.BookingStatusPending, booking.Status, "a declined charge leaves the booking alone")
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Failed Insert Leaves Booking Pending", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewPaymentService(paymentRepo, bookingRepo, &stubGateway{chargeOK: true}, fixed, rng)

		booking := pendingBooking()
		bookingRepo.On("GetByID", ctx, int64(10)).Return(booking, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(assert.AnError)

		_, err := svc.ProcessPayment(ctx, userActor, service.PaymentInput{
			BookingID:     10,
			Amount:        decimal.NewFromInt(1800),
			PaymentType:   domain.PaymentTypeBooking,
			PaymentMethod: domain.PaymentMethodCreditCard,
		})
		require.Error(t, err)
		assert.Equal(t, domain.BookingStatusPending, booking.Status, "no payment row, no confirmation")
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Not Booking Owner", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewPaymentService(paymentRepo, bookingRepo, &stubGateway{chargeOK: true}, fixed, rng)

		bookingRepo.On("GetByID", ctx, int64(10)).Return(pendingBooking(), nil)

		stranger := domain.Actor{UserID: 42, Role: domain.RoleUser}
		_, err := svc.ProcessPayment(ctx, stranger, service.PaymentInput{
			BookingID:     10,
			Amount:        decimal.NewFromInt(1800),
			PaymentType:   domain.PaymentTypeBooking,
			PaymentMethod: domain.PaymentMethodUPI,
		})
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_ProcessRefund(t *testing.T) {
	now := time.Date(2025, 3, 20, 14, 0, 0, 0, time.UTC)
	fixed := clock.NewFixed(now)
	rng := rand.New(rand.NewSource(1))
	ctx := context.Background()

	successfulPayment := func() *domain.Payment {
		return &domain.Payment{
			ID: 5, TransactionID: "TXN202503150930450042", UserID: 7,
			Amount: decimal.NewFromInt(1800),
			Status: domain.PaymentStatusSuccess,
			Notes:  "booking payment",
		}
	}

	t.Run("Full Refund", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{refundOK: true}, fixed, rng)

		paymentRepo.On("GetByID", ctx, int64(5)).Return(successfulPayment(), nil)
		paymentRepo.On("Update", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		refund := decimal.NewFromInt(1800)
		payment, err := svc.ProcessRefund(ctx, adminActor, 5, refund, "trip cancelled")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, payment.Status)
		require.NotNil(t, payment.RefundAmount)
		assert.True(t, payment.RefundAmount.Equal(refund))
		require.NotNil(t, payment.RefundDate)
		assert.Equal(t, now, *payment.RefundDate)
		assert.Contains(t, payment.Notes, "Refund reason: trip cancelled")
	})

	t.Run("Partial Refund", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{refundOK: true}, fixed, rng)

		paymentRepo.On("GetByID", ctx, int64(5)).Return(successfulPayment(), nil)
		paymentRepo.On("Update", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		payment, err := svc.ProcessRefund(ctx, adminActor, 5, decimal.NewFromInt(500), "late pickup credit")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPartialRefund, payment.Status)
	})

	t.Run("Exceeds Original", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{refundOK: true}, fixed, rng)

		paymentRepo.On("GetByID", ctx, int64(5)).Return(successfulPayment(), nil)

		_, err := svc.ProcessRefund(ctx, adminActor, 5, decimal.NewFromInt(2000), "too much")
		assert.ErrorIs(t, err, domain.ErrInvalidCharge)
		paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Only Success Refundable", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{refundOK: true}, fixed, rng)

		p := successfulPayment()
		p.Status = domain.PaymentStatusFailed
		paymentRepo.On("GetByID", ctx, int64(5)).Return(p, nil)

		_, err := svc.ProcessRefund(ctx, adminActor, 5, decimal.NewFromInt(100), "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})

	t.Run("Non Admin", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{refundOK: true}, fixed, rng)

		_, err := svc.ProcessRefund(ctx, userActor, 5, decimal.NewFromInt(100), "nope")
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
		paymentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_ListPaymentsByStatus(t *testing.T) {
	now := time.Date(2025, 3, 20, 14, 0, 0, 0, time.UTC)
	fixed := clock.NewFixed(now)
	rng := rand.New(rand.NewSource(1))
	ctx := context.Background()

	t.Run("Admin", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{}, fixed, rng)

		stuck := []domain.Payment{{ID: 5, Status: domain.PaymentStatusPending}}
		paymentRepo.On("ListByStatus", ctx, domain.PaymentStatusPending).Return(stuck, nil)

		payments, err := svc.ListPaymentsByStatus(ctx, adminActor, domain.PaymentStatusPending)
		require.NoError(t, err)
		assert.Equal(t, stuck, payments)
	})

	t.Run("Non Admin", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{}, fixed, rng)

		_, err := svc.ListPaymentsByStatus(ctx, userActor, domain.PaymentStatusPending)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
		paymentRepo.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_GetPayment(t *testing.T) {
	now := time.Date(2025, 3, 20, 14, 0, 0, 0, time.UTC)
	fixed := clock.NewFixed(now)
	rng := rand.New(rand.NewSource(1))
	ctx := context.Background()

	payment := &domain.Payment{ID: 5, UserID: 7, Status: domain.PaymentStatusSuccess}

	t.Run("Owner", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{}, fixed, rng)
		paymentRepo.On("GetByID", ctx, int64(5)).Return(payment, nil)

		got, err := svc.GetPayment(ctx, userActor, 5)
		require.NoError(t, err)
		assert.Equal(t, payment, got)
	})

	t.Run("Stranger", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := service.NewPaymentService(paymentRepo, new(MockBookingRepo), &stubGateway{}, fixed, rng)
		paymentRepo.On("GetByID", ctx, int64(5)).Return(payment, nil)

		stranger := domain.Actor{UserID: 42, Role: domain.RoleUser}
		_, err := svc.GetPayment(ctx, stranger, 5)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})
}
