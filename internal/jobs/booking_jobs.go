package jobs

import (
	"context"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/logger"
)

// systemActor runs privileged transitions on behalf of the scheduler.
var systemActor = domain.Actor{UserID: 0, Role: domain.RoleAdmin}

// AutoActivateBookings activates CONFIRMED bookings whose start date has
// passed, flipping their vehicles to RENTED through the state machine.
func (jr *JobRunner) AutoActivateBookings() {
	jr.runWithRecovery("AutoActivateBookings", func() {
		ctx := context.Background()

		bookings, err := jr.bookingSvc.BookingsNeedingActivation(ctx)
		if err != nil {
			logger.Error("Failed to list bookings needing activation", "error", err)
			return
		}

		activated := 0
		for _, b := range bookings {
			if _, err := jr.bookingSvc.ActivateBooking(ctx, systemActor, b.ID); err != nil {
				logger.Error("Failed to auto-activate booking",
					"booking_reference", b.BookingReference, "error", err)
				continue
			}
			activated++
			logger.Debug("Auto-activated booking",
				"booking_reference", b.BookingReference, "vehicle_id", b.VehicleID)
		}

		logger.Info("Auto-activated bookings", "count", activated)
	})
}

// FlagOverdueBookings reports ACTIVE bookings whose end date has passed.
// The rental stays ACTIVE until an admin completes it with any late fee.
func (jr *JobRunner) FlagOverdueBookings() {
	jr.runWithRecovery("FlagOverdueBookings", func() {
		ctx := context.Background()

		bookings, err := jr.bookingSvc.OverdueBookings(ctx)
		if err != nil {
			logger.Error("Failed to list overdue bookings", "error", err)
			return
		}

		for _, b := range bookings {
			logger.Warn("Booking is overdue",
				"booking_reference", b.BookingReference,
				"user_id", b.UserID,
				"vehicle_id", b.VehicleID,
				"end_date", b.EndDate)
		}

		logger.Info("Flagged overdue bookings", "count", len(bookings))
	})
}
