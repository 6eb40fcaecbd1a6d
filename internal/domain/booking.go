package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions are permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type Booking struct {
	ID                 int64            `json:"id"`
	BookingReference   string           `json:"booking_reference"`
	UserID             int64            `json:"user_id"`
	VehicleID          int64            `json:"vehicle_id"`
	StartDate          time.Time        `json:"start_date"`
	EndDate            time.Time        `json:"end_date"`
	PickupLocation     string           `json:"pickup_location"`
	ReturnLocation     string           `json:"return_location"`
	TotalAmount        decimal.Decimal  `json:"total_amount"`
	SecurityDeposit    decimal.Decimal  `json:"security_deposit"`
	Status             BookingStatus    `json:"status"`
	Notes              string           `json:"notes,omitempty"`
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	ActualReturnDate   *time.Time       `json:"actual_return_date,omitempty"`
	LateFee            *decimal.Decimal `json:"late_fee,omitempty"`
	DamageCharges      *decimal.Decimal `json:"damage_charges,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
