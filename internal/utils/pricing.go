package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// RentalDays returns the number of chargeable days for a rental span.
// Whole days are counted by rounding the span down; anything under a full
// day is still charged as one day (minimum one-day rule).
func RentalDays(start, end time.Time) int64 {
	days := int64(end.Sub(start).Hours() / hoursPerDay)
	if days == 0 {
		days = 1
	}
	return days
}

// ComputeTotal calculates the rental total from the vehicle's daily rate
// and the booked span. The result is scaled to 2 decimal places, rounding
// half up.
func ComputeTotal(dailyRate decimal.Decimal, start, end time.Time) decimal.Decimal {
	days := RentalDays(start, end)
	return dailyRate.Mul(decimal.NewFromInt(days)).Round(2)
}

// ComputeSettlement reports the final amount owed at completion: the
// original total plus late fee and damage charges. The booking's stored
// total is never mutated; the settlement figure is for the caller's
// follow-up payment collection only.
func ComputeSettlement(baseAmount, lateFee, damageCharges decimal.Decimal) decimal.Decimal {
	return baseAmount.Add(lateFee).Add(damageCharges).Round(2)
}
