package domain

import "errors"

// Business errors returned by the booking engine and its collaborators.
// All are recoverable by the caller; infrastructure failures are wrapped
// separately and never mapped onto these.
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrVehicleUnavailable     = errors.New("vehicle is not available")
	ErrSchedulingConflict     = errors.New("vehicle is already booked for the selected dates")
	ErrInvalidStateTransition = errors.New("invalid booking state transition")
	ErrAccessDenied           = errors.New("access denied")
	ErrDuplicateReference     = errors.New("duplicate booking reference")
	ErrInvalidCharge          = errors.New("charge amounts must not be negative")
)
