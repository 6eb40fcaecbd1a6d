package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const referenceTimestampLayout = "20060102150405"

// BookingReference builds a human-readable booking reference from the
// creation instant: "BK" + yyyyMMddHHmmss. Two bookings created within the
// same second collide; the bookings table carries a unique index on the
// reference and callers retry once on a duplicate.
func BookingReference(now time.Time) string {
	return "BK" + now.Format(referenceTimestampLayout)
}

// TransactionID builds a payment transaction id: "TXN" + yyyyMMddHHmmss +
// a 4-digit zero-padded random suffix.
func TransactionID(now time.Time, rng *rand.Rand) string {
	return fmt.Sprintf("TXN%s%04d", now.Format(referenceTimestampLayout), rng.Intn(10000))
}
