package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Under 24 hours counts as one day", func(t *testing.T) {
		assert.Equal(t, int64(1), RentalDays(start, start.Add(18*time.Hour)))
	})

	t.Run("Exact days", func(t *testing.T) {
		assert.Equal(t, int64(3), RentalDays(start, start.Add(72*time.Hour)))
	})

	t.Run("Partial trailing day rounds down", func(t *testing.T) {
		assert.Equal(t, int64(2), RentalDays(start, start.Add(60*time.Hour)))
	})
}

func TestComputeTotal(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rate := decimal.NewFromInt(600)

	t.Run("Minimum one day", func(t *testing.T) {
		total := ComputeTotal(rate, start, start.Add(18*time.Hour))
		assert.True(t, total.Equal(decimal.NewFromInt(600)), "got %s", total)
	})

	t.Run("Three days", func(t *testing.T) {
		total := ComputeTotal(rate, start, start.Add(72*time.Hour))
		assert.True(t, total.Equal(decimal.NewFromInt(1800)), "got %s", total)
	})

	t.Run("Fractional rate rounds half up to two places", func(t *testing.T) {
		total := ComputeTotal(decimal.RequireFromString("199.995"), start, start.Add(18*time.Hour))
		assert.Equal(t, "200", total.String())
	})
}

func TestComputeSettlement(t *testing.T) {
	base := decimal.NewFromInt(1800)
	late := decimal.RequireFromString("150.50")
	damage := decimal.RequireFromString("99.49")

	final := ComputeSettlement(base, late, damage)
	assert.Equal(t, "2049.99", final.String())

	t.Run("Zero charges leave base unchanged", func(t *testing.T) {
		final := ComputeSettlement(base, decimal.Zero, decimal.Zero)
		assert.True(t, final.Equal(base))
	})
}
