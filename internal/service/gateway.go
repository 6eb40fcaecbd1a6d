package service

import (
	"context"
	"math/rand"

	"github.com/MysticHqra/Rydio/internal/domain"

	"github.com/shopspring/decimal"
)

// PaymentGateway abstracts the payment processor so tests can substitute a
// deterministic stub. The production implementation only simulates the
// gateway; real integration is out of scope.
type PaymentGateway interface {
	Charge(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (bool, error)
	Refund(ctx context.Context, payment *domain.Payment, amount decimal.Decimal) (bool, error)
}

type simulatedGateway struct {
	rng *rand.Rand
}

// NewSimulatedGateway returns a gateway that approves charges at a fixed
// per-method rate: 90% for credit cards, 95% for UPI, 85% otherwise.
// Refunds succeed 98% of the time.
func NewSimulatedGateway(rng *rand.Rand) PaymentGateway {
	return &simulatedGateway{rng: rng}
}

func (g *simulatedGateway) Charge(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (bool, error) {
	switch method {
	case domain.PaymentMethodCreditCard:
		return g.rng.Float64() < 0.90, nil
	case domain.PaymentMethodUPI:
		return g.rng.Float64() < 0.95, nil
	default:
		return g.rng.Float64() < 0.85, nil
	}
}

func (g *simulatedGateway) Refund(ctx context.Context, payment *domain.Payment, amount decimal.Decimal) (bool, error) {
	return g.rng.Float64() < 0.98, nil
}
