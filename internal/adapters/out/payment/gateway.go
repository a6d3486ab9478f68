// Package payment provides the payment gateway used by the payment
// processing stage. The current implementation simulates a card gateway;
// swapping in a real provider only touches this package.
package payment

import (
	"context"
	"errors"
	"log/slog"
)

// DeclinedCardMethod is the payment method label the simulated gateway
// declines. Useful for exercising the failure path end to end.
const DeclinedCardMethod = "Tarjeta rechazada"

// ErrCardDeclined is returned when the gateway declines the charge.
var ErrCardDeclined = errors.New("Tarjeta rechazada")

// SimulatedGateway approves every charge except the declined-card method.
type SimulatedGateway struct {
	logger *slog.Logger
}

// NewSimulatedGateway creates the simulated payment gateway.
func NewSimulatedGateway(logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		logger: logger.With("component", "payment_gateway"),
	}
}

// Charge runs the simulated authorization.
func (g *SimulatedGateway) Charge(_ context.Context, paymentMethod string, amount float64) error {
	if paymentMethod == DeclinedCardMethod {
		g.logger.Warn("charge declined", "payment_method", paymentMethod, "amount", amount)
		return ErrCardDeclined
	}

	g.logger.Info("charge approved", "payment_method", paymentMethod, "amount", amount)
	return nil
}
