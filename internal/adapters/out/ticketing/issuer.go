// Package ticketing issues admission tickets for paid orders. Tickets get
// a unique code per seat; delivery to the buyer happens downstream off the
// order completed event.
package ticketing

import (
	"context"
	"log/slog"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
)

// CodeIssuer generates one admission code per ticket of the order.
type CodeIssuer struct {
	logger *slog.Logger
}

// NewCodeIssuer creates the admission code issuer.
func NewCodeIssuer(logger *slog.Logger) *CodeIssuer {
	return &CodeIssuer{
		logger: logger.With("component", "ticket_issuer"),
	}
}

// Issue generates the codes for the order's tickets.
func (i *CodeIssuer) Issue(_ context.Context, o *order.Order) error {
	for _, ticket := range o.Tickets() {
		code := kernel.NewUUID()
		i.logger.Info("ticket issued",
			"order_id", o.ID().String(),
			"seat", ticket.SeatID().String(),
			"code", code.String(),
		)
	}

	return nil
}
