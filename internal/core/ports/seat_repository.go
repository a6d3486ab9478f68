// Package ports defines the contracts between the application core and
// infrastructure: the sold-seat registry, the short-lived seat hold store,
// session storage and outbound event publishing. These interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"

	"boxoffice/internal/core/domain/model/kernel"
)

// SeatRepository is the persistence contract for the sold-seat registry.
// A seat listed here has been paid for and must never be sold again.
type SeatRepository interface {
	// MarkSold records every given seat as sold for the given order.
	// Fails if any of the seats is already sold; callers run it inside a
	// unit of work so a partial order never reaches the registry.
	MarkSold(ctx context.Context, orderID kernel.UUID, seats []kernel.SeatID) error

	// UnmarkSold returns the given seats to the sellable pool.
	// Used when a completed order is refunded.
	UnmarkSold(ctx context.Context, seats []kernel.SeatID) error

	// IsSold reports whether the given seat has been sold.
	IsSold(ctx context.Context, seat kernel.SeatID) (bool, error)

	// GetAllSold retrieves every sold seat, for seat map rendering.
	GetAllSold(ctx context.Context) ([]kernel.SeatID, error)
}
