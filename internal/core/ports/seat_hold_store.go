package ports

import (
	"context"
	"errors"
	"time"

	"boxoffice/internal/core/domain/model/kernel"
)

// ErrSeatAlreadyHeld is returned when a seat hold cannot be placed because
// another session currently holds the seat.
var ErrSeatAlreadyHeld = errors.New("seat is already held by another session")

// SeatHoldStore keeps short-lived seat reservations. A hold keeps a seat
// away from other buyers while its session works on a selection; holds
// expire on their own after the configured TTL.
type SeatHoldStore interface {
	// Place reserves the seat for the session until the TTL elapses.
	// Placing a hold the session already owns refreshes the TTL.
	// Returns ErrSeatAlreadyHeld if another session holds the seat.
	Place(ctx context.Context, seat kernel.SeatID, sessionID kernel.UUID, ttl time.Duration) error

	// Release drops the session's hold on the seat. Releasing a seat the
	// session does not hold is a no-op.
	Release(ctx context.Context, seat kernel.SeatID, sessionID kernel.UUID) error

	// ReleaseAll drops the session's holds on every given seat.
	ReleaseAll(ctx context.Context, seats []kernel.SeatID, sessionID kernel.UUID) error

	// Holder returns the session currently holding the seat.
	// Returns errs.ErrObjectNotFound when the seat is free.
	Holder(ctx context.Context, seat kernel.SeatID) (kernel.UUID, error)

	// PurgeExpired removes holds whose TTL has elapsed and reports how
	// many were dropped. Stores with native expiry may return 0.
	PurgeExpired(ctx context.Context) (int, error)
}
