package commands

import (
	"context"
	"time"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/ports"
)

// syncHolds reconciles the hold store after an undo or redo changed the
// selection outside the normal select/deselect path: seats that appeared
// get a fresh hold, seats that disappeared get theirs released.
func syncHolds(
	ctx context.Context,
	holds ports.SeatHoldStore,
	sessionID kernel.UUID,
	before, after []kernel.SeatID,
	ttl time.Duration,
) error {
	was := make(map[string]struct{}, len(before))
	for _, seat := range before {
		was[seat.String()] = struct{}{}
	}
	is := make(map[string]struct{}, len(after))
	for _, seat := range after {
		is[seat.String()] = struct{}{}
	}

	for _, seat := range after {
		if _, ok := was[seat.String()]; ok {
			continue
		}
		if err := holds.Place(ctx, seat, sessionID, ttl); err != nil {
			return err
		}
	}

	for _, seat := range before {
		if _, ok := is[seat.String()]; ok {
			continue
		}
		if err := holds.Release(ctx, seat, sessionID); err != nil {
			return err
		}
	}

	return nil
}
