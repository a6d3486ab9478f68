package commands

import (
	"context"

	"boxoffice/internal/core/ports"
)

// DeselectSeatCommandHandler removes a seat from a session's selection
// and releases the hold that came with it.
type DeselectSeatCommandHandler struct {
	sessions ports.SessionStore
	holds    ports.SeatHoldStore
}

// NewDeselectSeatCommandHandler creates a handler for seat deselection.
func NewDeselectSeatCommandHandler(
	sessions ports.SessionStore,
	holds ports.SeatHoldStore,
) DeselectSeatCommandHandler {
	return DeselectSeatCommandHandler{sessions: sessions, holds: holds}
}

// Handle records the deselection and drops the hold. Deselecting a seat
// that is not part of the selection is a harmless no-op, same as in the
// selection workspace itself.
func (h DeselectSeatCommandHandler) Handle(ctx context.Context, cmd DeselectSeatCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	s.DeselectSeat(cmd.SeatID())

	return h.holds.Release(ctx, cmd.SeatID(), cmd.SessionID())
}
