package commands

import (
	"context"

	"boxoffice/internal/core/ports"
)

// FinishOrderCycleCommandHandler closes out a purchase cycle: a completed
// current order is archived to the session's history, the selection is
// reset and any leftover seat holds are released.
type FinishOrderCycleCommandHandler struct {
	sessions ports.SessionStore
	holds    ports.SeatHoldStore
}

// NewFinishOrderCycleCommandHandler creates a handler for cycle completion.
func NewFinishOrderCycleCommandHandler(
	sessions ports.SessionStore,
	holds ports.SeatHoldStore,
) FinishOrderCycleCommandHandler {
	return FinishOrderCycleCommandHandler{sessions: sessions, holds: holds}
}

// Handle archives and resets. Finishing with no current order, or with an
// unfinished one, still resets the selection; only Completed orders reach
// the history.
func (h FinishOrderCycleCommandHandler) Handle(ctx context.Context, cmd FinishOrderCycleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	held := s.SelectedSeats()
	s.FinishCycle()

	return h.holds.ReleaseAll(ctx, held, cmd.SessionID())
}
