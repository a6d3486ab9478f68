package commands

import (
	"context"
	"time"

	"boxoffice/internal/core/ports"
)

// RedoSelectionCommandHandler re-applies the most recently undone change
// to a session's selection and reconciles seat holds with the result.
type RedoSelectionCommandHandler struct {
	sessions ports.SessionStore
	holds    ports.SeatHoldStore
	holdTTL  time.Duration
}

// NewRedoSelectionCommandHandler creates a handler for selection redo.
func NewRedoSelectionCommandHandler(
	sessions ports.SessionStore,
	holds ports.SeatHoldStore,
	holdTTL time.Duration,
) RedoSelectionCommandHandler {
	return RedoSelectionCommandHandler{sessions: sessions, holds: holds, holdTTL: holdTTL}
}

// Handle re-applies the undone change. With nothing to redo this is a
// no-op, not an error.
func (h RedoSelectionCommandHandler) Handle(ctx context.Context, cmd RedoSelectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	before := s.SelectedSeats()
	if !s.Redo() {
		return nil
	}

	return syncHolds(ctx, h.holds, cmd.SessionID(), before, s.SelectedSeats(), h.holdTTL)
}
