package commands

import (
	"context"
	"time"

	"boxoffice/internal/core/ports"
)

// UndoSelectionCommandHandler steps a session's selection back one state
// and reconciles seat holds with the restored selection.
type UndoSelectionCommandHandler struct {
	sessions ports.SessionStore
	holds    ports.SeatHoldStore
	holdTTL  time.Duration
}

// NewUndoSelectionCommandHandler creates a handler for selection undo.
func NewUndoSelectionCommandHandler(
	sessions ports.SessionStore,
	holds ports.SeatHoldStore,
	holdTTL time.Duration,
) UndoSelectionCommandHandler {
	return UndoSelectionCommandHandler{sessions: sessions, holds: holds, holdTTL: holdTTL}
}

// Handle restores the previous selection state. Undoing past the initial
// empty state is a no-op, not an error.
func (h UndoSelectionCommandHandler) Handle(ctx context.Context, cmd UndoSelectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	before := s.SelectedSeats()
	if !s.Undo() {
		return nil
	}

	return syncHolds(ctx, h.holds, cmd.SessionID(), before, s.SelectedSeats(), h.holdTTL)
}
