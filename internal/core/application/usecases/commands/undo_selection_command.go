package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrUndoSelectionCommandIsNotConstructed = errors.New(
	"UndoSelectionCommand must be created via NewUndoSelectionCommand constructor",
)

// UndoSelectionCommand represents a request to step a session's seat
// selection back to its previous state.
type UndoSelectionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUndoSelectionCommand creates a command to undo the last selection change.
func NewUndoSelectionCommand(sessionID kernel.UUID) (UndoSelectionCommand, error) {
	cmd := UndoSelectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return UndoSelectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UndoSelectionCommand) Validate() error {
	return c.guard.Validate(ErrUndoSelectionCommandIsNotConstructed)
}

// SessionID returns the session whose selection is stepped back.
func (c UndoSelectionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *UndoSelectionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
