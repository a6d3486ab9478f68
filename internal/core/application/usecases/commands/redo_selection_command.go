package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrRedoSelectionCommandIsNotConstructed = errors.New(
	"RedoSelectionCommand must be created via NewRedoSelectionCommand constructor",
)

// RedoSelectionCommand represents a request to re-apply the most recently
// undone change to a session's seat selection.
type RedoSelectionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRedoSelectionCommand creates a command to redo an undone selection change.
func NewRedoSelectionCommand(sessionID kernel.UUID) (RedoSelectionCommand, error) {
	cmd := RedoSelectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return RedoSelectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RedoSelectionCommand) Validate() error {
	return c.guard.Validate(ErrRedoSelectionCommandIsNotConstructed)
}

// SessionID returns the session whose undone change is re-applied.
func (c RedoSelectionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *RedoSelectionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
