package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand represents a request to open a new buyer session
// with an empty seat selection.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewStartSessionCommand(sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid session data: %w", err)
//	}
//
//	handler := NewStartSessionCommandHandler(sessionStore)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start session: %w", err)
//	}
type StartSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartSessionCommand creates a command to open a new session.
// Validates that the session ID is a proper UUID.
func NewStartSessionCommand(sessionID kernel.UUID) (StartSessionCommand, error) {
	cmd := StartSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return StartSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session to open.
func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *StartSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
