package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrFinishOrderCycleCommandIsNotConstructed = errors.New(
	"FinishOrderCycleCommand must be created via NewFinishOrderCycleCommand constructor",
)

// FinishOrderCycleCommand represents a request to close out the session's
// current purchase: archive a completed order and start a fresh selection.
type FinishOrderCycleCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishOrderCycleCommand creates a command to finish the purchase cycle.
func NewFinishOrderCycleCommand(sessionID kernel.UUID) (FinishOrderCycleCommand, error) {
	cmd := FinishOrderCycleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return FinishOrderCycleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCycleCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCycleCommandIsNotConstructed)
}

// SessionID returns the session closing out its purchase.
func (c FinishOrderCycleCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *FinishOrderCycleCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
