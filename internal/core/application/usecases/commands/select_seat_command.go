package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrSelectSeatCommandIsNotConstructed = errors.New(
	"SelectSeatCommand must be created via NewSelectSeatCommand constructor",
)

// SelectSeatCommand represents a request to add a seat to a session's
// current selection.
type SelectSeatCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	seatID    kernel.SeatID

	guard guard.ConstructorGuard
}

// NewSelectSeatCommand creates a command to select a seat.
// Both the session ID and the seat ID must be valid.
func NewSelectSeatCommand(sessionID kernel.UUID, seatID kernel.SeatID) (SelectSeatCommand, error) {
	cmd := SelectSeatCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setSeatID(seatID),
	); err != nil {
		return SelectSeatCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectSeatCommand) Validate() error {
	return c.guard.Validate(ErrSelectSeatCommandIsNotConstructed)
}

// SessionID returns the session performing the selection.
func (c SelectSeatCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SeatID returns the seat being selected.
func (c SelectSeatCommand) SeatID() kernel.SeatID {
	return c.seatID
}

func (c *SelectSeatCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SelectSeatCommand) setSeatID(seatID kernel.SeatID) error {
	if err := seatID.Validate(); err != nil {
		return err
	}

	c.seatID = seatID
	return nil
}
