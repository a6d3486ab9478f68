package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrDeselectSeatCommandIsNotConstructed = errors.New(
	"DeselectSeatCommand must be created via NewDeselectSeatCommand constructor",
)

// DeselectSeatCommand represents a request to remove a seat from a
// session's current selection.
type DeselectSeatCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	seatID    kernel.SeatID

	guard guard.ConstructorGuard
}

// NewDeselectSeatCommand creates a command to deselect a seat.
func NewDeselectSeatCommand(sessionID kernel.UUID, seatID kernel.SeatID) (DeselectSeatCommand, error) {
	cmd := DeselectSeatCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setSeatID(seatID),
	); err != nil {
		return DeselectSeatCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeselectSeatCommand) Validate() error {
	return c.guard.Validate(ErrDeselectSeatCommandIsNotConstructed)
}

// SessionID returns the session performing the deselection.
func (c DeselectSeatCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// SeatID returns the seat being deselected.
func (c DeselectSeatCommand) SeatID() kernel.SeatID {
	return c.seatID
}

func (c *DeselectSeatCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *DeselectSeatCommand) setSeatID(seatID kernel.SeatID) error {
	if err := seatID.Validate(); err != nil {
		return err
	}

	c.seatID = seatID
	return nil
}
