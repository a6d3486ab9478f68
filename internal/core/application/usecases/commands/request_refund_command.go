package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrRequestRefundCommandIsNotConstructed = errors.New(
	"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
)

// RequestRefundCommand represents a request to refund an order: either
// the session's current order or a completed order from its history.
type RequestRefundCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	orderID   kernel.UUID
	hasOrder  bool

	guard guard.ConstructorGuard
}

// NewRequestRefundCommand creates a command to refund the session's
// current order.
func NewRequestRefundCommand(sessionID kernel.UUID) (RequestRefundCommand, error) {
	cmd := RequestRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return RequestRefundCommand{}, err
	}

	return cmd, nil
}

// NewRequestRefundCommandForOrder creates a command to refund a specific
// order from the session's purchase history.
func NewRequestRefundCommandForOrder(sessionID, orderID kernel.UUID) (RequestRefundCommand, error) {
	cmd, err := NewRequestRefundCommand(sessionID)
	if err != nil {
		return RequestRefundCommand{}, err
	}

	if err = orderID.Validate(); err != nil {
		return RequestRefundCommand{}, err
	}

	cmd.orderID = orderID
	cmd.hasOrder = true
	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

// SessionID returns the session requesting the refund.
func (c RequestRefundCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderID returns the order to refund and whether one was specified.
// Without an explicit order the refund targets the current order.
func (c RequestRefundCommand) OrderID() (kernel.UUID, bool) {
	return c.orderID, c.hasOrder
}

func (c *RequestRefundCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
