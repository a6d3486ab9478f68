package commands

import (
	"errors"

	"boxoffice/internal/pkg/guard"
)

var ErrCancelAbandonedOrdersCommandIsNotConstructed = errors.New(
	"CancelAbandonedOrdersCommand must be created via NewCancelAbandonedOrdersCommand constructor",
)

// CancelAbandonedOrdersCommand triggers a sweep over all sessions looking for
// orders that were built but never resolved. An order counts as abandoned when
// it is still moving through the purchase pipeline past the configured age,
// which usually means the buyer walked away mid-checkout.
//
// Example:
//
//	cmd := NewCancelAbandonedOrdersCommand()
//	handler := NewCancelAbandonedOrdersCommandHandler(sessions, 30*time.Minute)
//	err := handler.Handle(ctx, cmd)
type CancelAbandonedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelAbandonedOrdersCommand creates a new command to trigger the
// abandoned order sweep. This is a parameterless command.
func NewCancelAbandonedOrdersCommand() CancelAbandonedOrdersCommand {
	return CancelAbandonedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CancelAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrCancelAbandonedOrdersCommandIsNotConstructed,
	)
}
