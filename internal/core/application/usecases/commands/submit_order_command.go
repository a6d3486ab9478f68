package commands

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// SubmitOrderCommand represents a request to turn a session's current seat
// selection into an order and run it through the processing stages.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(sessionID, "card", "CINE20", concessions)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(sessions, pipeline, holds, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	// The processing result is on the session's current order.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID     kernel.UUID
	paymentMethod string
	coupon        string
	concessions   []order.ConcessionItem

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the current selection
// as an order. The coupon may be empty; concession items must have been
// built through their constructor.
func NewSubmitOrderCommand(
	sessionID kernel.UUID,
	paymentMethod string,
	coupon string,
	concessions []order.ConcessionItem,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		coupon: coupon,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setConcessions(concessions),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the session submitting the order.
func (c SubmitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// PaymentMethod returns the buyer's payment method label.
func (c SubmitOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Coupon returns the coupon code, or empty when none was entered.
func (c SubmitOrderCommand) Coupon() string {
	return c.coupon
}

// Concessions returns the concession line items of the order.
func (c SubmitOrderCommand) Concessions() []order.ConcessionItem {
	concessions := make([]order.ConcessionItem, len(c.concessions))
	copy(concessions, c.concessions)
	return concessions
}

func (c *SubmitOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SubmitOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *SubmitOrderCommand) setConcessions(concessions []order.ConcessionItem) error {
	for _, item := range concessions {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.concessions = make([]order.ConcessionItem, len(concessions))
	copy(c.concessions, concessions)
	return nil
}
