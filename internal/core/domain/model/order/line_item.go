package order

import (
	"errors"
	"fmt"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/pkg/guard"
)

// DefaultTicketPrice is the standard single-seat ticket price used when the
// caller does not price seats individually.
const DefaultTicketPrice = 10000.0

var (
	// ErrTicketItemIsNotConstructed is returned when a TicketItem was not
	// created through NewTicketItem.
	ErrTicketItemIsNotConstructed = errors.New("TicketItem must be created via NewTicketItem constructor")

	// ErrConcessionItemIsNotConstructed is returned when a ConcessionItem was
	// not created through NewConcessionItem.
	ErrConcessionItemIsNotConstructed = errors.New("ConcessionItem must be created via NewConcessionItem constructor")
)

// TicketItem is one seat ticket inside an order: the seat it grants and its
// unit price. Immutable once constructed.
type TicketItem struct { //nolint:recvcheck //using for validation
	seatID kernel.SeatID
	price  float64

	guard guard.ConstructorGuard
}

// NewTicketItem creates a ticket line item for a seat. The price must be
// positive; use DefaultTicketPrice for standard seats.
func NewTicketItem(seatID kernel.SeatID, price float64) (TicketItem, error) {
	item := TicketItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setSeatID(seatID), item.setPrice(price)); err != nil {
		return TicketItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewTicketItem.
func (t TicketItem) Validate() error {
	return t.guard.Validate(ErrTicketItemIsNotConstructed)
}

// SeatID returns the seat this ticket grants.
func (t TicketItem) SeatID() kernel.SeatID {
	return t.seatID
}

// Price returns the ticket's unit price.
func (t TicketItem) Price() float64 {
	return t.price
}

func (t *TicketItem) setSeatID(seatID kernel.SeatID) error {
	if err := seatID.Validate(); err != nil {
		return err
	}
	t.seatID = seatID
	return nil
}

func (t *TicketItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ticket price",
			fmt.Errorf("%.2f is not greater than 0", price))
	}
	t.price = price
	return nil
}

// ConcessionItem is a snack-bar line inside an order: a named product, a
// quantity and a unit price. Immutable once constructed.
type ConcessionItem struct { //nolint:recvcheck //using for validation
	name      string
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewConcessionItem creates a concession line item. The name must be
// non-empty, quantity at least 1 and the unit price positive.
func NewConcessionItem(name string, quantity int, unitPrice float64) (ConcessionItem, error) {
	item := ConcessionItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return ConcessionItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewConcessionItem.
func (c ConcessionItem) Validate() error {
	return c.guard.Validate(ErrConcessionItemIsNotConstructed)
}

// Name returns the product name.
func (c ConcessionItem) Name() string {
	return c.name
}

// Quantity returns how many units were ordered.
func (c ConcessionItem) Quantity() int {
	return c.quantity
}

// UnitPrice returns the price of a single unit.
func (c ConcessionItem) UnitPrice() float64 {
	return c.unitPrice
}

// Subtotal returns quantity times unit price.
func (c ConcessionItem) Subtotal() float64 {
	return float64(c.quantity) * c.unitPrice
}

func (c *ConcessionItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("concession name")
	}
	c.name = name
	return nil
}

func (c *ConcessionItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("concession quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *ConcessionItem) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("concession unit price",
			fmt.Errorf("%.2f is not greater than 0", unitPrice))
	}
	c.unitPrice = unitPrice
	return nil
}
