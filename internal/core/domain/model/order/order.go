package order

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/errs"
)

// PaymentMethodCash is the degenerate payment method label whose refunds
// must be handled out-of-band and are therefore rejected by policy.
const PaymentMethodCash = "cash"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created with neither
	// tickets nor concession items.
	ErrOrderHasNoItems = errors.New("order must contain at least one ticket or concession item")

	// ErrOnlyCompletedOrdersRefundable is returned by RequestRefund when the
	// order has not reached Completed.
	ErrOnlyCompletedOrdersRefundable = errors.New("only completed orders may be refunded")

	// ErrCashRefundRequiresManualProcess is returned when a refund is
	// requested for a cash order; cash refunds need out-of-band handling.
	ErrCashRefundRequiresManualProcess = errors.New("cash refunds require manual out-of-band processing")

	// ErrOrderNotRefundEligible is returned when the eligibility check
	// rejects an otherwise completed order.
	ErrOrderNotRefundEligible = errors.New("order is not eligible for refund")
)

// Order represents a purchase-in-progress: seat tickets plus concessions,
// the pricing fields filled in by the processing pipeline, and the current
// lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must carry at least one ticket or concession item
//   - Must name a payment method
//   - Status transitions follow the Status state machine
//   - Can only be created through the NewOrder constructor
//
// Pricing fields are mutated exclusively by pipeline stages; the pipeline is
// strictly sequential, so no two stages ever touch the same order at once.
type Order struct {
	id            kernel.UUID
	tickets       []TicketItem
	concessions   []ConcessionItem
	paymentMethod string
	coupon        string

	subtotal float64
	discount float64
	tax      float64
	total    float64

	status     Status
	errMessage string

	isConstructed bool
}

// NewOrder creates an Order in Pending status. The coupon code may be empty.
// Item slices are copied defensively; each item must itself be valid.
func NewOrder(
	id kernel.UUID,
	tickets []TicketItem,
	concessions []ConcessionItem,
	paymentMethod string,
	coupon string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		coupon:        coupon,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(tickets, concessions),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Tickets returns a copy of the order's ticket line items.
func (o *Order) Tickets() []TicketItem {
	tickets := make([]TicketItem, len(o.tickets))
	copy(tickets, o.tickets)
	return tickets
}

// Concessions returns a copy of the order's concession line items.
func (o *Order) Concessions() []ConcessionItem {
	concessions := make([]ConcessionItem, len(o.concessions))
	copy(concessions, o.concessions)
	return concessions
}

// SeatIDs returns the seats granted by the order's tickets, in ticket order.
func (o *Order) SeatIDs() []kernel.SeatID {
	seats := make([]kernel.SeatID, len(o.tickets))
	for i, t := range o.tickets {
		seats[i] = t.SeatID()
	}
	return seats
}

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Coupon returns the coupon code, empty when none was applied.
func (o *Order) Coupon() string {
	return o.coupon
}

// Subtotal returns the pre-tax, pre-discount sum of all line items.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// Discount returns the total discount deducted from the order.
func (o *Order) Discount() float64 {
	return o.discount
}

// Tax returns the tax charged on the subtotal.
func (o *Order) Tax() float64 {
	return o.tax
}

// Total returns the final amount due.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ErrorMessage returns the human-readable failure message, empty while the
// order has not failed or been rejected.
func (o *Order) ErrorMessage() string {
	return o.errMessage
}

// StartValidation moves the order into Validating.
func (o *Order) StartValidation() error {
	return o.transition(o.status.StartValidation)
}

// StartPricing moves the order into CalculatingPrices.
func (o *Order) StartPricing() error {
	return o.transition(o.status.StartPricing)
}

// StartDiscounts moves the order into ApplyingDiscounts.
func (o *Order) StartDiscounts() error {
	return o.transition(o.status.StartDiscounts)
}

// StartPayment moves the order into ProcessingPayment.
func (o *Order) StartPayment() error {
	return o.transition(o.status.StartPayment)
}

// MarkPaid moves the order into Paid, either after a successful charge or
// directly from ApplyingDiscounts for a zero-total order.
func (o *Order) MarkPaid() error {
	return o.transition(o.status.MarkPaid)
}

// Complete moves the order into Completed. This is the single place an
// order finishes successfully.
func (o *Order) Complete() error {
	return o.transition(o.status.Complete)
}

// SetPricing records the computed subtotal and tax and initializes the
// total. Only legal while prices are being calculated.
func (o *Order) SetPricing(subtotal, tax float64) error {
	if o.status != CalculatingPrices {
		return errs.NewValueIsInvalidError("pricing can only be set while calculating prices")
	}

	o.subtotal = subtotal
	o.tax = tax
	o.total = subtotal + tax
	return nil
}

// ApplyDiscount records the accumulated discount and deducts it from the
// total. Only legal while discounts are being applied.
func (o *Order) ApplyDiscount(amount float64) error {
	if o.status != ApplyingDiscounts {
		return errs.NewValueIsInvalidError("discounts can only be applied while applying discounts")
	}

	o.discount += amount
	o.total -= amount
	return nil
}

// Fail stores the failure message and moves the order to Failed. A failed
// order never advances again; stages observe the status and stand down.
func (o *Order) Fail(message string) error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.errMessage = message
	o.status = newStatus
	return nil
}

// Cancel cancels the order if it has not resolved yet. Cancelling an order
// that already resolved leaves the state untouched and returns the
// transition error, which callers log rather than surface as a failure.
func (o *Order) Cancel() error {
	return o.transition(o.status.Cancel)
}

// RequestRefund runs the refund flow for a completed order.
//
// From any status other than Completed it leaves the status unchanged,
// records an error message and returns ErrOnlyCompletedOrdersRefundable.
// For a completed order it transitions to RefundRequested and attempts the
// refund against the stored payment method: cash orders are rejected by
// policy (RefundRejected); every other method succeeds (RefundProcessed).
func (o *Order) RequestRefund() error {
	newStatus, err := o.status.RequestRefund()
	if err != nil {
		o.errMessage = ErrOnlyCompletedOrdersRefundable.Error()
		return ErrOnlyCompletedOrdersRefundable
	}

	if !o.isRefundEligible() {
		o.status, _ = newStatus.RejectRefund()
		o.errMessage = ErrOrderNotRefundEligible.Error()
		return ErrOrderNotRefundEligible
	}

	o.status = newStatus

	if o.paymentMethod == PaymentMethodCash {
		o.status, _ = o.status.RejectRefund()
		o.errMessage = ErrCashRefundRequiresManualProcess.Error()
		return ErrCashRefundRequiresManualProcess
	}

	o.status, _ = o.status.AcceptRefund()
	return nil
}

// isRefundEligible is the refund eligibility predicate. Always true in this
// scope; a real implementation would check elapsed time and seat state.
func (o *Order) isRefundEligible() bool {
	return true
}

func (o *Order) transition(step func() (Status, error)) error {
	newStatus, err := step()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(tickets []TicketItem, concessions []ConcessionItem) error {
	if len(tickets) == 0 && len(concessions) == 0 {
		return ErrOrderHasNoItems
	}

	for _, t := range tickets {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, c := range concessions {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	o.tickets = make([]TicketItem, len(tickets))
	copy(o.tickets, tickets)
	o.concessions = make([]ConcessionItem, len(concessions))
	copy(o.concessions, concessions)
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = paymentMethod
	return nil
}
