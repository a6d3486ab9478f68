package services

import (
	"context"
	"fmt"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
)

const (
	// TaxRate is applied to the pre-discount subtotal.
	TaxRate = 0.19

	// CouponCode grants CouponRate off the subtotal when present on an order.
	CouponCode = "CINE20"
	CouponRate = 0.20

	// ConcessionDiscount is a flat amount taken off any order carrying
	// at least one concession item.
	ConcessionDiscount = 2.00
)

// AvailabilityChecker answers whether a set of seats can still be sold.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, seats []kernel.SeatID) (bool, error)
}

// PaymentGateway charges the buyer for the order total.
type PaymentGateway interface {
	Charge(ctx context.Context, paymentMethod string, amount float64) error
}

// TicketIssuer produces admission tickets for a paid order.
type TicketIssuer interface {
	Issue(ctx context.Context, o *order.Order) error
}

// StockCommitter permanently removes sold seats from the sellable inventory.
type StockCommitter interface {
	Commit(ctx context.Context, orderID kernel.UUID, seats []kernel.SeatID) error
}

// StockValidationStage confirms the ordered seats are still sellable before
// any money-related work starts.
type StockValidationStage struct {
	checker AvailabilityChecker
}

func NewStockValidationStage(checker AvailabilityChecker) *StockValidationStage {
	return &StockValidationStage{checker: checker}
}

func (s *StockValidationStage) Name() string { return "stock-validation" }

func (s *StockValidationStage) Process(ctx context.Context, o *order.Order) Outcome {
	if err := o.StartValidation(); err != nil {
		return failWith(o, err.Error())
	}

	available, err := s.checker.CheckAvailability(ctx, o.SeatIDs())
	if err != nil {
		return failWith(o, fmt.Sprintf("availability check failed: %s", err))
	}
	if !available {
		return failWith(o, "insufficient stock or seats")
	}

	return Continue
}

// PriceAndTaxCalculationStage computes the order subtotal from its line
// items and adds tax on top. It never halts: pricing is deterministic.
type PriceAndTaxCalculationStage struct{}

func NewPriceAndTaxCalculationStage() *PriceAndTaxCalculationStage {
	return &PriceAndTaxCalculationStage{}
}

func (s *PriceAndTaxCalculationStage) Name() string { return "price-and-tax-calculation" }

func (s *PriceAndTaxCalculationStage) Process(_ context.Context, o *order.Order) Outcome {
	if err := o.StartPricing(); err != nil {
		return failWith(o, err.Error())
	}

	var subtotal float64
	for _, ticket := range o.Tickets() {
		subtotal += ticket.Price()
	}
	for _, concession := range o.Concessions() {
		subtotal += concession.Subtotal()
	}

	if err := o.SetPricing(subtotal, subtotal*TaxRate); err != nil {
		return failWith(o, err.Error())
	}

	return Continue
}

// DiscountApplicationStage applies the coupon and concession discounts.
// Both may apply to the same order; their amounts add up.
type DiscountApplicationStage struct{}

func NewDiscountApplicationStage() *DiscountApplicationStage {
	return &DiscountApplicationStage{}
}

func (s *DiscountApplicationStage) Name() string { return "discount-application" }

func (s *DiscountApplicationStage) Process(_ context.Context, o *order.Order) Outcome {
	if err := o.StartDiscounts(); err != nil {
		return failWith(o, err.Error())
	}

	if o.Coupon() == CouponCode {
		if err := o.ApplyDiscount(o.Subtotal() * CouponRate); err != nil {
			return failWith(o, err.Error())
		}
	}

	if len(o.Concessions()) > 0 {
		if err := o.ApplyDiscount(ConcessionDiscount); err != nil {
			return failWith(o, err.Error())
		}
	}

	return Continue
}

// PaymentProcessingStage charges the order total through the gateway.
// Orders whose total is zero or negative after discounts skip the charge
// entirely and go straight to Paid.
type PaymentProcessingStage struct {
	gateway PaymentGateway
}

func NewPaymentProcessingStage(gateway PaymentGateway) *PaymentProcessingStage {
	return &PaymentProcessingStage{gateway: gateway}
}

func (s *PaymentProcessingStage) Name() string { return "payment-processing" }

func (s *PaymentProcessingStage) Process(ctx context.Context, o *order.Order) Outcome {
	if o.Total() <= 0 {
		if err := o.MarkPaid(); err != nil {
			return failWith(o, err.Error())
		}

		return Continue
	}

	if err := o.StartPayment(); err != nil {
		return failWith(o, err.Error())
	}

	if err := s.gateway.Charge(ctx, o.PaymentMethod(), o.Total()); err != nil {
		return failWith(o, fmt.Sprintf("payment declined: %s", err))
	}

	if err := o.MarkPaid(); err != nil {
		return failWith(o, err.Error())
	}

	return Continue
}

// TicketGenerationStage issues admission tickets for the paid order.
// Concession-only orders have nothing to issue and pass straight through.
type TicketGenerationStage struct {
	issuer TicketIssuer
}

func NewTicketGenerationStage(issuer TicketIssuer) *TicketGenerationStage {
	return &TicketGenerationStage{issuer: issuer}
}

func (s *TicketGenerationStage) Name() string { return "ticket-generation" }

func (s *TicketGenerationStage) Process(ctx context.Context, o *order.Order) Outcome {
	if len(o.Tickets()) == 0 {
		return Continue
	}

	if err := s.issuer.Issue(ctx, o); err != nil {
		return failWith(o, fmt.Sprintf("ticket generation failed: %s", err))
	}

	return Continue
}

// InventoryUpdateStage commits the sold seats to inventory and closes the
// run by moving the order to Completed.
type InventoryUpdateStage struct {
	committer StockCommitter
}

func NewInventoryUpdateStage(committer StockCommitter) *InventoryUpdateStage {
	return &InventoryUpdateStage{committer: committer}
}

func (s *InventoryUpdateStage) Name() string { return "inventory-update" }

func (s *InventoryUpdateStage) Process(ctx context.Context, o *order.Order) Outcome {
	if seats := o.SeatIDs(); len(seats) > 0 {
		if err := s.committer.Commit(ctx, o.ID(), seats); err != nil {
			return failWith(o, fmt.Sprintf("inventory update failed: %s", err))
		}
	}

	if err := o.Complete(); err != nil {
		return failWith(o, err.Error())
	}

	return Continue
}

func failWith(o *order.Order, message string) Outcome {
	// Fail only errors when the order is already terminal; either way
	// the run must stop here.
	_ = o.Fail(message)

	return Halt
}
