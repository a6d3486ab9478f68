package order

import (
	"fmt"

	"boxoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions so that orders
// follow the box-office workflow and cannot skip or revisit stages.
//
// Pipeline path:
//
//	Pending -> Validating -> CalculatingPrices -> ApplyingDiscounts ──┬─> ProcessingPayment ─> Paid -> Completed
//	                                                                  └──────(zero total)───────^
//
// Any in-flight state may move to Failed (stage error) or Cancelled
// (direct action). Completed may still enter the refund path:
//
//	Completed -> RefundRequested ──┬─> RefundProcessed
//	                               └─> RefundRejected
//
// Failed, Cancelled, RefundProcessed and RefundRejected are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly built order.
	Pending

	// Validating means the stock/seat availability check is running.
	Validating

	// CalculatingPrices means base prices and taxes are being computed.
	CalculatingPrices

	// ApplyingDiscounts means coupon and promotional rules are being applied.
	ApplyingDiscounts

	// ProcessingPayment means an external charge is in flight.
	ProcessingPayment

	// Paid means the charge succeeded (or was waived for a zero total).
	Paid

	// Completed means tickets were issued and inventory committed.
	// A completed order may still enter the refund path.
	Completed

	// Failed means a pipeline stage rejected the order. Final.
	Failed

	// Cancelled means the buyer cancelled before payment resolved. Final.
	Cancelled

	// RefundRequested means an eligible refund is being processed.
	RefundRequested

	// RefundProcessed means the refund went through. Final.
	RefundProcessed

	// RefundRejected means the refund could not be processed. Final.
	RefundRejected
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Pending:           "Pending",
		Validating:        "Validating",
		CalculatingPrices: "CalculatingPrices",
		ApplyingDiscounts: "ApplyingDiscounts",
		ProcessingPayment: "ProcessingPayment",
		Paid:              "Paid",
		Completed:         "Completed",
		Failed:            "Failed",
		Cancelled:         "Cancelled",
		RefundRequested:   "RefundRequested",
		RefundProcessed:   "RefundProcessed",
		RefundRejected:    "RefundRejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	m := getStatusStrings()
	delete(m, Unknown)
	return m
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the pipeline can never advance this order again.
// Completed is terminal for the pipeline even though the refund path remains
// open for it.
func (s Status) IsTerminal() bool {
	switch s {
	case Completed, Failed, Cancelled, RefundProcessed, RefundRejected:
		return true
	default:
		return false
	}
}

// isInFlight reports whether the order is still moving through the pipeline
// and has not yet been charged.
func (s Status) isInFlight() bool {
	switch s {
	case Pending, Validating, CalculatingPrices, ApplyingDiscounts, ProcessingPayment:
		return true
	default:
		return false
	}
}

func (s Status) transitionError(event string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), event))
}

// StartValidation transitions Pending -> Validating.
func (s Status) StartValidation() (Status, error) {
	if s != Pending {
		return 0, s.transitionError("start validation")
	}
	return Validating, nil
}

// StartPricing transitions Validating -> CalculatingPrices.
func (s Status) StartPricing() (Status, error) {
	if s != Validating {
		return 0, s.transitionError("start pricing")
	}
	return CalculatingPrices, nil
}

// StartDiscounts transitions CalculatingPrices -> ApplyingDiscounts.
func (s Status) StartDiscounts() (Status, error) {
	if s != CalculatingPrices {
		return 0, s.transitionError("start discounts")
	}
	return ApplyingDiscounts, nil
}

// StartPayment transitions ApplyingDiscounts -> ProcessingPayment.
func (s Status) StartPayment() (Status, error) {
	if s != ApplyingDiscounts {
		return 0, s.transitionError("start payment")
	}
	return ProcessingPayment, nil
}

// MarkPaid transitions to Paid.
//
// Valid transitions:
//   - ProcessingPayment -> Paid (charge succeeded)
//   - ApplyingDiscounts -> Paid (zero-total order, charge waived)
func (s Status) MarkPaid() (Status, error) {
	if s != ProcessingPayment && s != ApplyingDiscounts {
		return 0, s.transitionError("mark paid")
	}
	return Paid, nil
}

// Complete transitions Paid -> Completed. This is the single success exit
// of the pipeline.
func (s Status) Complete() (Status, error) {
	if s != Paid {
		return 0, s.transitionError("complete")
	}
	return Completed, nil
}

// Fail transitions any in-flight state to Failed. Orders that already
// resolved (Paid, Completed, Cancelled, refund states) cannot fail.
func (s Status) Fail() (Status, error) {
	if !s.isInFlight() {
		return 0, s.transitionError("fail")
	}
	return Failed, nil
}

// Cancel transitions any in-flight state to Cancelled. Cancelling an order
// that has already resolved is rejected.
func (s Status) Cancel() (Status, error) {
	if !s.isInFlight() {
		return 0, s.transitionError("cancel")
	}
	return Cancelled, nil
}

// RequestRefund transitions Completed -> RefundRequested.
func (s Status) RequestRefund() (Status, error) {
	if s != Completed {
		return 0, s.transitionError("request refund")
	}
	return RefundRequested, nil
}

// AcceptRefund transitions RefundRequested -> RefundProcessed.
func (s Status) AcceptRefund() (Status, error) {
	if s != RefundRequested {
		return 0, s.transitionError("accept refund")
	}
	return RefundProcessed, nil
}

// RejectRefund transitions RefundRequested -> RefundRejected.
func (s Status) RejectRefund() (Status, error) {
	if s != RefundRequested {
		return 0, s.transitionError("reject refund")
	}
	return RefundRejected, nil
}
