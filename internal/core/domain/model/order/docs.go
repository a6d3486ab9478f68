// Package order provides domain entities and business logic for purchase
// orders in the box-office system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning line items, pricing fields and lifecycle
//   - Status: A state machine that enforces valid lifecycle transitions
//   - TicketItem / ConcessionItem: Immutable line item value objects
//
// Key business rules:
//   - Orders must have a valid identifier, a payment method and at least one item
//   - The lifecycle follows the processing pipeline: Pending -> Validating ->
//     CalculatingPrices -> ApplyingDiscounts -> ProcessingPayment -> Paid -> Completed
//   - A failure in any stage moves the order to Failed and stores a message;
//     failed orders never advance again
//   - Cancellation is only legal before payment resolves
//   - Only completed orders may be refunded, and cash refunds are rejected by policy
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
