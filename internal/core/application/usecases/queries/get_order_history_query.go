package queries

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves a session's archived purchases.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid session: %w", err)
//	}
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve history: %w", err)
//	}
//	fmt.Printf("%d past purchases\n", len(history))
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for a session's purchase history.
func NewGetOrderHistoryQuery(sessionID kernel.UUID) (GetOrderHistoryQuery, error) {
	query := GetOrderHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// SessionID returns the session whose history is retrieved.
func (q GetOrderHistoryQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetOrderHistoryQuery) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	q.sessionID = sessionID
	return nil
}

// OrderSummary is the order read model shared by selection and history
// queries.
type OrderSummary struct {
	OrderID       string
	Seats         []string
	PaymentMethod string
	Coupon        string
	Subtotal      float64
	Discount      float64
	Tax           float64
	Total         float64
	Status        string
	ErrorMessage  string
}

func summarizeOrder(o *order.Order) OrderSummary {
	seats := make([]string, 0, len(o.SeatIDs()))
	for _, seat := range o.SeatIDs() {
		seats = append(seats, seat.String())
	}

	return OrderSummary{
		OrderID:       o.ID().String(),
		Seats:         seats,
		PaymentMethod: o.PaymentMethod(),
		Coupon:        o.Coupon(),
		Subtotal:      o.Subtotal(),
		Discount:      o.Discount(),
		Tax:           o.Tax(),
		Total:         o.Total(),
		Status:        o.Status().String(),
		ErrorMessage:  o.ErrorMessage(),
	}
}
