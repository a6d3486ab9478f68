package http

import "boxoffice/internal/core/application/usecases/queries"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StartSessionResponse carries the identifier of a freshly opened session.
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
}

// Seat describes one hall seat and its availability.
type Seat struct {
	SeatID string `json:"seat_id"`
	Row    string `json:"row"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// Selection is the session workspace: selected seats plus the order in
// flight, when there is one.
type Selection struct {
	SessionID string   `json:"session_id"`
	Seats     []string `json:"seats"`
	CanRedo   bool     `json:"can_redo"`
	Order     *Order   `json:"order,omitempty"`
}

// Order is the wire representation of an order summary.
type Order struct {
	OrderID       string   `json:"order_id"`
	Seats         []string `json:"seats"`
	PaymentMethod string   `json:"payment_method"`
	Coupon        string   `json:"coupon,omitempty"`
	Subtotal      float64  `json:"subtotal"`
	Discount      float64  `json:"discount"`
	Tax           float64  `json:"tax"`
	Total         float64  `json:"total"`
	Status        string   `json:"status"`
	ErrorMessage  string   `json:"error_message,omitempty"`
}

// ConcessionItem is one snack line of a submit request.
type ConcessionItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SubmitOrderRequest is the body of POST /sessions/:sessionId/orders.
type SubmitOrderRequest struct {
	PaymentMethod string           `json:"payment_method"`
	Coupon        string           `json:"coupon"`
	Concessions   []ConcessionItem `json:"concessions"`
}

// RequestRefundRequest optionally names an archived order to refund.
// An empty order_id targets the session's current order.
type RequestRefundRequest struct {
	OrderID string `json:"order_id"`
}

func toSelectionResponse(selection queries.GetSelectionQueryResponse) Selection {
	response := Selection{
		SessionID: selection.SessionID,
		Seats:     selection.Seats,
		CanRedo:   selection.CanRedo,
	}

	if selection.Order != nil {
		summary := toOrderResponse(*selection.Order)
		response.Order = &summary
	}

	return response
}

func toOrderResponse(summary queries.OrderSummary) Order {
	return Order{
		OrderID:       summary.OrderID,
		Seats:         summary.Seats,
		PaymentMethod: summary.PaymentMethod,
		Coupon:        summary.Coupon,
		Subtotal:      summary.Subtotal,
		Discount:      summary.Discount,
		Tax:           summary.Tax,
		Total:         summary.Total,
		Status:        summary.Status,
		ErrorMessage:  summary.ErrorMessage,
	}
}
