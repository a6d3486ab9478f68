package queries

import (
	"context"

	"boxoffice/internal/core/ports"
)

// GetOrderHistoryQueryHandler reads a session's archived purchases.
// Only orders that finished processing successfully reach the archive, so
// entries here are Completed or in one of the refund states.
type GetOrderHistoryQueryHandler struct {
	sessions ports.SessionStore
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(sessions ports.SessionStore) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{sessions: sessions}
}

// Handle returns summaries of the session's archived orders, oldest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return nil, err
	}

	completed := s.CompletedOrders()
	history := make([]OrderSummary, 0, len(completed))
	for _, o := range completed {
		history = append(history, summarizeOrder(o))
	}

	return history, nil
}
