package queries

import (
	"context"

	"boxoffice/internal/core/ports"
)

// GetSelectionQueryHandler reads a session's live selection state.
// Sessions are in-memory objects, so this handler reads from the session
// store rather than the database.
type GetSelectionQueryHandler struct {
	sessions ports.SessionStore
}

// NewGetSelectionQueryHandler creates a handler for selection queries.
func NewGetSelectionQueryHandler(sessions ports.SessionStore) GetSelectionQueryHandler {
	return GetSelectionQueryHandler{sessions: sessions}
}

// Handle returns the selected seats in selection order and a summary of
// the current order when the session has one.
func (h GetSelectionQueryHandler) Handle(
	ctx context.Context,
	query GetSelectionQuery,
) (GetSelectionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSelectionQueryResponse{}, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetSelectionQueryResponse{}, err
	}

	seats := make([]string, 0, len(s.SelectedSeats()))
	for _, seat := range s.SelectedSeats() {
		seats = append(seats, seat.String())
	}

	response := GetSelectionQueryResponse{
		SessionID: s.ID().String(),
		Seats:     seats,
		CanRedo:   s.CanRedo(),
	}

	if current := s.CurrentOrder(); current != nil {
		summary := summarizeOrder(current)
		response.Order = &summary
	}

	return response, nil
}
