package queries

import (
	"errors"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/guard"
)

var ErrGetSelectionQueryIsNotConstructed = errors.New(
	"GetSelectionQuery must be created via NewGetSelectionQuery constructor",
)

// GetSelectionQuery retrieves a session's current seat selection together
// with its current order, when one exists.
//
// Example:
//
//	query, err := NewGetSelectionQuery(sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid session: %w", err)
//	}
//
//	selection, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve selection: %w", err)
//	}
//	fmt.Printf("%d seats selected\n", len(selection.Seats))
type GetSelectionQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSelectionQuery creates a query for a session's selection state.
func NewGetSelectionQuery(sessionID kernel.UUID) (GetSelectionQuery, error) {
	query := GetSelectionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetSelectionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSelectionQuery) Validate() error {
	return q.guard.Validate(ErrGetSelectionQueryIsNotConstructed)
}

// SessionID returns the session whose selection is retrieved.
func (q GetSelectionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetSelectionQuery) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	q.sessionID = sessionID
	return nil
}

// GetSelectionQueryResponse is the selection read model: the selected
// seats in selection order plus the current order, when one exists.
type GetSelectionQueryResponse struct {
	SessionID string
	Seats     []string
	CanRedo   bool
	Order     *OrderSummary
}
