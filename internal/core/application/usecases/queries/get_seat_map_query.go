// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"boxoffice/internal/pkg/guard"
)

var ErrGetSeatMapQueryIsNotConstructed = errors.New(
	"GetSeatMapQuery must be created via NewGetSeatMapQuery constructor",
)

// Seat availability values in the seat map read model.
const (
	SeatStatusFree = "free"
	SeatStatusHeld = "held"
	SeatStatusSold = "sold"
)

// GetSeatMapQuery retrieves the hall layout with per-seat availability.
//
// Example:
//
//	query := NewGetSeatMapQuery()
//	handler := NewGetSeatMapQueryHandler(db, seatMap, holds)
//
//	seats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve seat map: %w", err)
//	}
//
//	for _, seat := range seats {
//	    fmt.Printf("%s: %s\n", seat.SeatID, seat.Status)
//	}
type GetSeatMapQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSeatMapQuery creates a query to retrieve the seat map.
// This is a parameterless query covering the whole hall.
func NewGetSeatMapQuery() GetSeatMapQuery {
	return GetSeatMapQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSeatMapQuery) Validate() error {
	return q.guard.Validate(ErrGetSeatMapQueryIsNotConstructed)
}

// GetSeatMapQueryResponse represents one seat in the seat map read model.
type GetSeatMapQueryResponse struct {
	SeatID string
	Row    string
	Number int
	Status string
}
