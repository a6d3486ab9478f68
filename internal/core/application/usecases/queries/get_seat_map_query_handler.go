package queries

import (
	"context"
	"errors"

	"boxoffice/internal/core/domain/model/hall"
	"boxoffice/internal/core/ports"
	"boxoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSeatMapQueryHandler renders the hall layout with availability.
// Sold seats come straight from the registry table for read performance;
// held seats come from the hold store so in-flight selections are visible.
//
// Example:
//
//	handler := NewGetSeatMapQueryHandler(db, seatMap, holds)
//	seats, err := handler.Handle(ctx, NewGetSeatMapQuery())
//	if err != nil {
//	    log.Printf("Failed to get seat map: %v", err)
//	    return err
//	}
//	fmt.Printf("Hall has %d seats\n", len(seats))
type GetSeatMapQueryHandler struct {
	db      *gorm.DB
	seatMap hall.SeatMap
	holds   ports.SeatHoldStore
}

// NewGetSeatMapQueryHandler creates a handler for seat map queries.
// Requires a GORM database connection for the sold-seat lookup.
func NewGetSeatMapQueryHandler(
	db *gorm.DB,
	seatMap hall.SeatMap,
	holds ports.SeatHoldStore,
) GetSeatMapQueryHandler {
	return GetSeatMapQueryHandler{db: db, seatMap: seatMap, holds: holds}
}

// Handle executes the query and returns every seat of the hall in
// row-major order with its availability status.
func (h GetSeatMapQueryHandler) Handle(
	ctx context.Context,
	query GetSeatMapQuery,
) ([]GetSeatMapQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sold, err := h.soldSeats(ctx)
	if err != nil {
		return nil, err
	}

	seats := make([]GetSeatMapQueryResponse, 0, h.seatMap.Capacity())

	for _, seatID := range h.seatMap.SeatsByRow() {
		seat := GetSeatMapQueryResponse{
			SeatID: seatID.String(),
			Row:    seatID.Row(),
			Number: seatID.Number(),
			Status: SeatStatusFree,
		}

		if _, ok := sold[seatID.String()]; ok {
			seat.Status = SeatStatusSold
			seats = append(seats, seat)
			continue
		}

		if _, holdErr := h.holds.Holder(ctx, seatID); holdErr == nil {
			seat.Status = SeatStatusHeld
		} else if !errors.Is(holdErr, errs.ErrObjectNotFound) {
			return nil, holdErr
		}

		seats = append(seats, seat)
	}

	return seats, nil
}

func (h GetSeatMapQueryHandler) soldSeats(ctx context.Context) (map[string]struct{}, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seat_id
		FROM sold_seats
		ORDER BY seat_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sold := make(map[string]struct{})

	for rows.Next() {
		var seatID string
		if err = rows.Scan(&seatID); err != nil {
			return nil, err
		}
		sold[seatID] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sold, nil
}
