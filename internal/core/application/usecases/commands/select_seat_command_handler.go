package commands

import (
	"context"
	"errors"
	"time"

	"boxoffice/internal/core/domain/model/hall"
	"boxoffice/internal/core/ports"
)

var (
	// ErrSeatUnknown is returned when the seat does not exist in the hall.
	ErrSeatUnknown = errors.New("seat does not exist in this hall")
	// ErrSeatAlreadySold is returned when the seat has already been sold.
	ErrSeatAlreadySold = errors.New("seat is already sold")
)

// SelectSeatCommandHandler adds a seat to a session's selection.
// The seat must exist in the hall, must not be sold, and must not be held
// by another session. A successful selection places a short-lived hold so
// other buyers cannot grab the seat while this session decides.
type SelectSeatCommandHandler struct {
	sessions ports.SessionStore
	seats    ports.SeatRepository
	holds    ports.SeatHoldStore
	seatMap  hall.SeatMap
	holdTTL  time.Duration
}

// NewSelectSeatCommandHandler creates a handler for seat selection.
func NewSelectSeatCommandHandler(
	sessions ports.SessionStore,
	seats ports.SeatRepository,
	holds ports.SeatHoldStore,
	seatMap hall.SeatMap,
	holdTTL time.Duration,
) SelectSeatCommandHandler {
	return SelectSeatCommandHandler{
		sessions: sessions,
		seats:    seats,
		holds:    holds,
		seatMap:  seatMap,
		holdTTL:  holdTTL,
	}
}

// Handle validates availability, places the hold and records the selection.
// The hold is released again if the session rejects the seat (selection cap).
func (h SelectSeatCommandHandler) Handle(ctx context.Context, cmd SelectSeatCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if !h.seatMap.Contains(cmd.SeatID()) {
		return ErrSeatUnknown
	}

	sold, err := h.seats.IsSold(ctx, cmd.SeatID())
	if err != nil {
		return err
	}
	if sold {
		return ErrSeatAlreadySold
	}

	if err = h.holds.Place(ctx, cmd.SeatID(), cmd.SessionID(), h.holdTTL); err != nil {
		return err
	}

	if err = s.SelectSeat(cmd.SeatID()); err != nil {
		_ = h.holds.Release(ctx, cmd.SeatID(), cmd.SessionID())
		return err
	}

	return nil
}
