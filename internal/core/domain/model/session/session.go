// Package session models one buyer's box-office session: the selection
// workspace, its undo/redo history, the order currently being processed
// and the archive of completed purchases. A session is the explicit
// per-user context object; there is no process-wide controller.
//
// Sessions assume a single writer. Every workspace mutation is followed by
// saving a snapshot into history, and every undo/redo immediately restores
// the workspace from the returned snapshot, so the history's top always
// matches the live selection.
package session

import (
	"errors"
	"time"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/domain/model/selection"
)

// MaxSeatsPerOrder caps how many seats one order may carry.
const MaxSeatsPerOrder = 10

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created
	// through the NewSession factory method.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrTooManySeats is returned when selecting a seat would exceed
	// MaxSeatsPerOrder.
	ErrTooManySeats = errors.New("no more than 10 seats may be selected per order")

	// ErrNoCurrentOrder is returned by order actions when the session has
	// no order in flight.
	ErrNoCurrentOrder = errors.New("session has no current order")
)

// Session is one buyer's interaction context.
type Session struct {
	id        kernel.UUID
	workspace *selection.Workspace
	history   *selection.History

	currentOrder *order.Order
	submittedAt  time.Time
	completed    []*order.Order

	isConstructed bool
}

// NewSession creates a session with an empty workspace whose initial state
// is seeded into history, so undo can never go below "nothing selected".
func NewSession(id kernel.UUID) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	workspace := selection.NewWorkspace()
	history := selection.NewHistory()
	history.Save(workspace.Snapshot())

	return &Session{
		id:            id,
		workspace:     workspace,
		history:       history,
		isConstructed: true,
	}, nil
}

// Validate ensures the Session was properly constructed through NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// SelectSeat adds a seat to the selection and saves a snapshot. Selecting
// an already-selected seat still saves (it is a workspace mutation request,
// and the history mirrors every request the caller makes).
func (s *Session) SelectSeat(seatID kernel.SeatID) error {
	if s.workspace.Len() >= MaxSeatsPerOrder && !s.workspace.IsSelected(seatID) {
		return ErrTooManySeats
	}

	s.workspace.Select(seatID)
	s.history.Save(s.workspace.Snapshot())
	return nil
}

// DeselectSeat removes a seat from the selection and saves a snapshot.
func (s *Session) DeselectSeat(seatID kernel.SeatID) {
	s.workspace.Deselect(seatID)
	s.history.Save(s.workspace.Snapshot())
}

// Undo steps the selection back one state. Returns false when the history
// is uninitialized; at the initial state it re-applies that state.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.workspace.Restore(snap)
	return true
}

// Redo re-applies the most recently undone selection state.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.workspace.Restore(snap)
	return true
}

// CanRedo reports whether an undone selection state can be re-applied.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// SelectedSeats returns the current selection in selection order.
func (s *Session) SelectedSeats() []kernel.SeatID {
	return s.workspace.Seats()
}

// AuxData returns a copy of the selection's auxiliary data.
func (s *Session) AuxData() map[string]string {
	return s.workspace.Aux()
}

// BuildOrder materializes a new order from the current selection plus the
// given concession items, and makes it the session's current order. Each
// selected seat becomes a ticket at DefaultTicketPrice. Fails when the
// selection and the concession list are both empty.
func (s *Session) BuildOrder(
	paymentMethod string,
	coupon string,
	concessions []order.ConcessionItem,
) (*order.Order, error) {
	seats := s.workspace.Seats()
	tickets := make([]order.TicketItem, 0, len(seats))
	for _, seatID := range seats {
		ticket, err := order.NewTicketItem(seatID, order.DefaultTicketPrice)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	o, err := order.NewOrder(kernel.NewUUID(), tickets, concessions, paymentMethod, coupon)
	if err != nil {
		return nil, err
	}

	s.currentOrder = o
	s.submittedAt = time.Now()
	return o, nil
}

// CurrentOrder returns the order in flight, nil when there is none.
func (s *Session) CurrentOrder() *order.Order {
	return s.currentOrder
}

// SubmittedAt returns when the current order was built. Zero when the
// session has no current order.
func (s *Session) SubmittedAt() time.Time {
	if s.currentOrder == nil {
		return time.Time{}
	}
	return s.submittedAt
}

// CancelCurrentOrder cancels the order in flight. The underlying
// transition error for already-resolved orders is returned for logging;
// the order state is left untouched in that case.
func (s *Session) CancelCurrentOrder() error {
	if s.currentOrder == nil {
		return ErrNoCurrentOrder
	}
	return s.currentOrder.Cancel()
}

// RequestRefundCurrentOrder runs the refund flow on the order in flight.
func (s *Session) RequestRefundCurrentOrder() error {
	if s.currentOrder == nil {
		return ErrNoCurrentOrder
	}
	return s.currentOrder.RequestRefund()
}

// FinishCycle archives a completed current order and starts a fresh
// selection cycle: the workspace is emptied, history cleared and re-seeded
// with the empty state, and the current order slot freed. Safe to call
// after failures too, in which case nothing is archived.
func (s *Session) FinishCycle() {
	if s.currentOrder != nil && s.currentOrder.Status() == order.Completed {
		s.completed = append(s.completed, s.currentOrder)
	}
	s.currentOrder = nil
	s.submittedAt = time.Time{}

	s.workspace.Reset()
	s.history.Clear()
	s.history.Save(s.workspace.Snapshot())
}

// CompletedOrders returns the archive of completed purchases, oldest first.
func (s *Session) CompletedOrders() []*order.Order {
	completed := make([]*order.Order, len(s.completed))
	copy(completed, s.completed)
	return completed
}
