package selection

import (
	"boxoffice/internal/core/domain/model/kernel"
)

// Workspace is the mutable in-progress seat selection a buyer builds up
// before submitting an order. It holds the chosen seats in selection order
// (a seat appears at most once) plus free-form auxiliary data.
//
// A workspace lives for the whole session: it is mutated by Select and
// Deselect, restored wholesale from a Snapshot by undo/redo, and reset to
// empty when a new order cycle begins. It is never individually destroyed.
//
// The workspace is designed for a single writer per session; concurrent
// mutation from two callers is undefined.
type Workspace struct {
	seats []kernel.SeatID
	aux   map[string]string
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		aux: make(map[string]string),
	}
}

// Select adds a seat to the selection. Selecting a seat that is already
// present is a no-op; selection order of the remaining seats is preserved.
func (w *Workspace) Select(seatID kernel.SeatID) {
	if w.contains(seatID) {
		return
	}
	w.seats = append(w.seats, seatID)
}

// Deselect removes a seat from the selection. Deselecting an absent seat
// is a no-op.
func (w *Workspace) Deselect(seatID kernel.SeatID) {
	for i, seat := range w.seats {
		if seat.IsEqual(seatID) {
			w.seats = append(w.seats[:i], w.seats[i+1:]...)
			return
		}
	}
}

// IsSelected reports whether the seat is currently part of the selection.
func (w *Workspace) IsSelected(seatID kernel.SeatID) bool {
	return w.contains(seatID)
}

// Len returns the number of currently selected seats.
func (w *Workspace) Len() int {
	return len(w.seats)
}

// SetAux stores an auxiliary key-value pair on the selection.
func (w *Workspace) SetAux(key, value string) {
	w.aux[key] = value
}

// Seats returns the current selection in selection order. The returned
// slice is a copy.
func (w *Workspace) Seats() []kernel.SeatID {
	return copySeats(w.seats)
}

// Aux returns a copy of the current auxiliary data.
func (w *Workspace) Aux() map[string]string {
	return copyAux(w.aux)
}

// Snapshot captures the current state as an immutable Snapshot. Pure: the
// workspace itself is not modified, and the snapshot shares no storage
// with it.
func (w *Workspace) Snapshot() Snapshot {
	return newSnapshot(w.seats, w.aux)
}

// Restore replaces the selection and auxiliary data wholesale with the
// snapshot's contents. The snapshot copies defensively in both directions,
// so the workspace never aliases state held by a stored snapshot.
func (w *Workspace) Restore(snapshot Snapshot) {
	w.seats = snapshot.Seats()
	w.aux = snapshot.Aux()
}

// Reset empties the selection and auxiliary data. Reset is a mutation like
// any other: callers snapshot the emptied state into history afterwards.
func (w *Workspace) Reset() {
	w.seats = nil
	w.aux = make(map[string]string)
}

func (w *Workspace) contains(seatID kernel.SeatID) bool {
	for _, seat := range w.seats {
		if seat.IsEqual(seatID) {
			return true
		}
	}
	return false
}
