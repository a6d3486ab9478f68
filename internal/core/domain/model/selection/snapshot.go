package selection

import (
	"boxoffice/internal/core/domain/model/kernel"
)

// Snapshot is an immutable point-in-time capture of a selection workspace:
// the chosen seats in selection order plus the auxiliary data attached to
// the selection. Snapshots are created on every workspace mutation and are
// owned exclusively by the History that stores them; they never change
// after creation.
type Snapshot struct {
	seats []kernel.SeatID
	aux   map[string]string
}

// newSnapshot captures the given state with defensive copies so the
// snapshot can never alias the workspace's live slices and maps.
func newSnapshot(seats []kernel.SeatID, aux map[string]string) Snapshot {
	return Snapshot{
		seats: copySeats(seats),
		aux:   copyAux(aux),
	}
}

// Seats returns the captured seat identifiers in selection order.
// The returned slice is a copy; mutating it does not affect the snapshot.
func (s Snapshot) Seats() []kernel.SeatID {
	return copySeats(s.seats)
}

// Aux returns a copy of the captured auxiliary data.
func (s Snapshot) Aux() map[string]string {
	return copyAux(s.aux)
}

// IsEqual reports whether two snapshots capture the same selection state.
func (s Snapshot) IsEqual(other Snapshot) bool {
	if len(s.seats) != len(other.seats) || len(s.aux) != len(other.aux) {
		return false
	}
	for i, seat := range s.seats {
		if !seat.IsEqual(other.seats[i]) {
			return false
		}
	}
	for k, v := range s.aux {
		if other.aux[k] != v {
			return false
		}
	}
	return true
}

func copySeats(seats []kernel.SeatID) []kernel.SeatID {
	copied := make([]kernel.SeatID, len(seats))
	copy(copied, seats)
	return copied
}

func copyAux(aux map[string]string) map[string]string {
	copied := make(map[string]string, len(aux))
	for k, v := range aux {
		copied[k] = v
	}
	return copied
}
