package selection

// History is the undo/redo engine for a selection workspace. It keeps two
// ordered stacks of snapshots: the past (every saved state, oldest first)
// and the redo stack (states undone since the last save).
//
// Invariants:
//   - Save clears the redo stack unconditionally
//   - Once initialized with the first snapshot, the past stack is never
//     emptied by Undo: the initial state is the floor
//
// Callers must re-synchronize the workspace from every snapshot returned
// by Undo and Redo; the top of the past stack always equals the state the
// workspace was last saved with or restored to.
type History struct {
	past []Snapshot
	redo []Snapshot
}

// NewHistory creates an empty history. Callers seed it with the initial
// (typically empty-selection) snapshot via Save at workspace creation.
func NewHistory() *History {
	return &History{}
}

// Save appends a snapshot to the past stack and discards any redo states.
func (h *History) Save(snapshot Snapshot) {
	h.past = append(h.past, snapshot)
	h.redo = nil
}

// Undo steps back one state. It pops the current top of the past stack onto
// the redo stack and returns the new top, which is the state to restore.
//
// When only the initial snapshot remains, that snapshot is returned without
// popping: undo never goes below the initial state. On an uninitialized
// history, Undo returns false.
func (h *History) Undo() (Snapshot, bool) {
	switch {
	case len(h.past) > 1:
		top := h.past[len(h.past)-1]
		h.past = h.past[:len(h.past)-1]
		h.redo = append(h.redo, top)
		return h.past[len(h.past)-1], true
	case len(h.past) == 1:
		return h.past[0], true
	default:
		return Snapshot{}, false
	}
}

// Redo re-applies the most recently undone state: it moves the top of the
// redo stack back onto the past stack and returns it. Returns false when
// there is nothing to redo.
func (h *History) Redo() (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}

	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.past = append(h.past, top)
	return top, true
}

// Clear empties both stacks. Used when a fresh order cycle begins; the
// caller re-seeds the history with the new initial snapshot.
func (h *History) Clear() {
	h.past = nil
	h.redo = nil
}

// Len returns the number of snapshots on the past stack.
func (h *History) Len() int {
	return len(h.past)
}

// CanRedo reports whether any undone state is available to re-apply.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}
