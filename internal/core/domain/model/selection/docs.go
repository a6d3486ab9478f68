// Package selection implements the undo/redo-capable seat selection
// workspace a buyer uses to assemble an order before submitting it.
//
// The package includes:
//   - Workspace: the mutable, ordered, duplicate-free seat selection
//   - Snapshot: an immutable capture of the workspace state
//   - History: past/redo snapshot stacks with undo and redo
//
// The workspace and its history are wired together by the session layer:
// every mutation is followed by saving a fresh snapshot, and every undo or
// redo result is restored into the workspace immediately.
package selection
