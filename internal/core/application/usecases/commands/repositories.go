// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, collaborator calls,
// and transaction management where the sold-seat registry is touched.
package commands

import (
	"context"

	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across repository calls.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SeatRepoFactory provides access to the sold-seat repository within a transaction.
	SeatRepoFactory interface {
		SeatRepository() ports.SeatRepository
	}

	// SeatUoW manages transactions over the sold-seat registry.
	SeatUoW interface {
		TxManager
		SeatRepoFactory
	}

	// SeatUoWFactory creates new seat unit of work instances.
	SeatUoWFactory interface {
		Create() SeatUoW
	}
)

// OrderProcessor runs a pending order through the processing stages.
// The result of a run is recorded on the order itself.
type OrderProcessor interface {
	Submit(ctx context.Context, o *order.Order) error
}
