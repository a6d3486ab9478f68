// Package inventory bridges the order processing stages to the sold-seat
// registry: availability checks read the registry directly, stock commits
// run inside a unit of work so an order's seats sell atomically.
package inventory

import (
	"context"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/ports"
)

// RegistryAvailabilityChecker answers stage availability checks from the
// sold-seat registry. Holds are not consulted here: the submitting session
// already holds its own seats.
type RegistryAvailabilityChecker struct {
	seats ports.SeatRepository
}

// NewRegistryAvailabilityChecker creates a checker over the registry.
func NewRegistryAvailabilityChecker(seats ports.SeatRepository) *RegistryAvailabilityChecker {
	return &RegistryAvailabilityChecker{seats: seats}
}

// CheckAvailability reports false as soon as any seat is already sold.
func (c *RegistryAvailabilityChecker) CheckAvailability(ctx context.Context, seats []kernel.SeatID) (bool, error) {
	for _, seat := range seats {
		sold, err := c.seats.IsSold(ctx, seat)
		if err != nil {
			return false, err
		}
		if sold {
			return false, nil
		}
	}

	return true, nil
}

// RegistryStockCommitter writes an order's seats to the sold-seat registry
// in one transaction.
type RegistryStockCommitter struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewRegistryStockCommitter creates a committer over the registry.
func NewRegistryStockCommitter(uowFactory ports.UnitOfWorkFactory) *RegistryStockCommitter {
	return &RegistryStockCommitter{uowFactory: uowFactory}
}

// Commit marks every seat of the order as sold, or none on conflict.
func (c *RegistryStockCommitter) Commit(ctx context.Context, orderID kernel.UUID, seats []kernel.SeatID) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SeatRepository().MarkSold(ctx, orderID, seats); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
