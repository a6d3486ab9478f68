package commands

import (
	"context"

	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/domain/model/session"
	"boxoffice/internal/core/ports"
	"boxoffice/internal/pkg/errs"
)

// RequestRefundCommandHandler runs the refund flow for a completed order.
// When the refund goes through, the order's seats return to the sellable
// pool in one transaction.
type RequestRefundCommandHandler struct {
	sessions   ports.SessionStore
	uowFactory SeatUoWFactory
}

// NewRequestRefundCommandHandler creates a handler for refund requests.
func NewRequestRefundCommandHandler(
	sessions ports.SessionStore,
	uowFactory SeatUoWFactory,
) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{sessions: sessions, uowFactory: uowFactory}
}

// Handle resolves the target order, asks the domain to refund it and, on
// success, releases the sold seats. Refund rejections (cash payments,
// non-completed orders) come back as domain errors with the order left in
// the state the domain chose for it.
func (h RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	target, err := h.resolveOrder(s, cmd)
	if err != nil {
		return err
	}

	if err = target.RequestRefund(); err != nil {
		return err
	}

	if len(target.SeatIDs()) == 0 {
		return nil
	}

	return h.releaseSeats(ctx, target)
}

func (h RequestRefundCommandHandler) resolveOrder(
	s *session.Session,
	cmd RequestRefundCommand,
) (*order.Order, error) {
	orderID, explicit := cmd.OrderID()
	if !explicit {
		if current := s.CurrentOrder(); current != nil {
			return current, nil
		}
		return nil, session.ErrNoCurrentOrder
	}

	if current := s.CurrentOrder(); current != nil && current.ID().IsEqual(orderID) {
		return current, nil
	}

	for _, completed := range s.CompletedOrders() {
		if completed.ID().IsEqual(orderID) {
			return completed, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("orderID", orderID)
}

func (h RequestRefundCommandHandler) releaseSeats(ctx context.Context, target *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SeatRepository().UnmarkSold(ctx, target.SeatIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
