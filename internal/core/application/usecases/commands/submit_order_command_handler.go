package commands

import (
	"context"
	"log/slog"
	"time"

	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/domain/model/session"
	"boxoffice/internal/core/ports"
)

// SubmitOrderCommandHandler builds an order from the session's selection
// and drives it through the processing pipeline. On completion it releases
// the seat holds (the seats are sold now) and publishes the integration
// event. A failed run leaves the order, with its diagnostic message, as
// the session's current order for the buyer to inspect.
type SubmitOrderCommandHandler struct {
	sessions  ports.SessionStore
	processor OrderProcessor
	holds     ports.SeatHoldStore
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(
	sessions ports.SessionStore,
	processor OrderProcessor,
	holds ports.SeatHoldStore,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		sessions:  sessions,
		processor: processor,
		holds:     holds,
		publisher: publisher,
		logger:    logger.With("component", "submit_order"),
	}
}

// Handle builds and processes the order. A processing failure is not a
// handler error: the outcome lives on the order itself.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	o, err := s.BuildOrder(cmd.PaymentMethod(), cmd.Coupon(), cmd.Concessions())
	if err != nil {
		return err
	}

	if err = h.processor.Submit(ctx, o); err != nil {
		return err
	}

	if o.Status() != order.Completed {
		return nil
	}

	if err = h.holds.ReleaseAll(ctx, o.SeatIDs(), cmd.SessionID()); err != nil {
		h.logger.Error("releasing seat holds failed",
			"session_id", s.ID().String(), "order_id", o.ID().String(), "error", err)
	}

	h.publish(ctx, s, o)

	return nil
}

// publish is best effort: the order is already completed and paid, a
// broker outage must not surface as a submission failure.
func (h SubmitOrderCommandHandler) publish(ctx context.Context, s *session.Session, o *order.Order) {
	seats := make([]string, 0, len(o.SeatIDs()))
	for _, seat := range o.SeatIDs() {
		seats = append(seats, seat.String())
	}

	event := ports.OrderCompletedEvent{
		OrderID:     o.ID().String(),
		SessionID:   s.ID().String(),
		Seats:       seats,
		Total:       o.Total(),
		CompletedAt: time.Now().UTC(),
	}

	if err := h.publisher.PublishOrderCompleted(ctx, event); err != nil {
		h.logger.Error("publishing order completed event failed",
			"order_id", o.ID().String(), "error", err)
	}
}
