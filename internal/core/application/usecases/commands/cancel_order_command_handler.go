package commands

import (
	"context"
	"errors"
	"log/slog"

	"boxoffice/internal/core/domain/model/session"
	"boxoffice/internal/core/ports"
)

// CancelOrderCommandHandler cancels a session's in-flight current order.
// Cancellation only changes the order's state; the seat selection and its
// holds stay in place so the buyer can submit again.
type CancelOrderCommandHandler struct {
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(sessions ports.SessionStore, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		sessions: sessions,
		logger:   logger.With("component", "cancel_order"),
	}
}

// Handle cancels the current order. Cancelling an order that already
// resolved is ignored: the rejected transition is logged, the order keeps
// its state and the caller sees success. Callers inspect the order's
// status, not an error, to learn the outcome.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = s.CancelCurrentOrder(); err != nil {
		if errors.Is(err, session.ErrNoCurrentOrder) {
			return err
		}
		h.logger.InfoContext(ctx, "cancellation of resolved order ignored",
			"session_id", s.ID().String(), "error", err)
	}

	return nil
}
