package commands

import (
	"context"
	"fmt"
	"time"

	"boxoffice/internal/core/ports"
)

// CancelAbandonedOrdersCommandHandler cancels orders that were submitted but
// never resolved within the configured age. Orders that already reached a
// terminal status are left untouched; cancellation only targets orders still
// stuck mid-pipeline.
//
// Example:
//
//	handler := NewCancelAbandonedOrdersCommandHandler(sessions, 30*time.Minute)
//	err := handler.Handle(ctx, NewCancelAbandonedOrdersCommand())
type CancelAbandonedOrdersCommandHandler struct {
	sessions ports.SessionStore
	maxAge   time.Duration
	now      func() time.Time
}

// NewCancelAbandonedOrdersCommandHandler creates a handler for the abandoned
// order sweep. maxAge controls how long an unresolved order may linger before
// it is cancelled.
func NewCancelAbandonedOrdersCommandHandler(
	sessions ports.SessionStore,
	maxAge time.Duration,
) CancelAbandonedOrdersCommandHandler {
	return CancelAbandonedOrdersCommandHandler{
		sessions: sessions,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Handle scans every session and cancels stale unresolved orders.
func (h *CancelAbandonedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelAbandonedOrdersCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sessions, err := h.sessions.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	cutoff := h.now().Add(-h.maxAge)
	for _, s := range sessions {
		o := s.CurrentOrder()
		if o == nil || o.Status().IsTerminal() {
			continue
		}
		if s.SubmittedAt().After(cutoff) {
			continue
		}
		// Resolved-in-the-meantime races surface as transition errors,
		// which are safe to ignore here.
		_ = s.CancelCurrentOrder()
	}

	return nil
}
