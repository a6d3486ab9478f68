package ports

import (
	"context"
	"time"
)

// OrderCompletedEvent is the integration event emitted once an order has
// finished processing successfully.
type OrderCompletedEvent struct {
	OrderID     string    `json:"order_id"`
	SessionID   string    `json:"session_id"`
	Seats       []string  `json:"seats"`
	Total       float64   `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventPublisher pushes integration events to the message broker for
// downstream consumers (ticket delivery, analytics).
type EventPublisher interface {
	PublishOrderCompleted(ctx context.Context, event OrderCompletedEvent) error
}
