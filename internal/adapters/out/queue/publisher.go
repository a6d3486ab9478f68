// Package queue publishes integration events to RabbitMQ. Publishing is
// best effort from the caller's point of view: errors are logged and
// returned so callers can decide whether to ignore them.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"boxoffice/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderCompletedQueue is the queue name for order completed events.
const OrderCompletedQueue = "order.completed"

// AmqpPublisher publishes events over a shared RabbitMQ connection.
// Each publish opens its own channel; channels are not safe for
// concurrent use, connections are.
type AmqpPublisher struct {
	conn   *amqp.Connection
	logger *slog.Logger
}

// NewAmqpPublisher creates a publisher over an established connection.
func NewAmqpPublisher(conn *amqp.Connection, logger *slog.Logger) *AmqpPublisher {
	return &AmqpPublisher{
		conn:   conn,
		logger: logger.With("component", "event_publisher"),
	}
}

// PublishOrderCompleted publishes the event to the order.completed queue.
// The queue is declared durable and messages are marked persistent so they
// survive broker restarts.
func (p *AmqpPublisher) PublishOrderCompleted(ctx context.Context, event ports.OrderCompletedEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		p.logger.Error("channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err = ch.QueueDeclare(
		OrderCompletedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		p.logger.Error("queue declare failed", "queue", OrderCompletedQueue, "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err = ch.PublishWithContext(ctx,
		"",                  // default exchange
		OrderCompletedQueue, // routing key = queue name
		false,               // mandatory
		false,               // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	); err != nil {
		p.logger.Error("publish failed", "queue", OrderCompletedQueue, "error", err)
		return err
	}

	return nil
}

// NoopPublisher drops events. Used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that only logs.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger.With("component", "event_publisher")}
}

// PublishOrderCompleted logs the event and succeeds.
func (p *NoopPublisher) PublishOrderCompleted(_ context.Context, event ports.OrderCompletedEvent) error {
	p.logger.Info("order completed event dropped, no broker configured",
		"order_id", event.OrderID)
	return nil
}
