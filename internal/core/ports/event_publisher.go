package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEnqueued  OrderEventType = "order.enqueued"
	OrderProcessed OrderEventType = "order.processed"
)

// OrderEvent is emitted after the queue has been changed. Publishing is best
// effort: a failed publish never undoes the queue change.
type OrderEvent struct {
	ID               kernel.UUID
	Type             OrderEventType
	OrderID          string
	CustomerLocation kernel.Location
	OccurredAt       time.Time
}

// EventPublisher delivers order events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

// NopEventPublisher discards every event. It is used when no broker is configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, OrderEvent) error {
	return nil
}
