// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var ErrTopicIsRequired = errors.New("kafka topic is required")

// OrderEventMessage is the JSON payload written for every order event.
type OrderEventMessage struct {
	EventID          string    `json:"eventId"`
	Type             string    `json:"type"`
	OrderID          string    `json:"orderId"`
	CustomerLocation string    `json:"customerLocation"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// OrderEventPublisher writes order events keyed by order ID, so every event of
// one order lands on the same partition.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

var _ ports.EventPublisher = (*OrderEventPublisher)(nil)

// NewOrderEventPublisher creates a publisher for the given brokers and topic.
// No connection is made until the first Publish.
func NewOrderEventPublisher(brokers []string, topic string) (*OrderEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}
	if topic == "" {
		return nil, ErrTopicIsRequired
	}

	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}, nil
}

func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	value, err := json.Marshal(NewOrderEventMessage(event))
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	if err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	}); err != nil {
		return fmt.Errorf("write order event %s: %w", event.ID, err)
	}
	return nil
}

// Close flushes pending writes and releases the connections.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func NewOrderEventMessage(event ports.OrderEvent) OrderEventMessage {
	return OrderEventMessage{
		EventID:          event.ID.String(),
		Type:             string(event.Type),
		OrderID:          event.OrderID,
		CustomerLocation: event.CustomerLocation.ID(),
		OccurredAt:       event.OccurredAt,
	}
}
