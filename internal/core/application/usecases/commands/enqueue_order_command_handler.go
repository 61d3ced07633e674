package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// EnqueueOrderCommandHandler appends orders to the processing queue and
// announces them through the event publisher.
//
// Example:
//
//	handler := NewEnqueueOrderCommandHandler(queue, publisher, logger)
//	cmd, _ := NewEnqueueOrderCommand("o1", "Loc1")
//
//	pending, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders waiting\n", len(pending))
type EnqueueOrderCommandHandler struct {
	queue     ports.OrderQueue
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewEnqueueOrderCommandHandler(
	queue ports.OrderQueue,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) EnqueueOrderCommandHandler {
	return EnqueueOrderCommandHandler{
		queue:     queue,
		publisher: publisher,
		logger:    logger.With("component", "enqueue_order_handler"),
		now:       time.Now,
	}
}

// Handle enqueues the order and returns the queue contents, head first.
// A failed event publish is logged and does not fail the command.
func (h EnqueueOrderCommandHandler) Handle(ctx context.Context, cmd EnqueueOrderCommand) ([]order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerLocation())
	if err != nil {
		return nil, err
	}

	pending := h.queue.Enqueue(o)

	publishOrderEvent(ctx, h.publisher, h.logger, ports.OrderEvent{
		ID:               kernel.NewUUID(),
		Type:             ports.OrderEnqueued,
		OrderID:          o.ID(),
		CustomerLocation: o.CustomerLocation(),
		OccurredAt:       h.now().UTC(),
	})

	return pending, nil
}

func publishOrderEvent(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, event ports.OrderEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish order event",
			"event_type", string(event.Type),
			"order_id", event.OrderID,
			"error", err,
		)
	}
}
