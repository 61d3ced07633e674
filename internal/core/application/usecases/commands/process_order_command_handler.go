package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ProcessOrderCommandHandler dequeues the next order for processing.
//
// Example:
//
//	o, ok, err := handler.Handle(ctx, NewProcessOrderCommand())
//	switch {
//	case err != nil:
//	    return err
//	case !ok:
//	    log.Println("No orders to process")
//	default:
//	    log.Printf("Processing order %s", o.ID())
//	}
type ProcessOrderCommandHandler struct {
	queue     ports.OrderQueue
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewProcessOrderCommandHandler(
	queue ports.OrderQueue,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		queue:     queue,
		publisher: publisher,
		logger:    logger.With("component", "process_order_handler"),
		now:       time.Now,
	}
}

// Handle removes the head of the queue. ok is false when there was nothing to
// process; that is not an error.
func (h ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (order.Order, bool, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, false, err
	}

	o, ok := h.queue.Dequeue()
	if !ok {
		return order.Order{}, false, nil
	}

	publishOrderEvent(ctx, h.publisher, h.logger, ports.OrderEvent{
		ID:               kernel.NewUUID(),
		Type:             ports.OrderProcessed,
		OrderID:          o.ID(),
		CustomerLocation: o.CustomerLocation(),
		OccurredAt:       h.now().UTC(),
	})

	return o, true, nil
}
