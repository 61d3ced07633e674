package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

type GetPendingOrdersQueryHandler struct {
	queue ports.OrderQueue
}

func NewGetPendingOrdersQueryHandler(queue ports.OrderQueue) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{queue: queue}
}

// Handle reads the queue without removing anything.
func (h GetPendingOrdersQueryHandler) Handle(
	_ context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := h.queue.Snapshot()
	orders := make([]GetPendingOrdersQueryResponse, 0, len(pending))
	for _, o := range pending {
		orders = append(orders, GetPendingOrdersQueryResponse{
			OrderID:          o.ID(),
			CustomerLocation: o.CustomerLocation(),
		})
	}

	return orders, nil
}
