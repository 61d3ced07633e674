package queries

import (
	"context"

	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/ports"
)

type GetRoutesQueryHandler struct {
	graph ports.RouteGraph
}

func NewGetRoutesQueryHandler(graph ports.RouteGraph) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{graph: graph}
}

// Handle returns the edges grouped by source location, in insertion order
// within each source.
func (h GetRoutesQueryHandler) Handle(_ context.Context, query GetRoutesQuery) ([]routing.Edge, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.graph.Edges(), nil
}
