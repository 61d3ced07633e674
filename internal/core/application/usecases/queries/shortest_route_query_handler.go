package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// ShortestRouteQueryHandler answers shortest distance questions from the route graph.
type ShortestRouteQueryHandler struct {
	graph ports.RouteGraph
}

func NewShortestRouteQueryHandler(graph ports.RouteGraph) ShortestRouteQueryHandler {
	return ShortestRouteQueryHandler{graph: graph}
}

// Handle runs the search. An unreachable end yields Found == false and no error.
func (h ShortestRouteQueryHandler) Handle(
	_ context.Context,
	query ShortestRouteQuery,
) (ShortestRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ShortestRouteQueryResponse{}, err
	}

	distance, found := h.graph.ShortestDistance(query.Start(), query.End())

	return ShortestRouteQueryResponse{
		Start:    query.Start(),
		End:      query.End(),
		Distance: distance,
		Found:    found,
	}, nil
}
