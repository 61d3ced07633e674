package commands

import (
	"context"

	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/ports"
)

// AddRouteCommandHandler records route legs in the route graph.
type AddRouteCommandHandler struct {
	graph ports.RouteGraph
}

func NewAddRouteCommandHandler(graph ports.RouteGraph) AddRouteCommandHandler {
	return AddRouteCommandHandler{graph: graph}
}

// Handle adds the leg and returns the graph as it stands afterwards.
func (h AddRouteCommandHandler) Handle(_ context.Context, cmd AddRouteCommand) ([]routing.Edge, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.graph.AddEdge(cmd.From(), cmd.To(), cmd.Distance())

	return h.graph.Edges(), nil
}
