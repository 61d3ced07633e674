// Package ports defines the contracts between the application layer and the
// state it drives: the route graph, the order queue and the order event sink.
// Use cases depend on these interfaces only, so they can be tested with mocks.
package ports

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"
)

// RouteGraph is the routing engine as seen by the use cases.
// *routing.Graph implements it.
type RouteGraph interface {
	// AddEdge records a directed leg. It always succeeds.
	AddEdge(from, to kernel.Location, distance kernel.Distance)

	// ShortestDistance returns the shortest route length; found is false
	// when end is unreachable from start.
	ShortestDistance(start, end kernel.Location) (distance kernel.Distance, found bool)

	// Edges returns a snapshot of every recorded edge.
	Edges() []routing.Edge
}
