package routing

import (
	"math"
	"slices"
	"strings"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
)

// Graph is the route graph. It maps every location with at least one outgoing
// edge to its legs in insertion order. Locations that only appear as an edge
// target have no entry of their own.
//
// Graph is safe for concurrent use: insertions take an exclusive lock, queries
// a shared one, so an insertion never interleaves with another insertion or
// with a running search.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[kernel.Location][]leg
	edgeCount int
}

// NewGraph creates an empty route graph.
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[kernel.Location][]leg),
	}
}

// AddEdge records a directed leg from → to. The leg is appended to from's
// outgoing list; to's own list is left untouched. Recording the same pair twice
// keeps both legs.
//
// Inputs are value objects validated at construction, so AddEdge cannot fail.
func (g *Graph) AddEdge(from, to kernel.Location, distance kernel.Distance) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[from] = append(g.adjacency[from], leg{to: to, distance: distance.Value()})
	g.edgeCount++
}

// ShortestDistance returns the length of the shortest directed route from
// start to end. found is false when no route exists, including when either
// location is unknown to the graph. A location is always at distance 0 from
// itself.
//
// See shortestPath for the search itself.
func (g *Graph) ShortestDistance(start, end kernel.Location) (kernel.Distance, bool) {
	if start.IsEqual(end) {
		return kernel.ZeroDistance(), true
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	dist := shortestPath(g.adjacency, start, end)
	if math.IsInf(dist, 1) {
		return kernel.Distance{}, false
	}

	d, err := kernel.NewDistance(dist)
	if err != nil {
		// Only reachable if a constructed Distance held an invalid value.
		return kernel.Distance{}, false
	}
	return d, true
}

// Edges returns a snapshot of every recorded edge, grouped by source location
// in lexical order and, within a source, in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for _, from := range g.sources() {
		for _, l := range g.adjacency[from] {
			edges = append(edges, Edge{
				From:     from,
				To:       l.to,
				Distance: kernel.MustNewDistance(l.distance),
			})
		}
	}
	return edges
}

// Locations returns every location that is the source or the target of an
// edge, in lexical order.
func (g *Graph) Locations() []kernel.Location {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[kernel.Location]struct{}, len(g.adjacency))
	for from, legs := range g.adjacency {
		seen[from] = struct{}{}
		for _, l := range legs {
			seen[l.to] = struct{}{}
		}
	}

	locations := make([]kernel.Location, 0, len(seen))
	for loc := range seen {
		locations = append(locations, loc)
	}
	slices.SortFunc(locations, compareLocations)
	return locations
}

// EdgeCount returns the number of recorded edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// sources lists the adjacency keys in lexical order. Callers hold the lock.
func (g *Graph) sources() []kernel.Location {
	keys := make([]kernel.Location, 0, len(g.adjacency))
	for k := range g.adjacency {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareLocations)
	return keys
}

func compareLocations(a, b kernel.Location) int {
	return strings.Compare(a.ID(), b.ID())
}
