// Package routing provides the route graph of the dispatch service: a directed,
// weighted graph of named locations that answers single-pair shortest-distance
// queries.
//
// Key rules:
//   - Edges are directed; A→B says nothing about B→A
//   - Parallel edges between the same pair are kept as recorded
//   - The graph only grows; there is no edge removal or update
//   - Only distances are computed, never the path itself
//
// A missing route is a normal outcome reported through the comma-ok result of
// ShortestDistance, not an error.
package routing
