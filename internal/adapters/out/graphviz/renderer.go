// Package graphviz renders the route graph in the Graphviz DOT language.
package graphviz

import (
	"fmt"
	"strconv"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"

	"github.com/awalterschulze/gographviz"
)

const graphName = "routes"

// RenderDOT builds a directed DOT graph with one node per location and one
// labelled edge per recorded route leg. Parallel legs stay separate edges.
func RenderDOT(edges []routing.Edge) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	if err := graph.AddAttr(graphName, "rankdir", "LR"); err != nil {
		return "", err
	}

	for _, e := range edges {
		for _, loc := range []kernel.Location{e.From, e.To} {
			id := nodeID(loc)
			if graph.IsNode(id) {
				continue
			}
			if err := graph.AddNode(graphName, id, map[string]string{
				"label": id,
			}); err != nil {
				return "", fmt.Errorf("add node %s: %w", loc, err)
			}
		}

		if err := graph.AddEdge(nodeID(e.From), nodeID(e.To), true, map[string]string{
			"label": strconv.Quote(e.Distance.String()),
		}); err != nil {
			return "", fmt.Errorf("add edge %s -> %s: %w", e.From, e.To, err)
		}
	}

	return graph.String(), nil
}

// Location identifiers are free text, so every ID is emitted as a quoted string.
func nodeID(loc kernel.Location) string {
	return strconv.Quote(loc.ID())
}
