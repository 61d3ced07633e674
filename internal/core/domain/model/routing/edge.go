package routing

import (
	"dispatch/internal/core/domain/model/kernel"
)

// Edge is a single directed route leg as recorded by AddEdge.
type Edge struct {
	From     kernel.Location
	To       kernel.Location
	Distance kernel.Distance
}

// leg is the adjacency-list entry stored under the source location.
type leg struct {
	to       kernel.Location
	distance float64
}
