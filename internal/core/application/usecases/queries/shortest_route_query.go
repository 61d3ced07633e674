// Package queries contains read operations over the dispatch state.
// Queries never change the route graph or the order queue.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrShortestRouteQueryIsNotConstructed = errors.New(
		"ShortestRouteQuery must be created via NewShortestRouteQuery constructor",
	)
)

// ShortestRouteQuery asks for the shortest distance between two locations.
//
// Example:
//
//	query, err := NewShortestRouteQuery("A", "C")
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if err == nil && resp.Found {
//	    fmt.Printf("%s -> %s: %s\n", resp.Start, resp.End, resp.Distance)
//	}
type ShortestRouteQuery struct { //nolint:recvcheck //using for validation
	start kernel.Location
	end   kernel.Location

	guard guard.ConstructorGuard
}

// NewShortestRouteQuery validates that both endpoints are present. Neither
// needs to exist in the graph.
func NewShortestRouteQuery(start, end string) (ShortestRouteQuery, error) {
	q := ShortestRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStart(start),
		q.setEnd(end),
	); err != nil {
		return ShortestRouteQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ShortestRouteQuery) Validate() error {
	return q.guard.Validate(ErrShortestRouteQueryIsNotConstructed)
}

func (q ShortestRouteQuery) Start() kernel.Location {
	return q.start
}

func (q ShortestRouteQuery) End() kernel.Location {
	return q.end
}

func (q *ShortestRouteQuery) setStart(start string) error {
	loc, err := kernel.NewLocation(start)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("start", err)
	}
	q.start = loc
	return nil
}

func (q *ShortestRouteQuery) setEnd(end string) error {
	loc, err := kernel.NewLocation(end)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("end", err)
	}
	q.end = loc
	return nil
}

// ShortestRouteQueryResponse carries the outcome. Distance is meaningful only
// when Found is true.
type ShortestRouteQueryResponse struct {
	Start    kernel.Location
	End      kernel.Location
	Distance kernel.Distance
	Found    bool
}
