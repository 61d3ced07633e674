package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAddRouteCommandIsNotConstructed = errors.New(
		"AddRouteCommand must be created via NewAddRouteCommand constructor",
	)
)

// AddRouteCommand records a directed route leg between two locations.
//
// Example:
//
//	cmd, err := NewAddRouteCommand("Warehouse", "Loc1", 12.5)
//	if err != nil {
//	    return fmt.Errorf("invalid route: %w", err)
//	}
//	graph, err := handler.Handle(ctx, cmd)
type AddRouteCommand struct { //nolint:recvcheck //using for validation
	from     kernel.Location
	to       kernel.Location
	distance kernel.Distance

	guard guard.ConstructorGuard
}

// NewAddRouteCommand validates both endpoints and the distance. Negative, NaN
// and infinite distances are rejected.
func NewAddRouteCommand(from, to string, distance float64) (AddRouteCommand, error) {
	cmd := AddRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFrom(from),
		cmd.setTo(to),
		cmd.setDistance(distance),
	); err != nil {
		return AddRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRouteCommand) Validate() error {
	return c.guard.Validate(ErrAddRouteCommandIsNotConstructed)
}

func (c AddRouteCommand) From() kernel.Location {
	return c.from
}

func (c AddRouteCommand) To() kernel.Location {
	return c.to
}

func (c AddRouteCommand) Distance() kernel.Distance {
	return c.distance
}

func (c *AddRouteCommand) setFrom(from string) error {
	loc, err := kernel.NewLocation(from)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("from", err)
	}
	c.from = loc
	return nil
}

func (c *AddRouteCommand) setTo(to string) error {
	loc, err := kernel.NewLocation(to)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("to", err)
	}
	c.to = loc
	return nil
}

func (c *AddRouteCommand) setDistance(distance float64) error {
	d, err := kernel.NewDistance(distance)
	if err != nil {
		return err
	}
	c.distance = d
	return nil
}
