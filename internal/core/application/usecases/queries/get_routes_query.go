package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetRoutesQueryIsNotConstructed = errors.New(
		"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
	)
)

// GetRoutesQuery lists every recorded route leg.
type GetRoutesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRoutesQuery() GetRoutesQuery {
	return GetRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}
