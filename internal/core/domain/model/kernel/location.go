package kernel

import (
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is an opaque identifier of a place in the delivery network
// ("Warehouse", "Loc1", a street address). Locations are compared by their
// identifier only, so they can be used directly as map keys. The identifier
// is not checked against the route graph: an order may name a location no
// route knows about.
//
// Example:
//
//	depot, err := kernel.NewLocation("Depot")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(depot) // Depot
type Location struct { //nolint:recvcheck //using for validation
	id    string
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from a non-empty identifier. The identifier
// is kept verbatim, including surrounding whitespace and letter case.
func NewLocation(id string) (Location, error) {
	if id == "" {
		return Location{}, errs.NewValueIsRequiredError("location")
	}

	return Location{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewLocation is NewLocation for identifiers known to be valid. It panics
// on an empty identifier.
func MustNewLocation(id string) Location {
	loc, err := NewLocation(id)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate reports whether the Location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// ID returns the raw identifier.
func (l Location) ID() string {
	return l.id
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return l.id
}

// IsEqual compares two locations by identifier.
func (l Location) IsEqual(other Location) bool {
	return l.id == other.id
}
