package kernel

import (
	"fmt"
	"math"
	"strconv"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrDistanceIsNotConstructed is returned when a zero-value Distance is used.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError("distance must be created via NewDistance")

// Distance is a finite, non-negative length of a route leg or of a whole route.
// Units are whatever the caller uses consistently (km, minutes, cost);
// the routing engine only adds and compares them.
//
// Negative values are rejected because shortest-path search assumes that
// extending a route never makes it shorter.
type Distance struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// ZeroDistance is the distance from any location to itself.
func ZeroDistance() Distance {
	return Distance{guard: guard.NewConstructorGuard()}
}

// NewDistance validates and wraps a raw distance.
//
// Returns:
//   - ValueIsInvalidError for NaN
//   - ValueIsOutOfRangeError for negative or infinite values
func NewDistance(value float64) (Distance, error) {
	if math.IsNaN(value) {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is not a number", value))
	}
	if value < 0 || math.IsInf(value, 0) {
		return Distance{}, errs.NewValueIsOutOfRangeError("distance", value, 0, math.MaxFloat64)
	}

	return Distance{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewDistance is NewDistance for constants. It panics on invalid input.
func MustNewDistance(value float64) Distance {
	d, err := NewDistance(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate reports whether the Distance was created through a constructor.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Value returns the raw number.
func (d Distance) Value() float64 {
	return d.value
}

// String formats the distance without trailing zeros.
func (d Distance) String() string {
	return strconv.FormatFloat(d.value, 'f', -1, 64)
}
