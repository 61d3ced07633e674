// Package guard lets value objects, commands and queries detect that they
// were built through their constructor rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created by a
// constructor. Its zero value reports "not constructed".
//
// Example:
//
//	var ErrShortestRouteQueryIsNotConstructed = errors.New("...")
//
//	type ShortestRouteQuery struct {
//	    start, end kernel.Location
//	    guard      guard.ConstructorGuard
//	}
//
//	func (q ShortestRouteQuery) Validate() error {
//	    return q.guard.Validate(ErrShortestRouteQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise,
// falling back to ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
