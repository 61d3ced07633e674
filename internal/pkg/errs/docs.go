// Package errs provides the error types shared by the dispatch service.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter name and an optional Cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel, so callers can classify errors without
//     knowing the concrete type
//
// The HTTP adapter relies on the sentinels to map domain validation failures
// to 400 responses.
package errs
