// Package kernel holds the value objects shared by the routing and order
// models.
//
// The package includes:
//   - Location: an opaque, non-empty place identifier usable as a map key
//   - Distance: a finite, non-negative route length
//   - UUID: identifiers minted by the service (event IDs)
//
// All of them are immutable and must be created through their constructors;
// zero values fail Validate.
package kernel
