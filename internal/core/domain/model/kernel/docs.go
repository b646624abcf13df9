// Package kernel provides core domain primitives shared by every aggregate
// in the delivery management system.
//
// The package includes:
//   - UUID: a value object for aggregate identifiers with validation and comparison
//   - GeoPoint: a latitude/longitude value object with haversine distance
//
// These primitives enforce their invariants at construction time, are
// immutable, and are safe for concurrent use. Aggregates build on them
// instead of raw strings and floats so that an identifier or coordinate that
// reaches the domain layer is always valid.
package kernel
