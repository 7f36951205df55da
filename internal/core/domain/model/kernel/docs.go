// Package kernel provides the shared domain primitives of the rental marketplace.
//
// The package includes:
//   - UUID: a value object for entity identifiers
//   - LocationCode: the normalised code of a service area used by pricing rules
//   - Date: a calendar day in UTC, the granularity of pricing windows and lease terms
//   - Actor: the authenticated caller of a use case (id and role)
//
// All value objects are immutable and must be created through their constructors;
// zero values fail validation.
package kernel
