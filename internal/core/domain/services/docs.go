// Package services provides the pure decision services of the order and lease
// lifecycle that don't belong to a single aggregate.
//
// The package includes:
//   - ThresholdResolver: classifies a usage request as RENT or LEASE
//   - PricingResolver: resolves the price rule in force and detects overlapping rules
//
// Both read through narrow reader interfaces that the persistence ports satisfy.
package services
