// Package pricing models price rules for a device category at a location.
//
// A rule without an end date is the standing (default) rule. A rule with an
// end date is time-bounded and overrides the standing rule inside its window.
// At most one ACTIVE standing rule may exist per category and location, and
// ACTIVE time-bounded windows of the same scope must not overlap.
package pricing
