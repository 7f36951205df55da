// Package ports defines the contracts between the lifecycle core and the
// infrastructure: repositories, the unit of work, event publication,
// notification delivery and the clock.
package ports
