// Package lease holds the Lease aggregate: control of a device granted to an
// intermediary after an administrator approved a LEASE order.
//
// A lease is created PENDING or ACTIVE depending on its start date, collects
// operator assignments and signed documents while it runs, and ends
// COMPLETED. The device's current lease reference points back to the lease
// while it is not completed.
package lease
