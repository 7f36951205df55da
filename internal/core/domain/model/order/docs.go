// Package order provides the Order aggregate of the rental marketplace: a
// user's request to use a device for a period, classified as RENT or LEASE.
//
// The package includes:
//   - Order: the aggregate root (identity, kind, handler, usage, period, status)
//   - Status and StateMachine: the lifecycle states and the fixed transition table
//   - Kind and Handler: values derived once at creation and never recomputed
//   - Usage, Period, Requester: validated value objects describing the request
//
// Key business rules:
//   - status changes only through Order.ChangeStatus, which consults the state machine
//   - LEASE orders are handled by administrators, RENT orders by the device's serving intermediary
//   - requested hours and area, when given, are non-negative
//   - the end date is not before the start date
package order
