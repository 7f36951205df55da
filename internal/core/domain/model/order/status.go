package order

import (
	"fmt"

	"agrirent/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (see StateMachine):
//
//	Draft ──> InterestRaised ──┬──> UnderReview ──┬──> Accepted ──> PickupScheduled ──> Active ──> Completed ──> Closed
//	                           │                  └──> Rejected
//	                           ├──> Accepted
//	                           ├──> Rejected
//	                           └──> Cancelled
//
// Closed, Rejected and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is an intent captured during discovery that was not submitted yet.
	Draft

	// InterestRaised is a submitted request waiting for its handler.
	InterestRaised

	// UnderReview means the handler is evaluating the request.
	UnderReview

	// Accepted means the handler approved the request. Accepted LEASE orders
	// can be converted into a lease.
	Accepted

	// PickupScheduled means a hand-over date for the device is agreed.
	PickupScheduled

	// Active means the device is in use by the requester.
	Active

	// Completed means the usage period is over and the device is returned.
	Completed

	// Closed is the final settled state.
	Closed

	// Rejected means the handler declined the request.
	Rejected

	// Cancelled means the requester withdrew the request.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Draft:           "DRAFT",
		InterestRaised:  "INTEREST_RAISED",
		UnderReview:     "UNDER_REVIEW",
		Accepted:        "ACCEPTED",
		PickupScheduled: "PICKUP_SCHEDULED",
		Active:          "ACTIVE",
		Completed:       "COMPLETED",
		Closed:          "CLOSED",
		Rejected:        "REJECTED",
		Cancelled:       "CANCELLED",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Draft, InterestRaised, UnderReview, Accepted, PickupScheduled,
		Active, Completed, Closed, Rejected, Cancelled,
	}
}

// ParseStatus converts a status name such as "UNDER_REVIEW" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-case name of the status, or "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Rejected || s == Cancelled
}
