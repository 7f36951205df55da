package lease

import (
	"fmt"

	"agrirent/internal/pkg/errs"
)

// Status is the lifecycle state of a lease.
//
//	Pending ──> Active ──> Completed
//	   └───────────────────────^
type Status int

const (
	Unknown Status = iota
	Pending
	Active
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Active:    "ACTIVE",
		Completed: "COMPLETED",
	}
}

// ParseStatus converts "PENDING", "ACTIVE" or "COMPLETED" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("lease status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("lease status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
