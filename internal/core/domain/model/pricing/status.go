package pricing

import (
	"fmt"

	"agrirent/internal/pkg/errs"
)

// Status tells whether a rule takes part in price resolution.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause("pricing rule status", fmt.Errorf("%q is not ACTIVE or INACTIVE", string(s)))
	}
	return nil
}
