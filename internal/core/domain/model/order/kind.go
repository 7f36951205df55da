package order

import (
	"fmt"

	"agrirent/internal/pkg/errs"
)

// Kind classifies an order by commitment size. It is derived once, when the
// order is created, from the category thresholds in force at that moment and
// never recomputed.
type Kind string

const (
	// Rent is a short commitment below the category thresholds, fulfilled by
	// the device's serving intermediary.
	Rent Kind = "RENT"

	// Lease is a commitment exceeding a category threshold, handled by an
	// administrator and convertible into a lease.
	Lease Kind = "LEASE"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	if k != Rent && k != Lease {
		return errs.NewValueIsInvalidErrorWithCause("order kind", fmt.Errorf("%q is not RENT or LEASE", string(k)))
	}
	return nil
}

func (k Kind) String() string {
	return string(k)
}
