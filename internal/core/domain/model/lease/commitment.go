package lease

import (
	"errors"
	"fmt"

	"agrirent/internal/pkg/errs"
	"agrirent/internal/pkg/guard"
)

// CommitmentKind is the unit a lease commitment is measured in.
type CommitmentKind string

const (
	CommitmentHours CommitmentKind = "HOURS"
	CommitmentAcres CommitmentKind = "ACRES"
)

var ErrCommitmentIsNotConstructed = errors.New("Commitment must be created via NewCommitment constructor")

func (k CommitmentKind) Validate() error {
	if k != CommitmentHours && k != CommitmentAcres {
		return errs.NewValueIsInvalidErrorWithCause("commitment kind", fmt.Errorf("%q is not HOURS or ACRES", string(k)))
	}
	return nil
}

// Commitment is the amount of work the intermediary committed to, copied from
// the order at lease creation.
type Commitment struct { //nolint:recvcheck //using for validation
	kind  CommitmentKind
	value float64
	guard guard.ConstructorGuard
}

func NewCommitment(kind CommitmentKind, value float64) (Commitment, error) {
	if err := kind.Validate(); err != nil {
		return Commitment{}, err
	}
	if value < 0 {
		return Commitment{}, errs.NewValueIsInvalidErrorWithCause("commitment value", fmt.Errorf("%g is negative", value))
	}
	return Commitment{kind: kind, value: value, guard: guard.NewConstructorGuard()}, nil
}

// CommitmentFromUsage picks requested hours when present, otherwise requested area.
func CommitmentFromUsage(hours, area *float64) (Commitment, error) {
	switch {
	case hours != nil:
		return NewCommitment(CommitmentHours, *hours)
	case area != nil:
		return NewCommitment(CommitmentAcres, *area)
	default:
		return Commitment{}, errs.NewValueIsRequiredErrorWithCause("commitment",
			errors.New("order has neither requested hours nor requested area"))
	}
}

func (c Commitment) Validate() error { return c.guard.Validate(ErrCommitmentIsNotConstructed) }

func (c Commitment) Kind() CommitmentKind { return c.kind }

func (c Commitment) Value() float64 { return c.value }
