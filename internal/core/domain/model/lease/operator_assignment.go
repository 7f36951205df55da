package lease

import (
	"fmt"
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
)

// OperatorRole tells whether an operator is the one metrics are attributed to.
type OperatorRole string

const (
	RolePrimary   OperatorRole = "PRIMARY"
	RoleSecondary OperatorRole = "SECONDARY"
)

func ParseOperatorRole(s string) (OperatorRole, error) {
	r := OperatorRole(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r OperatorRole) Validate() error {
	if r != RolePrimary && r != RoleSecondary {
		return errs.NewValueIsInvalidErrorWithCause("operator role", fmt.Errorf("%q is not PRIMARY or SECONDARY", string(r)))
	}
	return nil
}

// OperatorAssignment is one entry of the lease's ordered operator list.
type OperatorAssignment struct {
	operatorID kernel.UUID
	role       OperatorRole
	assignedAt time.Time
}

func NewOperatorAssignment(operatorID kernel.UUID, role OperatorRole, assignedAt time.Time) (OperatorAssignment, error) {
	if err := operatorID.Validate(); err != nil {
		return OperatorAssignment{}, errs.NewValueIsRequiredErrorWithCause("operator id", err)
	}
	if err := role.Validate(); err != nil {
		return OperatorAssignment{}, err
	}
	if assignedAt.IsZero() {
		return OperatorAssignment{}, errs.NewValueIsRequiredError("assigned at")
	}
	return OperatorAssignment{operatorID: operatorID, role: role, assignedAt: assignedAt}, nil
}

func (a OperatorAssignment) OperatorID() kernel.UUID { return a.operatorID }

func (a OperatorAssignment) Role() OperatorRole { return a.role }

func (a OperatorAssignment) AssignedAt() time.Time { return a.assignedAt }
