package kernel

import (
	"fmt"

	"agrirent/internal/pkg/errs"
	"agrirent/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor zero value reaches a use case.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor")

// Role is the marketplace role an authenticated user acts in.
type Role string

const (
	RoleUser         Role = "USER"
	RoleIntermediary Role = "INTERMEDIARY"
	RoleAdmin        Role = "ADMIN"
	RoleOperator     Role = "OPERATOR"
)

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleIntermediary, RoleAdmin, RoleOperator:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the caller of a use case, as established by the authentication layer.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID { return a.id }

func (a Actor) Role() Role { return a.role }

func (a Actor) IsAdmin() bool { return a.role == RoleAdmin }
