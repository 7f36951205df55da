// Package operator holds the people who drive leased machines.
package operator

import (
	"errors"
	"strings"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
)

var ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")

// Operator is referenced by lease operator assignments. Only its existence
// matters to the lease flow.
type Operator struct {
	id    kernel.UUID
	name  string
	phone string

	isConstructed bool
}

func NewOperator(id kernel.UUID, name, phone string) (*Operator, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("operator name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}
	return &Operator{id: id, name: name, phone: strings.TrimSpace(phone), isConstructed: true}, nil
}

func (o *Operator) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperatorIsNotConstructed
	}
	return nil
}

func (o *Operator) ID() kernel.UUID { return o.id }

func (o *Operator) Name() string { return o.name }

func (o *Operator) Phone() string { return o.phone }
