package order

import (
	"errors"
	"fmt"
	"strings"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
	"agrirent/internal/pkg/guard"
)

var (
	ErrPeriodIsNotConstructed    = errors.New("Period must be created via NewPeriod constructor")
	ErrRequesterIsNotConstructed = errors.New("Requester must be created via NewRequester constructor")
)

// Usage is the requested amount of work: machine hours, area in acres, or both.
// Either may be absent.
type Usage struct {
	hours *float64
	area  *float64
}

// NewUsage validates that supplied amounts are non-negative.
func NewUsage(hours, area *float64) (Usage, error) {
	if err := errors.Join(
		validateAmount("requested hours", hours),
		validateAmount("requested area", area),
	); err != nil {
		return Usage{}, err
	}
	return Usage{hours: copyFloat(hours), area: copyFloat(area)}, nil
}

func (u Usage) Hours() *float64 { return copyFloat(u.hours) }

func (u Usage) Area() *float64 { return copyFloat(u.area) }

// IsEmpty reports that neither hours nor area were requested.
func (u Usage) IsEmpty() bool { return u.hours == nil && u.area == nil }

func validateAmount(name string, v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is negative", *v))
	}
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Period is the requested usage window, both ends inclusive.
type Period struct { //nolint:recvcheck //using for validation
	start Date
	end   Date
	guard guard.ConstructorGuard
}

// Date is re-exported for brevity inside the package.
type Date = kernel.Date

// NewPeriod requires both dates and end >= start.
func NewPeriod(start, end Date) (Period, error) {
	if err := errors.Join(requireDate("start date", start), requireDate("end date", end)); err != nil {
		return Period{}, err
	}
	if end.Before(start) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause("end date",
			fmt.Errorf("%s is before start date %s", end, start))
	}
	return Period{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

func requireDate(name string, d Date) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func (p Period) Validate() error { return p.guard.Validate(ErrPeriodIsNotConstructed) }

func (p Period) Start() Date { return p.start }

func (p Period) End() Date { return p.end }

// Requester is the user who raised the order, with the contact details
// captured at that moment.
type Requester struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	name  string
	phone string
	guard guard.ConstructorGuard
}

func NewRequester(id kernel.UUID, name, phone string) (Requester, error) {
	if err := id.Validate(); err != nil {
		return Requester{}, err
	}
	return Requester{
		id:    id,
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (r Requester) Validate() error { return r.guard.Validate(ErrRequesterIsNotConstructed) }

func (r Requester) ID() kernel.UUID { return r.id }

func (r Requester) Name() string { return r.name }

func (r Requester) Phone() string { return r.phone }
