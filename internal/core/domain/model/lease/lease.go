package lease

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// EntityType is the audit entity name of leases.
const EntityType = "lease"

var (
	ErrLeaseIsNotConstructed = errors.New("Lease must be created via NewLease constructor")
	ErrLeaseIsCompleted      = errs.NewPreconditionFailedError("lease is completed")
	ErrPrimaryOperatorTaken  = errs.NewPreconditionFailedError("lease already has a PRIMARY operator")
)

// Lease is the aggregate root for a device handed to an intermediary.
//
// Business rules:
//   - a lease starts ACTIVE when its start date is today or earlier, PENDING otherwise
//   - estimated price and deposit are never negative
//   - a COMPLETED lease accepts no more operators
//   - whether a second PRIMARY operator is accepted is decided by the caller
//     (see AssignOperator)
type Lease struct {
	id             kernel.UUID
	orderID        kernel.UUID
	deviceID       kernel.UUID
	intermediaryID kernel.UUID
	status         Status
	commitment     Commitment
	estimatedPrice decimal.Decimal
	deposit        decimal.Decimal
	startDate      kernel.Date
	endDate        *kernel.Date
	operators      []OperatorAssignment
	signedBy       kernel.UUID
	attachments    []Attachment
	notes          string
	createdAt      time.Time
	updatedAt      time.Time
	version        int64

	events.Recorder

	isConstructed bool
}

// NewLease creates a lease for an accepted LEASE order.
//
// Parameters:
//   - orderID: the order the lease is created from
//   - intermediaryID: the order's requester, who receives the device
//   - signedBy: the administrator creating the lease
//   - today: the current calendar day, used to pick PENDING or ACTIVE
//
// Records lease.created.
func NewLease(
	id, orderID, deviceID, intermediaryID kernel.UUID,
	commitment Commitment,
	estimatedPrice, deposit decimal.Decimal,
	startDate kernel.Date,
	signedBy kernel.UUID,
	notes string,
	today kernel.Date,
	at time.Time,
) (*Lease, error) {
	status := Active
	if startDate.After(today) {
		status = Pending
	}

	l := &Lease{
		status:        status,
		notes:         notes,
		createdAt:     at,
		updatedAt:     at,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(id, orderID, deviceID, intermediaryID, signedBy),
		l.setCommitment(commitment),
		l.setMoney(estimatedPrice, deposit),
		l.setStartDate(startDate),
	); err != nil {
		return nil, err
	}

	l.Record(events.Event{
		Name:       events.LeaseCreated,
		EntityType: EntityType,
		EntityID:   l.id,
		Action:     events.ActionCreate,
		ToState:    l.status.String(),
		ActorID:    kernel.UUIDPtr(signedBy),
		Note:       notes,
		OccurredAt: at,
		Recipients: l.recipients(),
		Attributes: map[string]string{
			"order_id":        l.orderID.String(),
			"device_id":       l.deviceID.String(),
			"estimated_price": l.estimatedPrice.String(),
		},
	})

	return l, nil
}

// Snapshot carries every persisted field of a lease for RestoreLease.
type Snapshot struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	DeviceID       kernel.UUID
	IntermediaryID kernel.UUID
	Status         Status
	Commitment     Commitment
	EstimatedPrice decimal.Decimal
	Deposit        decimal.Decimal
	StartDate      kernel.Date
	EndDate        *kernel.Date
	Operators      []OperatorAssignment
	SignedBy       kernel.UUID
	Attachments    []Attachment
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

// RestoreLease rehydrates a lease from storage without recording events.
func RestoreLease(s Snapshot) (*Lease, error) {
	l := &Lease{
		endDate:       s.EndDate,
		operators:     slices.Clone(s.Operators),
		attachments:   slices.Clone(s.Attachments),
		notes:         s.Notes,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(s.ID, s.OrderID, s.DeviceID, s.IntermediaryID, s.SignedBy),
		s.Status.Validate(),
		l.setCommitment(s.Commitment),
		l.setMoney(s.EstimatedPrice, s.Deposit),
		l.setStartDate(s.StartDate),
	); err != nil {
		return nil, err
	}
	if s.Version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", s.Version, 1, "unbounded")
	}

	l.status = s.Status
	l.version = s.Version
	return l, nil
}

func (l *Lease) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLeaseIsNotConstructed
	}
	return nil
}

func (l *Lease) ID() kernel.UUID { return l.id }

func (l *Lease) OrderID() kernel.UUID { return l.orderID }

func (l *Lease) DeviceID() kernel.UUID { return l.deviceID }

func (l *Lease) IntermediaryID() kernel.UUID { return l.intermediaryID }

func (l *Lease) Status() Status { return l.status }

func (l *Lease) Commitment() Commitment { return l.commitment }

func (l *Lease) EstimatedPrice() decimal.Decimal { return l.estimatedPrice }

func (l *Lease) Deposit() decimal.Decimal { return l.deposit }

func (l *Lease) StartDate() kernel.Date { return l.startDate }

// EndDate is nil while the lease is ongoing.
func (l *Lease) EndDate() *kernel.Date {
	if l.endDate == nil {
		return nil
	}
	d := *l.endDate
	return &d
}

// Operators returns the assignments in the order they were made.
func (l *Lease) Operators() []OperatorAssignment { return slices.Clone(l.operators) }

func (l *Lease) SignedBy() kernel.UUID { return l.signedBy }

func (l *Lease) Attachments() []Attachment { return slices.Clone(l.attachments) }

func (l *Lease) Notes() string { return l.notes }

func (l *Lease) CreatedAt() time.Time { return l.createdAt }

func (l *Lease) UpdatedAt() time.Time { return l.updatedAt }

func (l *Lease) Version() int64 { return l.version }

// AdvanceVersion is called by repositories after a successful compare-and-swap write.
func (l *Lease) AdvanceVersion() { l.version++ }

// PrimaryOperator returns the first PRIMARY assignment, if any.
func (l *Lease) PrimaryOperator() (OperatorAssignment, bool) {
	for _, a := range l.operators {
		if a.role == RolePrimary {
			return a, true
		}
	}
	return OperatorAssignment{}, false
}

// AssignOperator appends an operator assignment.
//
// When enforceSinglePrimary is set a second PRIMARY assignment fails with
// ErrPrimaryOperatorTaken; otherwise it is accepted and the earliest PRIMARY
// stays the one PrimaryOperator reports.
func (l *Lease) AssignOperator(
	operatorID kernel.UUID,
	role OperatorRole,
	enforceSinglePrimary bool,
	actorID *kernel.UUID,
	at time.Time,
) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.status == Completed {
		return ErrLeaseIsCompleted
	}

	assignment, err := NewOperatorAssignment(operatorID, role, at)
	if err != nil {
		return err
	}
	if enforceSinglePrimary && role == RolePrimary {
		if _, taken := l.PrimaryOperator(); taken {
			return ErrPrimaryOperatorTaken
		}
	}

	l.operators = append(l.operators, assignment)
	l.updatedAt = at
	l.Record(events.Event{
		Name:       events.LeaseOperatorAssigned,
		EntityType: EntityType,
		EntityID:   l.id,
		Action:     events.ActionUpdate,
		FromState:  l.status.String(),
		ToState:    l.status.String(),
		ActorID:    actorID,
		OccurredAt: at,
		Recipients: append(l.recipients(), events.Recipient{
			UserID: kernel.UUIDPtr(operatorID),
			Role:   kernel.RoleOperator,
		}),
		Attributes: map[string]string{
			"operator_id": operatorID.String(),
			"role":        string(role),
		},
	})
	return nil
}

// Activate moves a PENDING lease to ACTIVE once its start date has arrived.
func (l *Lease) Activate(today kernel.Date, at time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.status != Pending {
		return errs.NewPreconditionFailedError(fmt.Sprintf("lease is %s, not PENDING", l.status))
	}
	if l.startDate.After(today) {
		return errs.NewPreconditionFailedError(fmt.Sprintf("lease starts on %s", l.startDate))
	}

	l.changeStatus(Active, events.LeaseActivated, nil, "", at)
	return nil
}

// Complete ends the lease on endDate.
func (l *Lease) Complete(endDate kernel.Date, actorID kernel.UUID, note string, at time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.status == Completed {
		return ErrLeaseIsCompleted
	}
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("end date")
	}
	if endDate.Before(l.startDate) {
		return errs.NewValueIsInvalidErrorWithCause("end date",
			fmt.Errorf("%s is before start date %s", endDate, l.startDate))
	}

	l.endDate = &endDate
	l.changeStatus(Completed, events.LeaseCompleted, kernel.UUIDPtr(actorID), note, at)
	return nil
}

// AttachDocument appends a signed document.
func (l *Lease) AttachDocument(a Attachment, actorID kernel.UUID, at time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if a.url == "" {
		return errs.NewValueIsRequiredError("attachment")
	}

	l.attachments = append(l.attachments, a)
	l.updatedAt = at
	l.Record(events.Event{
		Name:       events.LeaseDocumentAttached,
		EntityType: EntityType,
		EntityID:   l.id,
		Action:     events.ActionUpdate,
		FromState:  l.status.String(),
		ToState:    l.status.String(),
		ActorID:    kernel.UUIDPtr(actorID),
		OccurredAt: at,
		Recipients: l.recipients(),
		Attributes: map[string]string{
			"document_type": a.documentType,
			"url":           a.url,
		},
	})
	return nil
}

func (l *Lease) changeStatus(to Status, name string, actorID *kernel.UUID, note string, at time.Time) {
	from := l.status
	l.status = to
	l.updatedAt = at
	l.Record(events.Event{
		Name:       name,
		EntityType: EntityType,
		EntityID:   l.id,
		Action:     events.ActionUpdate,
		FromState:  from.String(),
		ToState:    to.String(),
		ActorID:    actorID,
		Note:       note,
		OccurredAt: at,
		Recipients: l.recipients(),
	})
}

func (l *Lease) recipients() []events.Recipient {
	return []events.Recipient{
		{UserID: kernel.UUIDPtr(l.intermediaryID), Role: kernel.RoleIntermediary},
		{Role: kernel.RoleAdmin},
	}
}

func (l *Lease) setIDs(id, orderID, deviceID, intermediaryID, signedBy kernel.UUID) error {
	err := errors.Join(
		requireID("lease id", id),
		requireID("order id", orderID),
		requireID("device id", deviceID),
		requireID("intermediary id", intermediaryID),
		requireID("signed by", signedBy),
	)
	if err != nil {
		return err
	}
	l.id, l.orderID, l.deviceID, l.intermediaryID, l.signedBy = id, orderID, deviceID, intermediaryID, signedBy
	return nil
}

func (l *Lease) setCommitment(c Commitment) error {
	if err := c.Validate(); err != nil {
		return err
	}
	l.commitment = c
	return nil
}

func (l *Lease) setMoney(estimatedPrice, deposit decimal.Decimal) error {
	var err error
	if estimatedPrice.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("estimated price",
			fmt.Errorf("%s is negative", estimatedPrice)))
	}
	if deposit.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("deposit",
			fmt.Errorf("%s is negative", deposit)))
	}
	if err != nil {
		return err
	}
	l.estimatedPrice = estimatedPrice
	l.deposit = deposit
	return nil
}

func (l *Lease) setStartDate(d kernel.Date) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}
	l.startDate = d
	return nil
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
