// Package device is the lifecycle engine's view of a listed machine: where it
// operates, who serves it locally and whether a lease currently holds it.
package device

import (
	"errors"
	"fmt"
	"time"

	"agrirent/internal/core/domain/events"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/pkg/errs"
)

// EntityType is the audit entity name of devices.
const EntityType = "device"

var (
	ErrDeviceIsNotConstructed = errors.New("Device must be created via NewDevice constructor")
	ErrNoDefaultPricingRule   = errs.NewPreconditionFailedError("device has no active standing pricing rule")
)

// Status is the availability of a device.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusLeased      Status = "LEASED"
	StatusMaintenance Status = "MAINTENANCE"
	StatusRetired     Status = "RETIRED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusAvailable, StatusLeased, StatusMaintenance, StatusRetired:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("device status", fmt.Errorf("%q is unknown", s))
	}
}

// Device is an aggregate root. Only the fields the order and lease flows
// consult are modelled.
type Device struct {
	id                    kernel.UUID
	categoryID            kernel.UUID
	location              kernel.LocationCode
	servingIntermediaryID *kernel.UUID
	currentLeaseID        *kernel.UUID
	status                Status
	public                bool
	version               int64

	events.Recorder

	isConstructed bool
}

// NewDevice registers an AVAILABLE, not yet public device.
func NewDevice(
	id, categoryID kernel.UUID,
	location kernel.LocationCode,
	servingIntermediaryID *kernel.UUID,
) (*Device, error) {
	return RestoreDevice(id, categoryID, location, servingIntermediaryID, nil, StatusAvailable, false, 1)
}

// RestoreDevice rehydrates a device from storage.
func RestoreDevice(
	id, categoryID kernel.UUID,
	location kernel.LocationCode,
	servingIntermediaryID, currentLeaseID *kernel.UUID,
	status Status,
	public bool,
	version int64,
) (*Device, error) {
	var categoryErr, versionErr error
	if err := categoryID.Validate(); err != nil {
		categoryErr = errs.NewValueIsRequiredErrorWithCause("category id", err)
	}
	if version < 1 {
		versionErr = errs.NewValueIsOutOfRangeError("version", version, 1, "unbounded")
	}
	_, statusErr := ParseStatus(string(status))

	if err := errors.Join(id.Validate(), categoryErr, location.Validate(), statusErr, versionErr); err != nil {
		return nil, err
	}

	return &Device{
		id:                    id,
		categoryID:            categoryID,
		location:              location,
		servingIntermediaryID: copyID(servingIntermediaryID),
		currentLeaseID:        copyID(currentLeaseID),
		status:                status,
		public:                public,
		version:               version,
		isConstructed:         true,
	}, nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	return kernel.UUIDPtr(*id)
}

func (d *Device) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeviceIsNotConstructed
	}
	return nil
}

func (d *Device) ID() kernel.UUID { return d.id }

func (d *Device) CategoryID() kernel.UUID { return d.categoryID }

func (d *Device) Location() kernel.LocationCode { return d.location }

func (d *Device) ServingIntermediaryID() *kernel.UUID { return copyID(d.servingIntermediaryID) }

func (d *Device) CurrentLeaseID() *kernel.UUID { return copyID(d.currentLeaseID) }

func (d *Device) Status() Status { return d.status }

func (d *Device) IsPublic() bool { return d.public }

func (d *Device) Version() int64 { return d.version }

func (d *Device) AdvanceVersion() { d.version++ }

// IsBookable reports whether orders may target the device. A leased device
// stays bookable: its intermediary sub-serves it.
func (d *Device) IsBookable() bool {
	return d.status == StatusAvailable || d.status == StatusLeased
}

// AttachLease points the device at a new lease.
func (d *Device) AttachLease(leaseID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.currentLeaseID != nil && !d.currentLeaseID.IsEqual(leaseID) {
		return errs.NewPreconditionFailedError(fmt.Sprintf("device %s is held by lease %s", d.id, d.currentLeaseID))
	}
	if !d.IsBookable() {
		return errs.NewPreconditionFailedError(fmt.Sprintf("device %s is %s", d.id, d.status))
	}
	d.currentLeaseID = kernel.UUIDPtr(leaseID)
	d.status = StatusLeased
	return nil
}

// DetachLease clears the current lease when it is leaseID.
func (d *Device) DetachLease(leaseID kernel.UUID) {
	if d.currentLeaseID == nil || !d.currentLeaseID.IsEqual(leaseID) {
		return
	}
	d.currentLeaseID = nil
	if d.status == StatusLeased {
		d.status = StatusAvailable
	}
}

// Publish makes the device visible to requesters. A device cannot go live
// without a standing price.
func (d *Device) Publish(hasDefaultRule bool, actorID kernel.UUID, at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !hasDefaultRule {
		return ErrNoDefaultPricingRule
	}
	if d.status == StatusRetired {
		return errs.NewPreconditionFailedError("device is retired")
	}
	if d.public {
		return nil
	}

	d.public = true
	d.Record(events.Event{
		Name:       events.DevicePublished,
		EntityType: EntityType,
		EntityID:   d.id,
		Action:     events.ActionUpdate,
		FromState:  "PRIVATE",
		ToState:    "PUBLIC",
		ActorID:    kernel.UUIDPtr(actorID),
		OccurredAt: at,
		Attributes: map[string]string{"location_code": d.location.String()},
	})
	return nil
}
