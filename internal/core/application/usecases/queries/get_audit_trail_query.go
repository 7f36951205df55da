package queries

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/core/domain/model/threshold"
	"agrirent/internal/pkg/errs"
	"agrirent/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// AuditedEntityTypes are the entity types that leave an audit trail.
var AuditedEntityTypes = []string{
	order.EntityType,
	lease.EntityType,
	pricing.EntityType,
	threshold.EntityType,
	device.EntityType,
}

// GetAuditTrailQuery lists what happened to one entity, oldest first.
type GetAuditTrailQuery struct { //nolint:recvcheck //using for validation
	entityType string
	entityID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAuditTrailQuery(entityType string, entityID kernel.UUID) (GetAuditTrailQuery, error) {
	var typeErr error
	if !slices.Contains(AuditedEntityTypes, entityType) {
		typeErr = errs.NewValueIsInvalidErrorWithCause("entity type",
			fmt.Errorf("%q is not one of %v", entityType, AuditedEntityTypes))
	}
	if err := errors.Join(typeErr, entityID.Validate()); err != nil {
		return GetAuditTrailQuery{}, err
	}

	return GetAuditTrailQuery{
		entityType: entityType,
		entityID:   entityID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

func (q GetAuditTrailQuery) EntityType() string { return q.entityType }

func (q GetAuditTrailQuery) EntityID() kernel.UUID { return q.entityID }

type GetAuditTrailQueryResponse struct {
	ID         kernel.UUID
	Action     string
	FromState  string
	ToState    string
	ActorID    *kernel.UUID
	Note       string
	OccurredAt time.Time
}
