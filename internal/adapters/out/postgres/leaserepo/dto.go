// Package leaserepo maps lease aggregates to the leases table.
package leaserepo

import (
	"time"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LeaseDTO is one row of the leases table. Operator assignments and
// attachments are append-only lists kept as JSON columns.
type LeaseDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	DeviceID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	IntermediaryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          int             `gorm:"not null;index:idx_leases_status_start"`
	CommitmentKind  string          `gorm:"type:varchar(8);not null"`
	CommitmentValue float64         `gorm:"not null"`
	EstimatedPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Deposit         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	StartDate       time.Time       `gorm:"type:date;not null;index:idx_leases_status_start"`
	EndDate         *time.Time      `gorm:"type:date"`
	Operators       datatypes.JSONSlice[OperatorAssignmentDTO]
	SignedBy        uuid.UUID `gorm:"type:uuid;not null"`
	Attachments     datatypes.JSONSlice[AttachmentDTO]
	Notes           string
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
	Version         int64     `gorm:"not null"`
}

func (LeaseDTO) TableName() string {
	return "leases"
}

type OperatorAssignmentDTO struct {
	OperatorID uuid.UUID `json:"operator_id"`
	Role       string    `json:"role"`
	AssignedAt time.Time `json:"assigned_at"`
}

type AttachmentDTO struct {
	DocumentType string    `json:"document_type"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

func fromDomain(l *lease.Lease) LeaseDTO {
	operators := make(datatypes.JSONSlice[OperatorAssignmentDTO], 0, len(l.Operators()))
	for _, op := range l.Operators() {
		operators = append(operators, OperatorAssignmentDTO{
			OperatorID: op.OperatorID().Bytes(),
			Role:       string(op.Role()),
			AssignedAt: op.AssignedAt(),
		})
	}
	attachments := make(datatypes.JSONSlice[AttachmentDTO], 0, len(l.Attachments()))
	for _, a := range l.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			DocumentType: a.DocumentType(),
			URL:          a.URL(),
			UploadedAt:   a.UploadedAt(),
		})
	}

	var endDate *time.Time
	if d := l.EndDate(); d != nil {
		t := d.Time()
		endDate = &t
	}

	return LeaseDTO{
		ID:              l.ID().Bytes(),
		OrderID:         l.OrderID().Bytes(),
		DeviceID:        l.DeviceID().Bytes(),
		IntermediaryID:  l.IntermediaryID().Bytes(),
		Status:          int(l.Status()),
		CommitmentKind:  string(l.Commitment().Kind()),
		CommitmentValue: l.Commitment().Value(),
		EstimatedPrice:  l.EstimatedPrice(),
		Deposit:         l.Deposit(),
		StartDate:       l.StartDate().Time(),
		EndDate:         endDate,
		Operators:       operators,
		SignedBy:        l.SignedBy().Bytes(),
		Attachments:     attachments,
		Notes:           l.Notes(),
		CreatedAt:       l.CreatedAt(),
		UpdatedAt:       l.UpdatedAt(),
		Version:         l.Version(),
	}
}

func toDomain(dto LeaseDTO) (*lease.Lease, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.DeviceID, dto.IntermediaryID, dto.SignedBy} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	commitment, err := lease.NewCommitment(lease.CommitmentKind(dto.CommitmentKind), dto.CommitmentValue)
	if err != nil {
		return nil, err
	}

	operators := make([]lease.OperatorAssignment, 0, len(dto.Operators))
	for _, op := range dto.Operators {
		operatorID, opErr := kernel.UUIDFromBytes(op.OperatorID[:])
		if opErr != nil {
			return nil, opErr
		}
		assignment, opErr := lease.NewOperatorAssignment(operatorID, lease.OperatorRole(op.Role), op.AssignedAt.UTC())
		if opErr != nil {
			return nil, opErr
		}
		operators = append(operators, assignment)
	}

	attachments := make([]lease.Attachment, 0, len(dto.Attachments))
	for _, a := range dto.Attachments {
		attachment, aErr := lease.NewAttachment(a.DocumentType, a.URL, a.UploadedAt.UTC())
		if aErr != nil {
			return nil, aErr
		}
		attachments = append(attachments, attachment)
	}

	return lease.RestoreLease(lease.Snapshot{
		ID:             ids[0],
		OrderID:        ids[1],
		DeviceID:       ids[2],
		IntermediaryID: ids[3],
		Status:         lease.Status(dto.Status),
		Commitment:     commitment,
		EstimatedPrice: dto.EstimatedPrice,
		Deposit:        dto.Deposit,
		StartDate:      kernel.DateOf(dto.StartDate),
		EndDate:        kernel.DatePtr(dto.EndDate),
		Operators:      operators,
		SignedBy:       ids[4],
		Attachments:    attachments,
		Notes:          dto.Notes,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
		Version:        dto.Version,
	})
}
