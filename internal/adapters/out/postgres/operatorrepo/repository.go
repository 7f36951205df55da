// Package operatorrepo stores the operator reference data.
package operatorrepo

import (
	"context"
	"errors"

	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/operator"
	"agrirent/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OperatorDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"not null"`
	Phone string
}

func (OperatorDTO) TableName() string {
	return "operators"
}

// GormOperatorRepository implements ports.OperatorRepository using GORM.
// Operators raise no events, so nothing is tracked.
type GormOperatorRepository struct {
	db *gorm.DB
}

func NewGormOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

func (r *GormOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := OperatorDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OperatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operator", id.String())
		}
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return operator.NewOperator(operatorID, dto.Name, dto.Phone)
}
