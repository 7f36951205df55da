// Package optimistic implements compare-and-swap updates for versioned rows.
package optimistic

import (
	"context"
	"fmt"

	"agrirent/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Update writes every column of dto to the row `id` of table, but only while
// the stored version still equals expected. dto must already carry the next
// version.
//
// Errors:
//   - *errs.ObjectNotFoundError when no row has that id
//   - *errs.VersionIsInvalidError when the row moved past expected
func Update(ctx context.Context, db *gorm.DB, table string, dto any, id uuid.UUID, expected int64) error {
	result := db.WithContext(ctx).
		Table(table).
		Where("id = ? AND version = ?", id, expected).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var n int64
	if err := db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errs.NewObjectNotFoundError(table, id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause(table, fmt.Errorf("row %s is no longer at version %d", id, expected))
}
