package postgres

import (
	"agrirent/internal/adapters/out/postgres/auditrepo"
	"agrirent/internal/adapters/out/postgres/devicerepo"
	"agrirent/internal/adapters/out/postgres/leaserepo"
	"agrirent/internal/adapters/out/postgres/operatorrepo"
	"agrirent/internal/adapters/out/postgres/orderrepo"
	"agrirent/internal/adapters/out/postgres/pricingrepo"
	"agrirent/internal/adapters/out/postgres/thresholdrepo"

	"gorm.io/gorm"
)

// Models lists the row types of every lifecycle table.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&leaserepo.LeaseDTO{},
		&devicerepo.DeviceDTO{},
		&operatorrepo.OperatorDTO{},
		&pricingrepo.PricingRuleDTO{},
		&thresholdrepo.ThresholdConfigDTO{},
		&auditrepo.AuditLogDTO{},
	}
}

// Migrate creates or extends the lifecycle tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
