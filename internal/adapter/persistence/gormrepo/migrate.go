package gormrepo

import (
	"fmt"

	"gorm.io/gorm"
)

// Models lists every table, parents before children.
func Models() []interface{} {
	return []interface{}{
		&LineItemModel{},
		&EstimationTemplateModel{}, &EstimationTemplateItemModel{},
		&ProjectModel{}, &TimelineEventModel{},
		&ProjectEstimationModel{}, &ProjectEstimationItemModel{}, &EstimationSequenceModel{},
		&AgreementModel{},
		&PaymentModel{},
	}
}

// singleActiveIndex lets the database itself reject a second active
// estimation for a project. PostgreSQL and SQLite both support partial indexes.
const singleActiveIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_project_estimations_single_active
ON project_estimations (project_id) WHERE is_active`

func Migrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	if err := db.Exec(singleActiveIndex).Error; err != nil {
		return fmt.Errorf("create single active index: %w", err)
	}
	return nil
}
