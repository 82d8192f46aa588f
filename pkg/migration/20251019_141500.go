// Package migration stores all database migrations
package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/model"
)

func init() {
	// Do Not Edit Migration ID!
	migrationID := "20251019_141500"

	database.RegisterMigration(&gormigrate.Migration{
		ID: migrationID,
		Migrate: func(tx *gorm.DB) error {
			logApplying(migrationID)

			return tx.AutoMigrate(&model.ExplanationRecord{})
		},
		Rollback: func(tx *gorm.DB) error {
			logRollingBack(migrationID)

			return tx.Migrator().DropTable(&model.ExplanationRecord{})
		},
	})
}
