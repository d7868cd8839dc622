package migration

import (
	"warden/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model for gorm AutoMigrate.
// Used by development bootstrap and the test suites; production deployments
// run the SQL scripts instead.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.SessionLogModel{},
	}
}
