package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate applies schema changes for the given models.
// Safe to run on every start; GORM only alters what drifted.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
