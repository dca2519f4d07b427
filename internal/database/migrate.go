package database

import (
	"fmt"
	"log"

	"github.com/pageza/promptchef/backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations brings the evaluation history schema up to date.
// PostgreSQL deployments may instead apply migrations/*.sql with cmd/migrate;
// AutoMigrate is a no-op against a schema created that way.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running GORM auto-migration for %s", db.Dialector.Name())
	if err := db.AutoMigrate(
		&models.EvaluationRun{},
		&models.EvaluationResult{},
	); err != nil {
		return fmt.Errorf("failed to migrate evaluation tables: %w", err)
	}
	return nil
}
