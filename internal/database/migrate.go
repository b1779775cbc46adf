package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/pkg/logger"
)

// RunMigrations creates the recipes table if it does not exist yet
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	logger.L().Debug("schema ready", zap.String("dialect", db.Dialector.Name()))
	return nil
}
