package db

import (
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/pkg/logger"
	"gorm.io/gorm"
)

// Models lists every table, parents before children
func Models() []interface{} {
	return []interface{}{
		&model.Category{},
		&model.Studio{},
		&model.Game{},
	}
}

// Migrate runs database migrations on the global connection
func Migrate() error {
	return MigrateDB(DB)
}

func MigrateDB(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := Models()
	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
