package database

import (
	"context"
	"fmt"
	"log/slog"

	"smapp/internal/models"
	"smapp/internal/observability"

	"gorm.io/gorm"
)

// PersistentModels returns the schema-managed models in dependency order.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	}
}

// ApplySchema creates missing tables, columns, indexes and constraints.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	observability.Logger.InfoContext(ctx, "Running GORM AutoMigrate", slog.String("dialect", db.Dialector.Name()))
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// ResetSchema drops every managed table and recreates the schema empty.
func ResetSchema(ctx context.Context, db *gorm.DB) error {
	tables := PersistentModels()
	migrator := db.WithContext(ctx).Migrator()

	for i := len(tables) - 1; i >= 0; i-- {
		if err := migrator.DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop %T: %w", tables[i], err)
		}
	}
	observability.Logger.WarnContext(ctx, "Dropped all tables", slog.Int("tables", len(tables)))

	return ApplySchema(ctx, db)
}
