// Package repository implements the persistence gateway: a unit of work
// over a database transaction and the repositories bound to it.
package repository

import (
	"context"

	"smapp/internal/database"
	"smapp/internal/models"

	"gorm.io/gorm"
)

// dbError maps err onto the application taxonomy. Errors the taxonomy does
// not know become internal errors.
func dbError(err error) error {
	translated := database.TranslateError(err)
	if models.CodeOf(translated) != "" {
		return translated
	}
	return models.NewInternalError(err)
}

// rowExists reports whether a row of model's table has the given primary key.
func rowExists(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, dbError(err)
	}
	return n > 0, nil
}
