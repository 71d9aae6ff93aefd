// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"smapp/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB returns a private in-memory SQLite database with foreign keys
// enabled and the schema applied. It is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
