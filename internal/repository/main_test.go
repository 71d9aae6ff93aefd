package repository

import (
	"context"
	"testing"

	"smapp/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB returns a postgres-dialect gorm.DB backed by sqlmock.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return gormDB, mock
}

// setupSQLite returns a gateway over a fresh in-memory database.
func setupSQLite(t *testing.T) (Gateway, *gorm.DB) {
	db := testutil.NewTestDB(t)
	return NewGateway(db), db
}

// session runs fn in a unit of work and fails the test on error.
func session(t *testing.T, gw Gateway, fn SessionFunc) {
	t.Helper()
	require.NoError(t, gw.WithSession(context.Background(), t.Name(), fn))
}
