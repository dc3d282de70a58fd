// Package databasetest provides migrated in-memory SQLite databases for tests.
package databasetest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/underwaterhousings/catalog_api/internal/database"
)

// New returns an isolated, fully migrated in-memory database that is closed
// when the test finishes.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	name := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.OpenSQLite(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
