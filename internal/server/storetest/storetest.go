// Package storetest opens migrated in-memory SQLite databases for tests of
// the repositories, services and HTTP API.
package storetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/watchlist/internal/dbx"
	"github.com/dmitrijs2005/watchlist/internal/server/migrations"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a private in-memory database with the full schema
// applied. It is closed when the test ends.
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, dialect, err := dbx.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(ctx, db, dialect))
	return db
}
