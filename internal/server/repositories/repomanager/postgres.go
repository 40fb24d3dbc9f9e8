package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/watchlist/internal/dbx"
	"github.com/dmitrijs2005/watchlist/internal/server/repositories/users"
	"github.com/dmitrijs2005/watchlist/internal/server/repositories/watchlist"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Watchlist returns a watchlist.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Watchlist(db dbx.DBTX) watchlist.Repository {
	return watchlist.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, dbx.DialectPostgres)
}
