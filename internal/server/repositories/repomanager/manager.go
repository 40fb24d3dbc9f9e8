// Package repomanager vends dialect-specific repositories and applies the
// matching schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/watchlist/internal/dbx"
	"github.com/dmitrijs2005/watchlist/internal/server/migrations"
	"github.com/dmitrijs2005/watchlist/internal/server/repositories/users"
	"github.com/dmitrijs2005/watchlist/internal/server/repositories/watchlist"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Watchlist(db dbx.DBTX) watchlist.Repository
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// NewRepositoryManager returns the manager for dialect.
func NewRepositoryManager(dialect dbx.Dialect) (RepositoryManager, error) {
	switch dialect {
	case dbx.DialectPostgres:
		return &PostgresRepositoryManager{}, nil
	case dbx.DialectSQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}
