package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL flavour behind a DSN.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// ResolveDSN maps a user-facing DSN to a database/sql driver name and data
// source. "postgres://" and "postgresql://" URLs go to pgx; everything else
// is a SQLite location, optionally prefixed with "sqlite://" or "sqlite:".
// SQLite connections always get foreign keys enforced.
func ResolveDSN(dsn string) (driverName, dataSource string, dialect Dialect) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", dsn, DialectPostgres
	}

	path := dsn
	switch {
	case strings.HasPrefix(path, "sqlite://"):
		path = strings.TrimPrefix(path, "sqlite://")
	case strings.HasPrefix(path, "sqlite:"):
		path = strings.TrimPrefix(path, "sqlite:")
	}
	if path == ":memory:" {
		path = "file::memory:"
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "sqlite", path + sep + sqlitePragmas, DialectSQLite
}

// Open resolves dsn, opens the pool and checks connectivity.
//
// SQLite pools are limited to a single connection: writes are serialised by
// SQLite anyway, and an in-memory database only lives as long as its one
// connection.
func Open(ctx context.Context, dsn string) (*sql.DB, Dialect, error) {
	driverName, dataSource, dialect := ResolveDSN(dsn)

	db, err := sql.Open(driverName, dataSource)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}
	return db, dialect, nil
}
