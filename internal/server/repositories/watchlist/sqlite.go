package watchlist

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/watchlist/internal/dbx"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
)

// SQLiteRepository implements Repository on SQLite.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, userID int64, entry *models.NewWatchlistEntry) (*models.WatchlistEntry, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO watchlist (user_id, tmdb_id, title, year, poster) VALUES (?, ?, ?, ?, ?)`,
		userID, entry.TmdbID, entry.Title, entry.Year, entry.Poster)
	if err != nil {
		return nil, insertError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return newEntry(id, userID, entry), nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, tmdb_id, title, year, poster FROM watchlist WHERE user_id = ? ORDER BY id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanEntries(rows)
}

func (r *SQLiteRepository) DeleteByUser(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM watchlist WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return deleteResult(res)
}
