package watchlist

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/watchlist/internal/dbx"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID int64, entry *models.NewWatchlistEntry) (*models.WatchlistEntry, error) {

	query :=
		`INSERT INTO watchlist (user_id, tmdb_id, title, year, poster)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, userID, entry.TmdbID, entry.Title, entry.Year, entry.Poster).Scan(&id)
	if err != nil {
		return nil, insertError(err)
	}

	return newEntry(id, userID, entry), nil
}

// ListByUser returns all entries of userID in insertion order.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistEntry, error) {
	query :=
		`SELECT id, user_id, tmdb_id, title, year, poster FROM watchlist
		 WHERE user_id = $1
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanEntries(rows)
}

// DeleteByUser removes id only when it belongs to userID.
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM watchlist WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return deleteResult(res)
}
