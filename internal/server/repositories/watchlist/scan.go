package watchlist

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/watchlist/internal/common"
	"github.com/dmitrijs2005/watchlist/internal/dbx"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
)

func scanEntries(rows *sql.Rows) ([]*models.WatchlistEntry, error) {
	defer rows.Close()

	result := make([]*models.WatchlistEntry, 0)
	for rows.Next() {
		e := &models.WatchlistEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.TmdbID, &e.Title, &e.Year, &e.Poster); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func insertError(err error) error {
	if dbx.IsForeignKeyViolation(err) {
		return common.ErrUnknownOwner
	}
	return fmt.Errorf("db error: %w", err)
}

func deleteResult(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func newEntry(id, userID int64, in *models.NewWatchlistEntry) *models.WatchlistEntry {
	return &models.WatchlistEntry{
		ID:     id,
		UserID: userID,
		TmdbID: in.TmdbID,
		Title:  in.Title,
		Year:   in.Year,
		Poster: in.Poster,
	}
}
