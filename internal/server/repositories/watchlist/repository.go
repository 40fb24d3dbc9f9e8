// Package watchlist persists the movies each user has saved.
package watchlist

import (
	"context"

	"github.com/dmitrijs2005/watchlist/internal/server/models"
)

// Repository stores watchlist entries. Every read and delete is scoped to
// the owning user id.
type Repository interface {
	// Create inserts a new entry for userID. It returns
	// common.ErrUnknownOwner when userID does not exist.
	Create(ctx context.Context, userID int64, entry *models.NewWatchlistEntry) (*models.WatchlistEntry, error)
	// ListByUser returns userID's entries ordered by id. The slice is
	// never nil.
	ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistEntry, error)
	// DeleteByUser removes entry id if userID owns it, otherwise it
	// returns common.ErrorNotFound.
	DeleteByUser(ctx context.Context, userID, id int64) error
}
