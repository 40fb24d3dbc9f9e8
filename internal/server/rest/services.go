package rest

import (
	"context"

	"github.com/dmitrijs2005/watchlist/internal/server/auth"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
)

// UserService is implemented by services.UserService.
type UserService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// WatchlistService is implemented by services.WatchlistService.
type WatchlistService interface {
	List(ctx context.Context, ownerID int64) ([]*models.WatchlistEntry, error)
	Add(ctx context.Context, ownerID int64, in models.NewWatchlistEntry) (*models.WatchlistEntry, error)
	Remove(ctx context.Context, ownerID, entryID int64) error
}

// TokenVerifier is implemented by auth.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}
