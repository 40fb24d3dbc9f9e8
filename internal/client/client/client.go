package client

import (
	"context"

	"github.com/dmitrijs2005/watchlist/internal/client/models"
)

type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout()
	LoggedIn() bool
	List(ctx context.Context) ([]models.Movie, error)
	Add(ctx context.Context, movie models.NewMovie) (*models.Movie, error)
	Remove(ctx context.Context, id int64) error
}
