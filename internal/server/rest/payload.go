package rest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/watchlist/internal/server/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type addMovieRequest struct {
	TmdbID int64       `json:"tmdb_id"`
	Title  string      `json:"title"`
	Year   looseString `json:"year"`
	Poster looseString `json:"poster"`
}

// addedMovieResponse is the body of a successful add. It omits user_id.
type addedMovieResponse struct {
	ID     int64  `json:"id"`
	TmdbID int64  `json:"tmdb_id"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"`
}

type movieResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	TmdbID int64  `json:"tmdb_id"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"`
}

func toMovieResponse(e *models.WatchlistEntry) movieResponse {
	return movieResponse{
		ID:     e.ID,
		UserID: e.UserID,
		TmdbID: e.TmdbID,
		Title:  e.Title,
		Year:   e.Year,
		Poster: e.Poster,
	}
}

// looseString accepts a JSON string, number or null. Catalog clients send
// the release year either way.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("want string or number, got %s", b)
		}
		*s = looseString(n.String())
		return nil
	}
}
