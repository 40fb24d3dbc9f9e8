package models

// WatchlistEntry is one movie reference saved by a user. TmdbID, Title, Year
// and Poster are caller-supplied catalog data stored verbatim.
type WatchlistEntry struct {
	ID     int64
	UserID int64
	TmdbID int64
	Title  string
	Year   string
	Poster string
}

// NewWatchlistEntry is the caller input for adding a movie.
type NewWatchlistEntry struct {
	TmdbID int64
	Title  string
	Year   string
	Poster string
}
