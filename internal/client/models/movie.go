// Package models holds the CLI-side representation of watchlist data as it
// travels over the API.
package models

// Movie is one saved watchlist entry.
type Movie struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id,omitempty"`
	TmdbID int64  `json:"tmdb_id"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"`
}

// NewMovie is the payload for adding a movie. Empty Year and Poster are
// omitted and stored as "" by the server.
type NewMovie struct {
	TmdbID int64  `json:"tmdb_id"`
	Title  string `json:"title"`
	Year   string `json:"year,omitempty"`
	Poster string `json:"poster,omitempty"`
}
