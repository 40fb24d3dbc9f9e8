package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/watchlist/internal/common"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
	"github.com/dmitrijs2005/watchlist/internal/server/repositories/repomanager"
)

const (
	MaxTitleLength  = 512
	MaxYearLength   = 16
	MaxPosterLength = 2048
)

// WatchlistService manages the movies saved by each user. All operations are
// scoped to the owner id taken from the verified session.
type WatchlistService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWatchlistService(db *sql.DB, m repomanager.RepositoryManager) *WatchlistService {
	return &WatchlistService{db: db, repomanager: m}
}

// List returns the owner's entries, never nil.
func (s *WatchlistService) List(ctx context.Context, ownerID int64) ([]*models.WatchlistEntry, error) {
	items, err := s.repomanager.Watchlist(s.db).ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing watchlist: %w", err)
	}
	if items == nil {
		items = []*models.WatchlistEntry{}
	}
	return items, nil
}

// Add validates the movie and stores it for the owner. Duplicates are
// allowed.
func (s *WatchlistService) Add(ctx context.Context, ownerID int64, in models.NewWatchlistEntry) (*models.WatchlistEntry, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateEntry(in); err != nil {
		return nil, err
	}

	entry, err := s.repomanager.Watchlist(s.db).Create(ctx, ownerID, &in)
	if err != nil {
		if errors.Is(err, common.ErrUnknownOwner) {
			return nil, err
		}
		return nil, fmt.Errorf("error saving movie: %w", err)
	}
	return entry, nil
}

// Remove deletes the entry if the owner has it; a missing entry and someone
// else's entry both give common.ErrorNotFound.
func (s *WatchlistService) Remove(ctx context.Context, ownerID, entryID int64) error {
	err := s.repomanager.Watchlist(s.db).DeleteByUser(ctx, ownerID, entryID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting movie: %w", err)
	}
	return nil
}

func validateEntry(in models.NewWatchlistEntry) error {
	switch {
	case in.TmdbID <= 0:
		return common.ErrInvalidInput
	case in.Title == "", utf8.RuneCountInString(in.Title) > MaxTitleLength:
		return common.ErrInvalidInput
	case utf8.RuneCountInString(in.Year) > MaxYearLength:
		return common.ErrInvalidInput
	case utf8.RuneCountInString(in.Poster) > MaxPosterLength:
		return common.ErrInvalidInput
	}
	return nil
}
