package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/watchlist/internal/common"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, f *fixture, name string) int64 {
	t.Helper()
	id, err := f.users.Register(context.Background(), name, "pw")
	require.NoError(t, err)
	return id
}

func TestAddList_RoundTripWithDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")

	got, err := f.watchlist.Add(ctx, alice, models.NewWatchlistEntry{TmdbID: 603, Title: "The Matrix"})
	require.NoError(t, err)
	assert.Equal(t, "", got.Year)
	assert.Equal(t, "", got.Poster)

	list, err := f.watchlist.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, &models.WatchlistEntry{
		ID: got.ID, UserID: alice, TmdbID: 603, Title: "The Matrix",
	}, list[0])
}

func TestList_EmptyIsNotNil(t *testing.T) {
	f := newFixture(t)
	alice := registerUser(t, f, "alice")

	list, err := f.watchlist.List(context.Background(), alice)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestList_CrossUserIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")
	bob := registerUser(t, f, "bob")

	_, err := f.watchlist.Add(ctx, alice, models.NewWatchlistEntry{TmdbID: 1, Title: "Alien"})
	require.NoError(t, err)

	list, err := f.watchlist.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemove_CrossUserLeavesRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")
	bob := registerUser(t, f, "bob")

	m, err := f.watchlist.Add(ctx, alice, models.NewWatchlistEntry{TmdbID: 1, Title: "Alien"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.watchlist.Remove(ctx, bob, m.ID), common.ErrorNotFound)

	list, err := f.watchlist.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRemove_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")

	m, err := f.watchlist.Add(ctx, alice, models.NewWatchlistEntry{TmdbID: 1, Title: "Alien"})
	require.NoError(t, err)

	require.NoError(t, f.watchlist.Remove(ctx, alice, m.ID))
	assert.ErrorIs(t, f.watchlist.Remove(ctx, alice, m.ID), common.ErrorNotFound)
	assert.ErrorIs(t, f.watchlist.Remove(ctx, alice, m.ID), common.ErrorNotFound)
}

func TestAdd_Validation(t *testing.T) {
	f := newFixture(t)
	alice := registerUser(t, f, "alice")

	cases := map[string]models.NewWatchlistEntry{
		"zero tmdb id":     {Title: "x"},
		"negative tmdb id": {TmdbID: -1, Title: "x"},
		"empty title":      {TmdbID: 1},
		"blank title":      {TmdbID: 1, Title: "  "},
		"long title":       {TmdbID: 1, Title: strings.Repeat("t", MaxTitleLength+1)},
		"long year":        {TmdbID: 1, Title: "x", Year: strings.Repeat("1", MaxYearLength+1)},
		"long poster":      {TmdbID: 1, Title: "x", Poster: strings.Repeat("p", MaxPosterLength+1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.watchlist.Add(context.Background(), alice, in)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestAdd_UnknownOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.watchlist.Add(context.Background(), 999, models.NewWatchlistEntry{TmdbID: 1, Title: "x"})
	assert.ErrorIs(t, err, common.ErrUnknownOwner)
}

func TestWatchlist_StoreErrors(t *testing.T) {
	boom := errors.New("db error: boom")
	rm := &fakeRepoManager{w: &fakeWatchlistRepo{createErr: boom, listErr: boom, deleteErr: boom}}
	s := NewWatchlistService(nil, rm)
	ctx := context.Background()

	_, err := s.List(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = s.Add(ctx, 1, models.NewWatchlistEntry{TmdbID: 1, Title: "x"})
	assert.ErrorIs(t, err, boom)

	err = s.Remove(ctx, 1, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestList_NilFromRepoBecomesEmpty(t *testing.T) {
	s := NewWatchlistService(nil, &fakeRepoManager{w: &fakeWatchlistRepo{}})

	list, err := s.List(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, list)
}
