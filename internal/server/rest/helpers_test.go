package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/watchlist/internal/common"
	"github.com/dmitrijs2005/watchlist/internal/logging"
	"github.com/dmitrijs2005/watchlist/internal/server/auth"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	registerID  int64
	registerErr error
	token       string
	loginErr    error

	gotUsername string
	gotPassword string
}

func (f *fakeUsers) Register(ctx context.Context, username, password string) (int64, error) {
	f.gotUsername, f.gotPassword = username, password
	return f.registerID, f.registerErr
}

func (f *fakeUsers) Login(ctx context.Context, username, password string) (string, error) {
	f.gotUsername, f.gotPassword = username, password
	return f.token, f.loginErr
}

type fakeWatchlist struct {
	listOut   []*models.WatchlistEntry
	listErr   error
	addErr    error
	removeErr error

	gotOwner int64
	gotEntry models.NewWatchlistEntry
	gotID    int64
}

func (f *fakeWatchlist) List(ctx context.Context, ownerID int64) ([]*models.WatchlistEntry, error) {
	f.gotOwner = ownerID
	return f.listOut, f.listErr
}

func (f *fakeWatchlist) Add(ctx context.Context, ownerID int64, in models.NewWatchlistEntry) (*models.WatchlistEntry, error) {
	f.gotOwner, f.gotEntry = ownerID, in
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &models.WatchlistEntry{ID: 9, UserID: ownerID, TmdbID: in.TmdbID, Title: in.Title, Year: in.Year, Poster: in.Poster}, nil
}

func (f *fakeWatchlist) Remove(ctx context.Context, ownerID, entryID int64) error {
	f.gotOwner, f.gotID = ownerID, entryID
	return f.removeErr
}

// fakeTokens accepts exactly one token.
type fakeTokens struct {
	valid  string
	claims *auth.Claims
}

func (f *fakeTokens) Verify(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, common.ErrMissingToken
	}
	if token != f.valid {
		return nil, common.ErrInvalidToken
	}
	return f.claims, nil
}

const goodToken = "good-token"

func newTestServer(us UserService, ws WatchlistService) *HTTPServer {
	tv := &fakeTokens{valid: goodToken, claims: &auth.Claims{UserID: 7, Username: "alice"}}
	return NewHTTPServer(":0", logging.Nop{}, us, ws, tv, Options{})
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorResponse](t, rec).Error
}
