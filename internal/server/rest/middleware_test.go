package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"BEARER abc", "abc", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"Bearer a b", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
		assert.Equal(t, tt.token, token, "header %q", tt.header)
	}
}

func TestAuthenticate_Gate(t *testing.T) {
	h := newTestServer(&fakeUsers{}, &fakeWatchlist{}).Handler()

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantMsg  string
	}{
		{"no header", "", http.StatusUnauthorized, msgTokenRequired},
		{"scheme only", "Bearer", http.StatusUnauthorized, msgTokenRequired},
		{"wrong scheme", "Token " + goodToken, http.StatusUnauthorized, msgTokenRequired},
		{"bad token", "Bearer forged", http.StatusForbidden, msgInvalidToken},
		{"good token", "Bearer " + goodToken, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, req := range []*http.Request{
				httptest.NewRequest(http.MethodGet, "/api/watchlist", nil),
				httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{"tmdb_id":1,"title":"x"}`)),
				httptest.NewRequest(http.MethodDelete, "/api/watchlist/1", nil),
			} {
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)

				if tt.wantMsg == "" {
					assert.Less(t, rec.Code, 300, "%s %s", req.Method, req.URL.Path)
					continue
				}
				assert.Equal(t, tt.wantCode, rec.Code, "%s %s", req.Method, req.URL.Path)
				assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
			}
		})
	}
}

func TestAuthenticate_PutsIdentityInContext(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeWatchlist{})

	var got Identity
	var found bool
	h := s.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = IdentityFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+goodToken)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, found)
	assert.Equal(t, Identity{UserID: 7, Username: "alice"}, got)
}

func TestRequestID(t *testing.T) {
	h := newTestServer(&fakeUsers{}, &fakeWatchlist{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", maxRequestIDLength+1))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
}

func TestCORS(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeWatchlist{})
	s.allowedOrigins = []string{"http://localhost:3000"}
	h := s.Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/watchlist", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
