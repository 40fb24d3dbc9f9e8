package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/watchlist/internal/common"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
	"github.com/go-chi/chi/v5"
)

func (s *HTTPServer) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	id, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, msgCredentialsNeeded)
		case errors.Is(err, common.ErrDuplicateUsername):
			writeError(w, http.StatusBadRequest, msgUsernameTaken)
		default:
			s.log(r.Context()).Error(r.Context(), "register failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, msgDatabaseError)
		}
		return
	}

	s.log(r.Context()).Info(r.Context(), "Registered", "user_id", id)
	writeJSON(w, http.StatusCreated, messageResponse{Message: msgRegistered})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.metrics.AuthFailure(authFailureCredentials)
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.log(r.Context()).Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *HTTPServer) handleListWatchlist(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	items, err := s.watchlist.List(r.Context(), id.UserID)
	if err != nil {
		s.log(r.Context()).Error(r.Context(), "list failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	out := make([]movieResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toMovieResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleAddToWatchlist(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	var req addMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	entry, err := s.watchlist.Add(r.Context(), id.UserID, models.NewWatchlistEntry{
		TmdbID: req.TmdbID,
		Title:  req.Title,
		Year:   string(req.Year),
		Poster: string(req.Poster),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, msgMovieRequired)
		case errors.Is(err, common.ErrUnknownOwner):
			writeError(w, http.StatusForbidden, msgInvalidToken)
		default:
			s.log(r.Context()).Error(r.Context(), "add failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	writeJSON(w, http.StatusCreated, addedMovieResponse{
		ID:     entry.ID,
		TmdbID: entry.TmdbID,
		Title:  entry.Title,
		Year:   entry.Year,
		Poster: entry.Poster,
	})
}

func (s *HTTPServer) handleRemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	// a non-numeric id cannot name an entry
	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, msgMovieNotFound)
		return
	}

	if err := s.watchlist.Remove(r.Context(), id.UserID, entryID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, msgMovieNotFound)
			return
		}
		s.log(r.Context()).Error(r.Context(), "remove failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgMovieDeleted})
}
