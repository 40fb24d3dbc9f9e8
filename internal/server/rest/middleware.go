package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/watchlist/internal/common"
	"github.com/dmitrijs2005/watchlist/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// Identity is the verified caller of a watchlist route.
type Identity struct {
	UserID   int64
	Username string
}

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFromContext returns the identity stored by the authorization gate.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func withIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// requestID echoes a caller-supplied X-Request-ID or assigns a new one and
// puts a request-scoped logger in the context.
func (s *HTTPServer) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeaderName, id)

		l := s.logger.With("request_id", id)
		next.ServeHTTP(w, r.WithContext(logging.NewContext(r.Context(), l)))
	})
}

// observe writes the access log line and records request metrics.
func (s *HTTPServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		elapsed := time.Since(start)

		s.metrics.ObserveRequest(r.Method, route, status, elapsed)
		s.log(r.Context()).Info(r.Context(), "request served",
			"method", r.Method,
			"route", route,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"remote", r.RemoteAddr,
		)
	})
}

// authenticate is the authorization gate of the watchlist routes. A missing
// or malformed header is 401, a token that fails verification is 403.
func (s *HTTPServer) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if !ok {
			s.metrics.AuthFailure(authFailureMissing)
			writeError(w, http.StatusUnauthorized, msgTokenRequired)
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			s.metrics.AuthFailure(authFailureInvalid)
			s.log(r.Context()).Debug(r.Context(), "token rejected", "error", err.Error())
			writeError(w, http.StatusForbidden, msgInvalidToken)
			return
		}

		id := Identity{UserID: claims.UserID, Username: claims.Username}
		l := s.log(r.Context()).With("user_id", id.UserID)
		ctx := logging.NewContext(withIdentity(r.Context(), id), l)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerScheme) || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

func (s *HTTPServer) log(ctx context.Context) logging.Logger {
	return logging.FromContext(ctx, s.logger)
}
