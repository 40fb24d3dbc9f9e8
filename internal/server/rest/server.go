// Package rest exposes the watchlist API over JSON/HTTP.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/watchlist/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	maxBodyBytes           = 1 << 20
)

// Options holds the optional settings of HTTPServer.
type Options struct {
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	// Registry receives the HTTP metrics and is served on /metrics. A private
	// registry is created when nil.
	Registry *prometheus.Registry
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           UserService
	watchlist       WatchlistService
	tokens          TokenVerifier
	metrics         *Metrics
	registry        *prometheus.Registry
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us UserService, ws WatchlistService, tv TokenVerifier, opts Options) *HTTPServer {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		watchlist:       ws,
		tokens:          tv,
		metrics:         NewMetrics(reg),
		registry:        reg,
		allowedOrigins:  opts.AllowedOrigins,
		shutdownTimeout: timeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
