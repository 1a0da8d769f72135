package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/motionforge/svg2lottie/internal/anim"
	"github.com/motionforge/svg2lottie/internal/cliconfig"
	"github.com/motionforge/svg2lottie/internal/convert"
)

const (
	serviceName    = "SVG to Animated Lottie Converter API"
	serviceVersion = "1.0.0"
)

// Server serves the conversion API.
type Server struct {
	cfg      atomic.Pointer[cliconfig.Config]
	conv     *convert.Converter
	registry *anim.Registry
	log      zerolog.Logger
}

// New creates a Server using the default animation registry.
func New(cfg cliconfig.Config, log zerolog.Logger) *Server {
	registry := anim.DefaultRegistry()
	s := &Server{
		conv:     convert.New(registry, log),
		registry: registry,
		log:      log,
	}
	s.cfg.Store(&cfg)
	return s
}

// Config returns the active configuration snapshot.
func (s *Server) Config() cliconfig.Config {
	return *s.cfg.Load()
}

// UpdateConfig swaps the active configuration. In-flight requests keep the
// snapshot they started with; new requests see the updated defaults.
func (s *Server) UpdateConfig(cfg cliconfig.Config) {
	s.cfg.Store(&cfg)
	s.log.Info().
		Str("default_type", cfg.DefaultType).
		Int("default_fps", cfg.DefaultFPS).
		Int("default_duration", cfg.DefaultDuration).
		Msg("Conversion defaults updated")
}

// Handler builds the HTTP handler with logging, recovery and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.method(http.MethodGet, s.handleHealth))
	mux.HandleFunc("/convert", s.method(http.MethodPost, s.handleConvert))
	mux.HandleFunc("/animation-types", s.method(http.MethodGet, s.handleAnimationTypes))
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = s.corsMiddleware(h)
	h = s.recoverMiddleware(h)
	h = s.logMiddleware(h)
	return h
}

// Run starts the HTTP listener and blocks until ctx is cancelled or the
// listener fails. Shutdown is graceful, bounded by the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	cfg := s.Config()

	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info().Msg("Shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-errCh:
		return err
	}
}
