// Package docsite models the configuration of a documentation site: its
// identity, top navigation, sidebars keyed by route prefix, social links and
// footer. A definition is validated once by Build into an immutable
// SiteConfig, which is then handed to the static-site generator.
//
// Around that core the package provides file loading, export in the
// generator's own format, link and logo checks, snapshot history in SQLite,
// and an inspector HTTP server that serves the current config and resolves
// sidebars for arbitrary routes.
package docsite

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	xlog "github.com/eringen/docsite/internal/log"
)

// ServerConfig holds the settings of the inspector server.
type ServerConfig struct {
	Addr       string        // listen address (default ":4173")
	SiteURL    string        // canonical site URL; enables /sitemap.xml when set
	Source     string        // label recorded with snapshots, usually the config path
	RateLimit  int           // requests per window and client IP (default 120)
	RateWindow time.Duration // rate limit window (default 1m)
}

func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":4173"
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 120
	}
	if c.RateWindow <= 0 {
		c.RateWindow = time.Minute
	}
}

// Option configures additional Server behavior.
type Option func(*Server)

// WithStore records every newly loaded config in store and exposes the
// history under /api/snapshots.
func WithStore(store *Store) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithDocs enables link and logo checks against the generator's source tree.
func WithDocs(docs fs.FS) Option {
	return func(s *Server) {
		s.docs = docs
	}
}

// WithRegistry uses reg instead of a fresh registry for server metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// Server is the inspector: it serves the current site config, resolves
// sidebars and reports problems while the config file is being edited.
type Server struct {
	Config  ServerConfig
	Echo    *echo.Echo
	Cache   *ConfigCache
	Store   *Store
	Metrics *Metrics

	registry *prometheus.Registry
	limiter  *RequestLimiter
	docs     fs.FS
	logger   zerolog.Logger
}

// NewServer wires middleware and routes around cache. The returned server is
// ready for Start, or for ServeHTTP in tests.
func NewServer(cfg ServerConfig, cache *ConfigCache, opts ...Option) *Server {
	cfg.setDefaults()

	s := &Server{
		Config: cfg,
		Echo:   echo.New(),
		Cache:  cache,
		logger: xlog.WithComponent("server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(collectors.NewGoCollector())
	}
	s.Metrics = NewMetrics(s.registry)
	cache.WithMetrics(s.Metrics)
	s.limiter = NewRequestLimiter(cfg.RateLimit, cfg.RateWindow)

	if s.Store != nil {
		cache.OnChange(s.recordSnapshot)
	}

	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) recordSnapshot(_, next *SiteConfig) {
	snap, created, err := s.Store.Save(next, s.Config.Source)
	if err != nil {
		s.logger.Error().Err(err).Str(xlog.FieldEvent, "snapshot.save_failed").Msg("could not record snapshot")
		return
	}
	if created {
		s.Metrics.observeSnapshot()
		s.logger.Info().
			Str(xlog.FieldEvent, "snapshot.recorded").
			Str("id", snap.ID).
			Str("digest", snap.Digest).
			Msg("recorded config snapshot")
	}
}

func (s *Server) setupRoutes() {
	e := s.Echo

	e.GET("/", s.handleOutline)
	e.GET("/healthz", s.handleHealth)
	e.GET("/sitemap.xml", s.handleSitemap)
	e.GET("/metrics", s.metricsHandler())

	api := e.Group("/api")
	api.GET("/site", s.handleSite)
	api.GET("/sidebar", s.handleSidebar)
	api.GET("/links", s.handleLinks)
	api.GET("/logo", s.handleLogo)
	api.GET("/snapshots", s.handleSnapshots)
	api.GET("/snapshots/:id", s.handleSnapshot)
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str(xlog.FieldEvent, "server.started").
			Str("addr", s.Config.Addr).
			Msg("inspector listening")
		errc <- s.Echo.Start(s.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases background resources. It does not close the Store, which
// the caller owns.
func (s *Server) Close() error {
	s.limiter.Stop()
	return nil
}
