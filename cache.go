package docsite

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	xlog "github.com/eringen/docsite/internal/log"
)

// Loader produces a fresh SiteConfig, typically by reading a file.
type Loader func() (*SiteConfig, error)

// FileLoader returns a Loader reading path with LoadFile.
func FileLoader(path string) Loader {
	return func() (*SiteConfig, error) { return LoadFile(path) }
}

// ConfigCache is an in-memory cache of the current SiteConfig with a TTL.
// A failed reload keeps serving the last good config.
type ConfigCache struct {
	mu      sync.RWMutex
	current *SiteConfig
	lastErr error
	fetched time.Time
	ttl     time.Duration
	load    Loader

	metrics  *Metrics
	logger   zerolog.Logger
	onChange []func(old, next *SiteConfig)
}

// NewConfigCache creates a ConfigCache backed by load. A zero ttl means
// entries never expire on their own and only Invalidate triggers a reload.
func NewConfigCache(load Loader, ttl time.Duration) *ConfigCache {
	return &ConfigCache{
		load:   load,
		ttl:    ttl,
		logger: xlog.WithComponent("cache"),
	}
}

// WithMetrics attaches load counters to the cache.
func (c *ConfigCache) WithMetrics(m *Metrics) *ConfigCache {
	c.metrics = m
	return c
}

// OnChange registers fn to run after a reload produced a config that differs
// from the previous one. Callbacks run synchronously under the write lock and
// must not call back into the cache.
func (c *ConfigCache) OnChange(fn func(old, next *SiteConfig)) {
	c.mu.Lock()
	c.onChange = append(c.onChange, fn)
	c.mu.Unlock()
}

func (c *ConfigCache) valid() bool {
	if c.current == nil || c.fetched.IsZero() {
		return false
	}
	return c.ttl <= 0 || time.Since(c.fetched) < c.ttl
}

// Invalidate marks the cache stale so the next read triggers a reload. The
// current value stays available as a fallback.
func (c *ConfigCache) Invalidate() {
	c.mu.Lock()
	c.fetched = time.Time{}
	c.mu.Unlock()
}

func (c *ConfigCache) reload() {
	next, err := c.load()
	c.metrics.observeLoad(err)
	c.fetched = time.Now()
	if err != nil {
		c.lastErr = err
		c.logger.Error().
			Err(err).
			Str(xlog.FieldEvent, "config.reload_failed").
			Bool("stale", c.current != nil).
			Msg("site config reload failed")
		return
	}
	c.lastErr = nil
	old := c.current
	c.current = next
	if old != nil && old.Equal(next) {
		return
	}
	c.logger.Info().
		Str(xlog.FieldEvent, "config.reload_success").
		Str("digest", next.Digest()).
		Int("changes", len(Diff(old, next))).
		Msg("site config loaded")
	for _, fn := range c.onChange {
		fn(old, next)
	}
}

// Get returns the current config, reloading it first when stale. It only
// fails when no config has ever loaded successfully.
func (c *ConfigCache) Get() (*SiteConfig, error) {
	c.mu.RLock()
	if c.valid() {
		cur := c.current
		c.mu.RUnlock()
		return cur, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		c.reload()
	}
	if c.current == nil {
		return nil, c.lastErr
	}
	return c.current, nil
}

// LastError returns the error of the most recent failed reload, or nil.
func (c *ConfigCache) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func loadResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid"
	default:
		return "error"
	}
}
