package docsite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: one\ndescription: d\n"), 0o644))

	cache := NewConfigCache(FileLoader(path), 0)
	cfg, err := cache.Get()
	require.NoError(t, err)
	require.Equal(t, "one", cfg.Title())

	changed := make(chan string, 4)
	cache.OnChange(func(_, next *SiteConfig) { changed <- next.Title() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, cache, 20*time.Millisecond) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("title: two\ndescription: d\n"), 0o644))

	select {
	case title := <-changed:
		assert.Equal(t, "two", title)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded after the file changed")
	}

	// An invalid edit keeps the last good config.
	require.NoError(t, os.WriteFile(path, []byte("title: \"\"\n"), 0o644))
	require.Eventually(t, func() bool { return cache.LastError() != nil }, 5*time.Second, 20*time.Millisecond)
	cfg, err = cache.Get()
	require.NoError(t, err)
	assert.Equal(t, "two", cfg.Title())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cache := NewConfigCache(FileLoader("unused.yaml"), 0)
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "site.yaml"), cache, 0)
	assert.Error(t, err)
}
