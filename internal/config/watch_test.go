package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type reloads struct {
	mu      sync.Mutex
	configs []*SiteConfig
	errs    []error
}

func (r *reloads) record(cfg *SiteConfig, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, cfg)
	r.errs = append(r.errs, err)
}

func (r *reloads) last() (int, *SiteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.configs)
	if n == 0 {
		return 0, nil, nil
	}
	return n, r.configs[n-1], r.errs[n-1]
}

func TestWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0644))

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	got := &reloads{}
	go func() {
		done <- w.Run(ctx, got.record)
	}()

	updated := "title: Renamed\nurl: https://example.com\nbaseUrl: /\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	require.Eventually(t, func() bool {
		n, cfg, err := got.last()
		return n > 0 && err == nil && cfg != nil && cfg.Title == "Renamed"
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("url: https://example.com\n"), 0644))
	require.Eventually(t, func() bool {
		_, cfg, err := got.last()
		return cfg == nil && err != nil
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0644))

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := &reloads{}
	go func() { _ = w.Run(ctx, got.record) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))
	time.Sleep(150 * time.Millisecond)

	n, _, _ := got.last()
	require.Zero(t, n)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "site.yaml"), zerolog.Nop())
	require.Error(t, err)
}
