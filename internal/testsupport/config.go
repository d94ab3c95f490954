// Package testsupport provides shared helpers for setlist tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"setlist/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogDir = filepath.Join(base, "catalog")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Scan.DefaultDevice = "test-device"

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithCacheVersion overrides the accepted cache version on the test config.
func WithCacheVersion(version int32) ConfigOption {
	return func(c *config.Config) {
		c.Scan.CacheVersion = version
	}
}

// WithFullDirectoryPaths sets the playlist-path mode on the test config.
func WithFullDirectoryPaths(enabled bool) ConfigOption {
	return func(c *config.Config) {
		c.Scan.FullDirectoryPaths = enabled
	}
}
