package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setlist/internal/config"
	"setlist/internal/songcache"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Scan.CacheVersion != songcache.CurrentVersion {
		t.Errorf("cache version = %d, want %d", cfg.Scan.CacheVersion, songcache.CurrentVersion)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.CatalogDir) {
		t.Errorf("catalog dir not absolute: %q", cfg.Paths.CatalogDir)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
catalog_dir = "` + filepath.ToSlash(filepath.Join(dir, "cat")) + `"

[scan]
cache_version = 12345678
full_directory_paths = true
default_device = "  deck  "

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Scan.CacheVersion != 12345678 {
		t.Errorf("cache version = %d", cfg.Scan.CacheVersion)
	}
	if !cfg.Scan.FullDirectoryPaths {
		t.Error("full_directory_paths not applied")
	}
	if cfg.Scan.DefaultDevice != "deck" {
		t.Errorf("default device = %q, want trimmed value", cfg.Scan.DefaultDevice)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging not lowercased: %+v", cfg.Logging)
	}
	if cfg.Paths.CatalogDir != filepath.Join(dir, "cat") {
		t.Errorf("catalog dir = %q", cfg.Paths.CatalogDir)
	}
	// Unset fields keep defaults.
	if cfg.Paths.LogDir == "" {
		t.Error("log dir default lost")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantSub string
	}{
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantSub: "logging.format",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"verbose\"\n",
			wantSub: "logging.level",
		},
		{
			name:    "non-positive cache version",
			content: "[scan]\ncache_version = 0\n",
			wantSub: "scan.cache_version",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	// The sample is all comments, so loading it must produce a valid
	// default configuration.
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after creation")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogDir = filepath.Join(dir, "a", "b")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	for _, d := range []string{cfg.Paths.CatalogDir, cfg.Paths.LogDir} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %q not created", d)
		}
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := config.ExpandPath("~/x")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x") {
		t.Errorf("expand = %q", got)
	}
}
