package config

import "setlist/internal/songcache"

const (
	defaultCatalogDir = "~/.local/share/setlist/catalog"
	defaultLogDir     = "~/.local/share/setlist/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogDir: defaultCatalogDir,
			LogDir:     defaultLogDir,
		},
		Scan: Scan{
			CacheVersion: songcache.CurrentVersion,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
