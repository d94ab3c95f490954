// Package config loads and validates the setlist configuration file.
// Configuration is TOML, found at ~/.config/setlist/config.toml, a
// setlist.toml in the working directory, or an explicit --config path.
// Loading always starts from defaults, overlays the file when one
// exists, then normalizes paths and validates the result.
package config
