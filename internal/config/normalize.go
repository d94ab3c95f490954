package config

import "strings"

// normalize expands paths and canonicalizes string fields after the
// TOML overlay, before validation.
func (c *Config) normalize() error {
	var err error
	if c.Paths.CatalogDir, err = expandPath(strings.TrimSpace(c.Paths.CatalogDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}

	c.Scan.DefaultDevice = strings.TrimSpace(c.Scan.DefaultDevice)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
