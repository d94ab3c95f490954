package main

import (
	"fmt"
	"os"
	"strings"

	"setlist/internal/config"
)

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// formatSongLength renders a millisecond duration as m:ss.
func formatSongLength(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	totalSeconds := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// deviceLabel picks the device name for a scan: the --device flag, the
// configured default, or the hostname.
func deviceLabel(flagValue string, cfg *config.Config) (string, error) {
	if label := strings.TrimSpace(flagValue); label != "" {
		return label, nil
	}
	if cfg != nil && cfg.Scan.DefaultDevice != "" {
		return cfg.Scan.DefaultDevice, nil
	}
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("determine hostname for device label: %w", err)
	}
	return hostname, nil
}
