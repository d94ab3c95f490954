package main

import (
	"fmt"
	"log/slog"
	"os"

	"setlist/internal/config"
	"setlist/internal/songcache"
)

// decodeCacheFile reads and decodes a cache file using the configured
// scan settings.
func decodeCacheFile(path string, cfg *config.Config, logger *slog.Logger) (*songcache.Result, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	opts := songcache.Options{
		Version:            cfg.Scan.CacheVersion,
		FullDirectoryPaths: cfg.Scan.FullDirectoryPaths,
	}
	if logger != nil {
		opts.Progress = func(decoded int) {
			if decoded%500 == 0 {
				logger.Debug("decoding cache", "component", "scan", "entries", decoded)
			}
		}
	}

	result, err := songcache.Decode(data, opts)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", expanded, err)
	}
	return result, nil
}

// entryView is the JSON projection of a decoded entry shared by the
// scan and inspect commands.
type entryView struct {
	Position int    `json:"position"`
	Kind     string `json:"kind"`
	Title    string `json:"title,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Album    string `json:"album,omitempty"`
	Charter  string `json:"charter,omitempty"`
	LengthMS int64  `json:"length_ms,omitempty"`
	Parts    int    `json:"parts"`
}

// kindCounts tallies decoded entries by variant, keyed by the kind's
// string name.
func kindCounts(entries []songcache.Entry) map[string]int {
	counts := make(map[string]int)
	for _, entry := range entries {
		counts[entry.Kind().String()]++
	}
	return counts
}

func newEntryView(position int, entry songcache.Entry) entryView {
	song := entry.Song()
	return entryView{
		Position: position,
		Kind:     entry.Kind().String(),
		Title:    song.Title,
		Artist:   song.Artist,
		Album:    song.Album,
		Charter:  song.Charter,
		LengthMS: song.SongLength,
		Parts:    song.Parts.ActiveCount(),
	}
}
