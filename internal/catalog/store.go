package catalog

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"setlist/internal/config"
	"setlist/internal/songcache"
)

// ErrDeviceNotFound indicates a filter named a device label that has
// never been ingested.
var ErrDeviceNotFound = errors.New("device not found")

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.CatalogDir, "catalog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the catalog database location.
func (s *Store) Path() string { return s.path }

// EnsureDevice returns the device with the given label, creating it
// with a fresh identifier when it has never been seen.
func (s *Store) EnsureDevice(ctx context.Context, label string) (*Device, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, errors.New("device label is required")
	}

	dev, err := s.deviceByLabel(ctx, label)
	if err == nil {
		return dev, nil
	}
	if !errors.Is(err, ErrDeviceNotFound) {
		return nil, err
	}

	dev = &Device{
		ID:        uuid.NewString(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO devices (id, label, created_at) VALUES (?, ?, ?)",
		dev.ID, dev.Label, dev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("insert device %q: %w", label, err)
	}
	return dev, nil
}

func (s *Store) deviceByLabel(ctx context.Context, label string) (*Device, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, label, created_at, COALESCE(scanned_at, '') FROM devices WHERE label = ?", label)

	var dev Device
	var created, scanned string
	if err := row.Scan(&dev.ID, &dev.Label, &created, &scanned); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, label)
		}
		return nil, fmt.Errorf("query device %q: %w", label, err)
	}
	dev.CreatedAt, _ = time.Parse(time.RFC3339, created)
	if scanned != "" {
		dev.ScannedAt, _ = time.Parse(time.RFC3339, scanned)
	}
	return &dev, nil
}

// ReplaceSongs swaps a device's songs for the entries of a fresh decode
// in one transaction, preserving cache stream order. Returns the number
// of songs stored.
func (s *Store) ReplaceSongs(ctx context.Context, deviceID string, entries []songcache.Entry) (int, error) {
	if deviceID == "" {
		return 0, errors.New("device id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin ingest tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM songs WHERE device_id = ?", deviceID); err != nil {
		return 0, fmt.Errorf("clear songs: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `
		INSERT INTO songs (
			device_id, position, kind, hash,
			title, artist, album, genre, year, charter, playlist, source,
			length_ms, rating, is_master, parts, sort_key
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for position, entry := range entries {
		song := entry.Song()
		_, err := insert.ExecContext(ctx,
			deviceID, position, entry.Kind().String(), hex.EncodeToString(song.Hash[:]),
			song.Title, song.Artist, song.Album, song.Genre,
			song.Year, song.Charter, song.Playlist, song.Source,
			song.SongLength, song.Rating, song.IsMaster,
			song.Parts.ActiveCount(), sortKey(song.Title),
		)
		if err != nil {
			return 0, fmt.Errorf("insert song %d (%q): %w", position, song.Title, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE devices SET scanned_at = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339), deviceID,
	); err != nil {
		return 0, fmt.Errorf("stamp device: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit ingest: %w", err)
	}
	return len(entries), nil
}

// Devices lists every known device with its song count, oldest first.
func (s *Store) Devices(ctx context.Context) ([]Device, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.label, d.created_at, COALESCE(d.scanned_at, ''), COUNT(s.id)
		FROM devices d
		LEFT JOIN songs s ON s.device_id = d.id
		GROUP BY d.id
		ORDER BY d.created_at`)
	if err != nil {
		return nil, fmt.Errorf("query devices: %w", err)
	}
	defer rows.Close()

	var devices []Device
	for rows.Next() {
		var dev Device
		var created, scanned string
		if err := rows.Scan(&dev.ID, &dev.Label, &created, &scanned, &dev.SongCount); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		dev.CreatedAt, _ = time.Parse(time.RFC3339, created)
		if scanned != "" {
			dev.ScannedAt, _ = time.Parse(time.RFC3339, scanned)
		}
		devices = append(devices, dev)
	}
	return devices, rows.Err()
}

// Songs lists catalog songs matching the filter, collation-ordered by
// title.
func (s *Store) Songs(ctx context.Context, filter Filter) ([]Song, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT s.id, s.device_id, s.position, s.kind, s.hash,
		       s.title, s.artist, s.album, s.genre, s.year,
		       s.charter, s.playlist, s.source,
		       s.length_ms, s.rating, s.is_master, s.parts
		FROM songs s`)

	var (
		conds []string
		args  []any
	)
	if filter.Device != "" {
		dev, err := s.deviceByLabel(ctx, filter.Device)
		if err != nil {
			return nil, err
		}
		conds = append(conds, "s.device_id = ?")
		args = append(args, dev.ID)
	}
	if filter.Artist != "" {
		conds = append(conds, "s.artist = ?")
		args = append(args, filter.Artist)
	}
	if filter.Search != "" {
		needle := "%" + filter.Search + "%"
		conds = append(conds, "(s.title LIKE ? OR s.artist LIKE ? OR s.album LIKE ?)")
		args = append(args, needle, needle, needle)
	}
	if len(conds) > 0 {
		query.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	query.WriteString(" ORDER BY s.sort_key, s.artist")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(
			&song.ID, &song.DeviceID, &song.Position, &song.Kind, &song.Hash,
			&song.Title, &song.Artist, &song.Album, &song.Genre, &song.Year,
			&song.Charter, &song.Playlist, &song.Source,
			&song.LengthMS, &song.Rating, &song.IsMaster, &song.PartCount,
		); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}
