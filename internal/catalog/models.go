package catalog

import "time"

// Device is one game installation whose cache has been ingested.
type Device struct {
	ID        string
	Label     string
	CreatedAt time.Time
	ScannedAt time.Time // zero until the first ingest
	SongCount int
}

// Song is one catalog row built from a decoded cache entry.
type Song struct {
	ID       int64
	DeviceID string
	Position int
	Kind     string
	Hash     string

	Title    string
	Artist   string
	Album    string
	Genre    string
	Year     string
	Charter  string
	Playlist string
	Source   string

	LengthMS  int64
	Rating    uint32
	IsMaster  bool
	PartCount int
}

// Filter narrows Songs queries. Zero values mean "no constraint".
type Filter struct {
	Device string // device label
	Artist string // exact artist match
	Search string // substring over title, artist, album
	Limit  int
}
