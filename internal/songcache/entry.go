package songcache

import "fmt"

// EntryKind discriminates the concrete layout of a decoded song entry.
type EntryKind uint8

const (
	KindChart EntryKind = iota
	KindPackedCon
	KindExtractedCon
	KindStub
)

func (k EntryKind) String() string {
	switch k {
	case KindChart:
		return "chart"
	case KindPackedCon:
		return "packed_con"
	case KindExtractedCon:
		return "extracted_con"
	case KindStub:
		return "stub"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Entry is one decoded song record. The concrete type is selected by
// the in-stream discriminators, never by the caller.
type Entry interface {
	Kind() EntryKind
	// Song exposes the fields every variant shares.
	Song() *SongEntry
}

// SongLinks holds the per-song external links, in stream order.
type SongLinks struct {
	Bandcamp   string
	Bluesky    string
	Facebook   string
	Instagram  string
	Newgrounds string
	Soundcloud string
	Spotify    string
	TikTok     string
	Twitter    string
	Other      string
	YouTube    string
}

// SongCredits holds the credit strings. Only the first seven fields are
// written by current cache producers; the rest are declared by the
// record shape but absent from the stream and stay empty after decode.
// Do not add reads for them without a producer that writes them, or
// every later field in the record misaligns.
type SongCredits struct {
	AlbumArtDesignedBy string
	ArrangedBy         string
	ComposedBy         string
	CourtesyOf         string
	EngineeredBy       string
	License            string
	MasteredBy         string

	MixedBy     string
	Other       string
	PerformedBy string
	ProducedBy  string
	PublishedBy string
	WrittenBy   string
}

// InstrumentCharters names who charted each instrument group. Declared
// by the record shape but never present in the stream; always empty.
type InstrumentCharters struct {
	Guitar    string
	Bass      string
	Drums     string
	Keys      string
	Vocals    string
	ProGuitar string
	ProKeys   string
}

// SongEntry is the base record every variant embeds: identity hash,
// part availability, and the interned/inline metadata fields.
type SongEntry struct {
	Hash  [20]byte
	Parts PartSet

	// Resolved from the string tables at decode time.
	Title    string
	Artist   string
	Album    string
	Genre    string
	Year     string
	Charter  string
	Playlist string
	Source   string

	IsMaster  bool
	VideoLoop bool

	AlbumTrack    int32
	PlaylistTrack int32

	// Milliseconds.
	SongLength int64
	SongOffset int64

	Rating uint32

	// Milliseconds into the song.
	PreviewStart int64
	PreviewEnd   int64
	VideoStart   int64
	VideoEnd     int64

	LoadingPhrase string
	Links         SongLinks
	Location      string
	Credits       SongCredits
	Charters      InstrumentCharters
}

// readIdentity decodes the fixed front of every entry: 20-byte hash,
// 42-byte part block, then the eight interned metadata indices.
func (e *SongEntry) readIdentity(rec *cursor, tables *stringTables) error {
	hash, err := rec.take(len(e.Hash))
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	copy(e.Hash[:], hash)

	if e.Parts, err = readPartSet(rec); err != nil {
		return err
	}

	dests := [tableCount]*string{
		tableTitles:    &e.Title,
		tableArtists:   &e.Artist,
		tableAlbums:    &e.Album,
		tableGenres:    &e.Genre,
		tableYears:     &e.Year,
		tableCharters:  &e.Charter,
		tablePlaylists: &e.Playlist,
		tableSources:   &e.Source,
	}
	for table, dst := range dests {
		index, err := rec.readInt32()
		if err != nil {
			return fmt.Errorf("%s index: %w", tableNames[table], err)
		}
		if *dst, err = tables.lookup(table, index); err != nil {
			return err
		}
	}
	return nil
}

// readDetails decodes the shared tail of every entry. Field order is
// the wire order and must not be rearranged.
func (e *SongEntry) readDetails(rec *cursor) error {
	var err error
	readBool := func(dst *bool) {
		if err == nil {
			*dst, err = rec.readBool()
		}
	}
	readI32 := func(dst *int32) {
		if err == nil {
			*dst, err = rec.readInt32()
		}
	}
	readU32 := func(dst *uint32) {
		if err == nil {
			*dst, err = rec.readUint32()
		}
	}
	readI64 := func(dst *int64) {
		if err == nil {
			*dst, err = rec.readInt64()
		}
	}
	readStr := func(dst *string) {
		if err == nil {
			*dst, err = rec.readString()
		}
	}

	readBool(&e.IsMaster)
	readBool(&e.VideoLoop)
	readI32(&e.AlbumTrack)
	readI32(&e.PlaylistTrack)
	readI64(&e.SongLength)
	readI64(&e.SongOffset)
	readU32(&e.Rating)
	readI64(&e.PreviewStart)
	readI64(&e.PreviewEnd)
	readI64(&e.VideoStart)
	readI64(&e.VideoEnd)

	readStr(&e.LoadingPhrase)
	readStr(&e.Links.Bandcamp)
	readStr(&e.Links.Bluesky)
	readStr(&e.Links.Facebook)
	readStr(&e.Links.Instagram)
	readStr(&e.Links.Newgrounds)
	readStr(&e.Links.Soundcloud)
	readStr(&e.Links.Spotify)
	readStr(&e.Links.TikTok)
	readStr(&e.Links.Twitter)
	readStr(&e.Links.Other)
	readStr(&e.Links.YouTube)
	readStr(&e.Location)

	// The stream stops after the first seven credit fields; the
	// remaining SongCredits and InstrumentCharters fields are not
	// written by any known producer.
	readStr(&e.Credits.AlbumArtDesignedBy)
	readStr(&e.Credits.ArrangedBy)
	readStr(&e.Credits.ComposedBy)
	readStr(&e.Credits.CourtesyOf)
	readStr(&e.Credits.EngineeredBy)
	readStr(&e.Credits.License)
	readStr(&e.Credits.MasteredBy)

	return err
}

// StubEntry stands in for the legacy packed-song records the producer
// still frames but this decoder does not interpret. The payload is
// skipped via its length prefix; only the group directory survives,
// with every song field at its default.
type StubEntry struct {
	SongEntry
	Dir string
}

func newStubEntry(dir string) *StubEntry {
	return &StubEntry{SongEntry: SongEntry{Parts: newPartSet()}, Dir: dir}
}

func (e *StubEntry) Kind() EntryKind { return KindStub }
func (e *StubEntry) Song() *SongEntry { return &e.SongEntry }
