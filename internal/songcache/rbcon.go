package songcache

import (
	"fmt"
	"time"
)

// RBIntensities carries the thirteen per-instrument tier values stored
// in RBCON records, in wire order.
type RBIntensities struct {
	Band               int16
	FiveFretGuitar     int16
	FiveFretBass       int16
	FiveFretRhythm     int16
	FiveFretCoopGuitar int16
	Keys               int16
	FourLaneDrums      int16
	ProDrums           int16
	ProGuitar          int16
	ProBass            int16
	ProKeys            int16
	LeadVocals         int16
	HarmonyVocals      int16
}

// RBConMeta is the container-specific metadata block both CON variants
// carry between the interned indices and the shared detail fields.
type RBConMeta struct {
	Year        int32
	Intensities RBIntensities

	VocalGender  byte
	Tonality     byte
	MidiEncoding byte

	AnimTempo        uint32
	VocalScrollSpeed uint32
	VocalParts       uint32

	TuningOffsetCents int32
	VenueVersion      uint32

	SongID              string
	VocalPercussionBank string
	DrumBank            string
}

func readRBConMeta(rec *cursor) (RBConMeta, error) {
	var m RBConMeta
	var err error
	readI16 := func(dst *int16) {
		if err == nil {
			*dst, err = rec.readInt16()
		}
	}
	readByte := func(dst *byte) {
		if err == nil {
			*dst, err = rec.readByte()
		}
	}
	readU32 := func(dst *uint32) {
		if err == nil {
			*dst, err = rec.readUint32()
		}
	}
	readStr := func(dst *string) {
		if err == nil {
			*dst, err = rec.readString()
		}
	}

	if m.Year, err = rec.readInt32(); err != nil {
		return m, fmt.Errorf("rbcon year: %w", err)
	}

	readI16(&m.Intensities.Band)
	readI16(&m.Intensities.FiveFretGuitar)
	readI16(&m.Intensities.FiveFretBass)
	readI16(&m.Intensities.FiveFretRhythm)
	readI16(&m.Intensities.FiveFretCoopGuitar)
	readI16(&m.Intensities.Keys)
	readI16(&m.Intensities.FourLaneDrums)
	readI16(&m.Intensities.ProDrums)
	readI16(&m.Intensities.ProGuitar)
	readI16(&m.Intensities.ProBass)
	readI16(&m.Intensities.ProKeys)
	readI16(&m.Intensities.LeadVocals)
	readI16(&m.Intensities.HarmonyVocals)

	readByte(&m.VocalGender)
	readByte(&m.Tonality)
	readByte(&m.MidiEncoding)

	readU32(&m.AnimTempo)
	readU32(&m.VocalScrollSpeed)
	readU32(&m.VocalParts)

	if err == nil {
		m.TuningOffsetCents, err = rec.readInt32()
	}
	readU32(&m.VenueVersion)

	readStr(&m.SongID)
	readStr(&m.VocalPercussionBank)
	readStr(&m.DrumBank)

	if err != nil {
		return m, fmt.Errorf("rbcon block: %w", err)
	}
	return m, nil
}

// PackedConEntry is a song stored inside a packaged CON container.
// Companion assets are resolved through the caller's listing resolver;
// when the container cannot be listed they stay unresolved.
type PackedConEntry struct {
	SongEntry

	// Name is the song's node name below the container's songs/ tree.
	Name string
	Root string
	RB   RBConMeta

	Assets ConAssets

	// Mod is the freshest update/upgrade seen for Name, if any.
	Mod *ModRef
}

func (e *PackedConEntry) Kind() EntryKind { return KindPackedCon }
func (e *PackedConEntry) Song() *SongEntry { return &e.SongEntry }

// ExtractedConEntry is a song whose container was unpacked to loose
// files on disk.
type ExtractedConEntry struct {
	SongEntry

	Name string
	Root string
	RB   RBConMeta

	// Last-write time of the loose mogg next to the extracted files.
	AudioWrite time.Time

	Mod *ModRef
}

func (e *ExtractedConEntry) Kind() EntryKind { return KindExtractedCon }
func (e *ExtractedConEntry) Song() *SongEntry { return &e.SongEntry }

// readConEntry decodes one container song record. Both variants share the
// layout name, [audio write], identity, rbcon block, details; the
// rbcon block sits between the interned indices and the detail fields.
func (d *decoder) readConEntry(rec *cursor, root string, packed bool) (Entry, error) {
	name, err := rec.readString()
	if err != nil {
		return nil, fmt.Errorf("node name: %w", err)
	}

	var audioWrite time.Time
	if !packed {
		raw, err := rec.readInt64()
		if err != nil {
			return nil, fmt.Errorf("audio write time: %w", err)
		}
		audioWrite = ticksToTime(raw)
	}

	var base SongEntry
	if err := base.readIdentity(rec, d.tables); err != nil {
		return nil, err
	}
	rb, err := readRBConMeta(rec)
	if err != nil {
		return nil, err
	}
	if err := base.readDetails(rec); err != nil {
		return nil, err
	}

	mod := d.mods.lookup(name)
	if packed {
		return &PackedConEntry{
			SongEntry: base,
			Name:      name,
			Root:      root,
			RB:        rb,
			Assets:    resolveAssets(d.opts.Listings, root, name),
			Mod:       mod,
		}, nil
	}
	return &ExtractedConEntry{
		SongEntry:  base,
		Name:       name,
		Root:       root,
		RB:         rb,
		AudioWrite: audioWrite,
		Mod:        mod,
	}, nil
}
