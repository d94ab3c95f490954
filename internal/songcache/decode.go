package songcache

import "fmt"

// CurrentVersion is the cache layout this decoder understands. The
// producer date-codes its cache versions; anything else is rejected.
const CurrentVersion int32 = 24_10_18_02

// Options controls one Decode call.
type Options struct {
	// Version the cache header must declare.
	Version int32

	// FullDirectoryPaths mirrors the producer's playlist-path mode. A
	// cache written in the other mode indexes playlists differently
	// and is rejected rather than misread.
	FullDirectoryPaths bool

	// Listings resolves packaged-container file listings. Nil disables
	// asset resolution without failing the decode.
	Listings ListingResolver

	// Progress, when non-nil, receives the running entry count after
	// each decoded song. It is called from the decoding goroutine.
	Progress func(decoded int)
}

// Result is the outcome of a successful Decode call.
type Result struct {
	// Rejected reports a header mismatch: the cache is not wrong, just
	// unusable, and the caller should rescan from source. No body
	// bytes were read.
	Rejected bool

	// Entries in stream order: chart-directory entries first, then
	// container entries.
	Entries []Entry
}

// Count returns the number of decoded entries.
func (r *Result) Count() int { return len(r.Entries) }

// Decode parses a complete cache image. Header mismatches return a
// rejected Result with a nil error; any failure past the header aborts
// the whole decode, returning no partial entries.
func Decode(data []byte, opts Options) (*Result, error) {
	cur := newCursor(data)

	version, err := cur.readInt32()
	if err != nil {
		return nil, fmt.Errorf("cache header: %w", err)
	}
	flag, err := cur.readByte()
	if err != nil {
		return nil, fmt.Errorf("cache header: %w", err)
	}
	if version != opts.Version || (flag != 0) != opts.FullDirectoryPaths {
		return &Result{Rejected: true}, nil
	}

	d := &decoder{cur: cur, opts: opts, mods: modOverlay{}}
	if err := d.run(); err != nil {
		return nil, err
	}
	return &Result{Entries: d.entries}, nil
}

// decoder holds the state of one decode pass. Sections are read in
// stream order; nothing seeks backward.
type decoder struct {
	cur    *cursor
	opts   Options
	tables *stringTables
	mods   modOverlay

	entries []Entry
}

func (d *decoder) run() error {
	tables, err := readStringTables(d.cur)
	if err != nil {
		return fmt.Errorf("string tables: %w", err)
	}
	d.tables = tables

	if err := d.readUpdateSection(); err != nil {
		return fmt.Errorf("directory updates: %w", err)
	}
	if err := d.readUpgradeSection(ModLooseUpgrade); err != nil {
		return fmt.Errorf("loose upgrades: %w", err)
	}
	if err := d.readUpgradeSection(ModPackedUpgrade); err != nil {
		return fmt.Errorf("packed upgrades: %w", err)
	}
	if err := d.readChartSection(); err != nil {
		return fmt.Errorf("chart directories: %w", err)
	}
	if err := d.readConSection(); err != nil {
		return fmt.Errorf("containers: %w", err)
	}
	return nil
}

func (d *decoder) emit(e Entry) {
	d.entries = append(d.entries, e)
	if d.opts.Progress != nil {
		d.opts.Progress(len(d.entries))
	}
}

// readUpdateSection merges the directory-update records: each names an
// update root plus its write time, and the songs it touches.
func (d *decoder) readUpdateSection() error {
	groups, err := newGroupReader(d.cur)
	if err != nil {
		return err
	}
	for groups.more() {
		rec, err := groups.next()
		if err != nil {
			return err
		}
		root, err := rec.readString()
		if err != nil {
			return fmt.Errorf("update root: %w", err)
		}
		raw, err := rec.readInt64()
		if err != nil {
			return fmt.Errorf("update write time: %w", err)
		}
		when := ticksToTime(raw)

		count, err := rec.readInt32()
		if err != nil {
			return fmt.Errorf("update name count: %w", err)
		}
		for i := int32(0); i < count; i++ {
			name, err := rec.readString()
			if err != nil {
				return fmt.Errorf("update name %d: %w", i, err)
			}
			d.mods.apply(name, ModRef{Kind: ModDirectoryUpdate, Root: root, LastWrite: when})
		}
	}
	return nil
}

// readUpgradeSection merges one of the two upgrade sections. Upgrades
// stamp each song name individually; the root write time only dates
// the container itself.
func (d *decoder) readUpgradeSection(kind ModKind) error {
	groups, err := newGroupReader(d.cur)
	if err != nil {
		return err
	}
	for groups.more() {
		rec, err := groups.next()
		if err != nil {
			return err
		}
		root, err := rec.readString()
		if err != nil {
			return fmt.Errorf("upgrade root: %w", err)
		}
		if _, err := rec.readInt64(); err != nil {
			return fmt.Errorf("upgrade root write time: %w", err)
		}

		count, err := rec.readInt32()
		if err != nil {
			return fmt.Errorf("upgrade name count: %w", err)
		}
		for i := int32(0); i < count; i++ {
			name, err := rec.readString()
			if err != nil {
				return fmt.Errorf("upgrade name %d: %w", i, err)
			}
			raw, err := rec.readInt64()
			if err != nil {
				return fmt.Errorf("upgrade write time for %q: %w", name, err)
			}
			d.mods.apply(name, ModRef{Kind: kind, Root: root, LastWrite: ticksToTime(raw)})
		}
	}
	return nil
}

// readChartSection decodes the chart-directory groups: per scan root, a
// run of chart entries followed by a run of legacy stub records whose
// payloads are skipped by their length prefixes.
func (d *decoder) readChartSection() error {
	groups, err := newGroupReader(d.cur)
	if err != nil {
		return err
	}
	for groups.more() {
		rec, err := groups.next()
		if err != nil {
			return err
		}
		root, err := rec.readString()
		if err != nil {
			return fmt.Errorf("scan root: %w", err)
		}

		charts, err := newGroupReader(rec)
		if err != nil {
			return fmt.Errorf("chart entries for %q: %w", root, err)
		}
		for charts.more() {
			sub, err := charts.next()
			if err != nil {
				return err
			}
			entry, err := d.readChartEntry(sub)
			if err != nil {
				return fmt.Errorf("chart under %q: %w", root, err)
			}
			d.emit(entry)
		}

		stubs, err := newGroupReader(rec)
		if err != nil {
			return fmt.Errorf("stub entries for %q: %w", root, err)
		}
		for stubs.more() {
			if _, err := stubs.next(); err != nil {
				return err
			}
			d.emit(newStubEntry(root))
		}
	}
	return nil
}

// readConSection decodes the container groups and patches each entry
// with the overlay built by the earlier sections.
func (d *decoder) readConSection() error {
	groups, err := newGroupReader(d.cur)
	if err != nil {
		return err
	}
	for groups.more() {
		rec, err := groups.next()
		if err != nil {
			return err
		}
		root, err := rec.readString()
		if err != nil {
			return fmt.Errorf("container root: %w", err)
		}
		storage, err := rec.readByte()
		if err != nil {
			return fmt.Errorf("container storage flag: %w", err)
		}
		if storage > 1 {
			return fmt.Errorf("%w: container storage flag %d", ErrUnknownDiscriminant, storage)
		}
		packed := storage == 1

		entries, err := newGroupReader(rec)
		if err != nil {
			return fmt.Errorf("container entries for %q: %w", root, err)
		}
		for entries.more() {
			sub, err := entries.next()
			if err != nil {
				return err
			}
			entry, err := d.readConEntry(sub, root, packed)
			if err != nil {
				return fmt.Errorf("container song in %q: %w", root, err)
			}
			d.emit(entry)
		}
	}
	return nil
}
