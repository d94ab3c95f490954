package songcache

import (
	"fmt"
	"time"
)

// ChartFormat identifies which known chart file a directory entry was
// scanned from. The wire value is an index into chartFilenames.
type ChartFormat uint8

const (
	FormatMid ChartFormat = iota
	FormatMidi
	FormatChart
	chartFormatCount
)

var chartFilenames = [chartFormatCount]string{"notes.mid", "notes.midi", "notes.chart"}

// Filename returns the on-disk chart file this format refers to.
func (f ChartFormat) Filename() string {
	if int(f) < len(chartFilenames) {
		return chartFilenames[f]
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

func (f ChartFormat) String() string { return f.Filename() }

// ChartEntry is a song scanned from a loose chart directory.
type ChartEntry struct {
	SongEntry

	// Dir is the subdirectory below the scan root, as stored.
	Dir    string
	Format ChartFormat

	// Last-write time of the chart file when the cache was written.
	ChartWrite time.Time

	// Last-write time of the companion song.ini, when one existed.
	HasIni   bool
	IniWrite time.Time
}

func (e *ChartEntry) Kind() EntryKind { return KindChart }
func (e *ChartEntry) Song() *SongEntry { return &e.SongEntry }

func (d *decoder) readChartEntry(rec *cursor) (*ChartEntry, error) {
	e := &ChartEntry{}

	var err error
	if e.Dir, err = rec.readString(); err != nil {
		return nil, fmt.Errorf("subdirectory: %w", err)
	}
	format, err := rec.readByte()
	if err != nil {
		return nil, fmt.Errorf("chart format: %w", err)
	}
	if format >= uint8(chartFormatCount) {
		return nil, fmt.Errorf("%w: chart format %d", ErrUnknownDiscriminant, format)
	}
	e.Format = ChartFormat(format)

	raw, err := rec.readInt64()
	if err != nil {
		return nil, fmt.Errorf("chart write time: %w", err)
	}
	e.ChartWrite = ticksToTime(raw)

	if e.HasIni, err = rec.readBool(); err != nil {
		return nil, fmt.Errorf("ini presence: %w", err)
	}
	if e.HasIni {
		if raw, err = rec.readInt64(); err != nil {
			return nil, fmt.Errorf("ini write time: %w", err)
		}
		e.IniWrite = ticksToTime(raw)
	}

	if err := e.readIdentity(rec, d.tables); err != nil {
		return nil, err
	}
	if err := e.readDetails(rec); err != nil {
		return nil, err
	}
	return e, nil
}
