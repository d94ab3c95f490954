package songcache

import "fmt"

// Instrument identifies one of the 21 part-availability slots every
// song record carries.
type Instrument uint8

const (
	Band Instrument = iota
	FiveFretGuitar
	FiveFretBass
	FiveFretRhythm
	FiveFretCoopGuitar
	Keys
	SixFretGuitar
	SixFretBass
	SixFretRhythm
	SixFretCoopGuitar
	FourLaneDrums
	ProDrums
	FiveLaneDrums
	EliteDrums
	ProGuitar17
	ProGuitar22
	ProBass17
	ProBass22
	ProKeys
	LeadVocals
	HarmonyVocals
	instrumentCount
)

var instrumentNames = [instrumentCount]string{
	"band", "guitar", "bass", "rhythm", "coop_guitar",
	"keys", "6fret_guitar", "6fret_bass", "6fret_rhythm", "6fret_coop_guitar",
	"drums_4lane", "pro_drums", "drums_5lane", "elite_drums",
	"pro_guitar_17", "pro_guitar_22", "pro_bass_17", "pro_bass_22",
	"pro_keys", "vocals", "harmonies",
}

func (i Instrument) String() string {
	if int(i) < len(instrumentNames) {
		return instrumentNames[i]
	}
	return fmt.Sprintf("instrument(%d)", uint8(i))
}

// PartValues is one availability slot: a raw subtrack byte and a signed
// intensity tier. The subtrack byte doubles as the difficulty bitmask;
// callers pick the view they need. Intensity -1 means unrated.
type PartValues struct {
	SubTracks byte
	Intensity int8
}

// Difficulties returns the slot byte under its bitmask interpretation.
func (p PartValues) Difficulties() byte { return p.SubTracks }

// IsActive reports whether the song charts this part at all.
func (p PartValues) IsActive() bool { return p.SubTracks != 0 }

// PartSet is the fixed 42-byte availability block: two bytes per slot,
// in Instrument order.
type PartSet [instrumentCount]PartValues

const partBlockSize = int(instrumentCount) * 2

// newPartSet returns the all-absent set (no subtracks, intensity -1).
func newPartSet() PartSet {
	var s PartSet
	for i := range s {
		s[i].Intensity = -1
	}
	return s
}

func readPartSet(c *cursor) (PartSet, error) {
	raw, err := c.take(partBlockSize)
	if err != nil {
		return PartSet{}, fmt.Errorf("part block: %w", err)
	}
	var s PartSet
	for i := range s {
		s[i] = PartValues{SubTracks: raw[2*i], Intensity: int8(raw[2*i+1])}
	}
	return s, nil
}

// Get returns the slot for one instrument.
func (s *PartSet) Get(inst Instrument) PartValues { return s[inst] }

// ActiveCount reports how many instruments the song charts.
func (s *PartSet) ActiveCount() int {
	n := 0
	for _, p := range s {
		if p.IsActive() {
			n++
		}
	}
	return n
}
