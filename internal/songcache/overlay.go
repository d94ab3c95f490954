package songcache

import (
	"fmt"
	"time"
)

// ModKind says which cache section produced a modification reference.
type ModKind uint8

const (
	ModDirectoryUpdate ModKind = iota
	ModLooseUpgrade
	ModPackedUpgrade
)

func (k ModKind) String() string {
	switch k {
	case ModDirectoryUpdate:
		return "update"
	case ModLooseUpgrade:
		return "loose_upgrade"
	case ModPackedUpgrade:
		return "packed_upgrade"
	}
	return fmt.Sprintf("mod(%d)", uint8(k))
}

// ModRef points a song at the freshest companion metadata seen for its
// name across the update and upgrade sections.
type ModRef struct {
	Kind      ModKind
	Root      string
	LastWrite time.Time
}

// modOverlay keys the freshest ModRef by song name. A candidate only
// replaces a stored value with a strictly newer write time, so the
// merge result does not depend on section order. Entries are consumed
// while decoding containers but never removed.
type modOverlay map[string]ModRef

func (m modOverlay) apply(name string, ref ModRef) {
	if old, ok := m[name]; ok && !old.LastWrite.Before(ref.LastWrite) {
		return
	}
	m[name] = ref
}

func (m modOverlay) lookup(name string) *ModRef {
	if ref, ok := m[name]; ok {
		return &ref
	}
	return nil
}
