package songcache

import (
	"testing"
	"time"
)

func TestOverlayKeepsNewestRegardlessOfOrder(t *testing.T) {
	older := ModRef{Kind: ModDirectoryUpdate, Root: "updates", LastWrite: time.Unix(100, 0)}
	newer := ModRef{Kind: ModPackedUpgrade, Root: "upgrades", LastWrite: time.Unix(200, 0)}

	forward := modOverlay{}
	forward.apply("song", older)
	forward.apply("song", newer)

	backward := modOverlay{}
	backward.apply("song", newer)
	backward.apply("song", older)

	for name, m := range map[string]modOverlay{"forward": forward, "backward": backward} {
		got := m.lookup("song")
		if got == nil {
			t.Fatalf("%s: lookup returned nil", name)
		}
		if *got != newer {
			t.Errorf("%s: stored %+v, want %+v", name, *got, newer)
		}
	}
}

func TestOverlayEqualTimestampKeepsFirst(t *testing.T) {
	when := time.Unix(300, 0)
	first := ModRef{Kind: ModLooseUpgrade, Root: "a", LastWrite: when}
	second := ModRef{Kind: ModPackedUpgrade, Root: "b", LastWrite: when}

	m := modOverlay{}
	m.apply("song", first)
	m.apply("song", second)

	if got := m.lookup("song"); got == nil || *got != first {
		t.Fatalf("equal timestamps must not replace: got %+v, want %+v", got, first)
	}
}

func TestOverlayLookupMiss(t *testing.T) {
	m := modOverlay{}
	if got := m.lookup("absent"); got != nil {
		t.Fatalf("lookup(absent) = %+v, want nil", got)
	}
}

func TestOverlayLookupReturnsCopy(t *testing.T) {
	m := modOverlay{}
	m.apply("song", ModRef{Root: "a", LastWrite: time.Unix(1, 0)})

	got := m.lookup("song")
	got.Root = "mutated"

	if again := m.lookup("song"); again.Root != "a" {
		t.Fatalf("lookup exposed map storage: %+v", again)
	}
}
