package songcache

import (
	"testing"
	"time"
)

func TestTicksToTimeMasksFlagBits(t *testing.T) {
	raw := timeToTicks(time.Date(2024, time.March, 9, 12, 30, 0, 0, time.UTC))
	flagged := int64(uint64(raw) | 0xC000_0000_0000_0000)

	if got, want := ticksToTime(flagged), ticksToTime(raw); !got.Equal(want) {
		t.Fatalf("flag bits changed the instant: %v != %v", got, want)
	}
}

func TestTicksToTimeKnownInstants(t *testing.T) {
	cases := []time.Time{
		time.Unix(0, 0).UTC(),
		time.Date(2009, time.October, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, want := range cases {
		if got := ticksToTime(timeToTicks(want)); !got.Equal(want) {
			t.Errorf("ticksToTime(timeToTicks(%v)) = %v", want, got)
		}
	}
}
