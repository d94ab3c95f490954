package songcache

import "time"

// The producer stamps times as .NET DateTime.ToBinary values: the low
// 62 bits count 100-nanosecond ticks since 0001-01-01, the top two bits
// carry kind flags that are not part of the time.
const (
	ticksMask      = 0x3FFF_FFFF_FFFF_FFFF
	unixEpochTicks = 621_355_968_000_000_000
	ticksPerMilli  = 10_000
)

// ticksToTime converts a raw packed timestamp to UTC, at millisecond
// resolution. Total for any 64-bit input.
func ticksToTime(raw int64) time.Time {
	ticks := raw & ticksMask
	return time.UnixMilli((ticks - unixEpochTicks) / ticksPerMilli).UTC()
}
