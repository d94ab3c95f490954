// Package catalog persists decoded song entries per device in SQLite.
// A device is one game installation whose cache was scanned; each scan
// replaces that device's songs wholesale, since the cache is itself a
// full snapshot of the library. Songs keep their cache stream order in
// a position column and carry a collation key so listings sort the way
// humans expect.
package catalog
