// Package songcache decodes the binary song cache written by the game
// client after a library scan. The cache is a versioned, little-endian,
// length-delimited stream: a 5-byte header, eight interned string
// tables, three update/upgrade sections that feed a name-keyed overlay,
// and two entry sections (chart directories, then CON containers) that
// yield the song records.
//
// Decoding is a single forward pass over an in-memory buffer. A header
// mismatch is a normal outcome (Result.Rejected); any other failure
// aborts the whole decode and surfaces one error, because a cache that
// misparses anywhere is unusable everywhere.
//
// Each Decode call owns all of its state, so concurrent decodes over
// separate buffers need no synchronization.
package songcache
