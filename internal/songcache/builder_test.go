package songcache

import (
	"bytes"
	"encoding/binary"
	"time"
)

// builder assembles synthetic cache images for tests. There is no
// production encoder; only the game client writes real caches.
type builder struct {
	buf bytes.Buffer
}

func (b *builder) bytes() []byte { return b.buf.Bytes() }

func (b *builder) raw(p []byte) { b.buf.Write(p) }

func (b *builder) u8(v byte) { b.buf.WriteByte(v) }

func (b *builder) boolean(v bool) {
	if v {
		b.u8(1)
	} else {
		b.u8(0)
	}
}

func (b *builder) i16(v int16) {
	var p [2]byte
	binary.LittleEndian.PutUint16(p[:], uint16(v))
	b.raw(p[:])
}

func (b *builder) i32(v int32) {
	var p [4]byte
	binary.LittleEndian.PutUint32(p[:], uint32(v))
	b.raw(p[:])
}

func (b *builder) u32(v uint32) {
	var p [4]byte
	binary.LittleEndian.PutUint32(p[:], v)
	b.raw(p[:])
}

func (b *builder) i64(v int64) {
	var p [8]byte
	binary.LittleEndian.PutUint64(p[:], uint64(v))
	b.raw(p[:])
}

func (b *builder) uvarint(v uint64) {
	for v >= 0x80 {
		b.u8(byte(v) | 0x80)
		v >>= 7
	}
	b.u8(byte(v))
}

func (b *builder) str(s string) {
	b.uvarint(uint64(len(s)))
	b.buf.WriteString(s)
}

// block writes one length-prefixed record: int32 byte length, payload.
func (b *builder) block(fn func(*builder)) {
	var inner builder
	fn(&inner)
	b.i32(int32(inner.buf.Len()))
	b.raw(inner.bytes())
}

// section writes an int32 record count followed by one block per fn.
func (b *builder) section(records ...func(*builder)) {
	b.i32(int32(len(records)))
	for _, fn := range records {
		b.block(fn)
	}
}

func (b *builder) header(version int32, fullPaths bool) {
	b.i32(version)
	b.boolean(fullPaths)
}

// tables writes all eight interning tables in stream order.
func (b *builder) tables(t [tableCount][]string) {
	for _, list := range t {
		b.i32(int32(len(list)))
		for _, s := range list {
			b.str(s)
		}
	}
}

// partBlock writes 21 identical slots.
func (b *builder) partBlock(subTracks byte, intensity int8) {
	for i := 0; i < int(instrumentCount); i++ {
		b.u8(subTracks)
		b.u8(byte(intensity))
	}
}

// songBase writes hash, parts, and the eight interned indices.
func (b *builder) songBase(hash byte, index int32) {
	b.raw(bytes.Repeat([]byte{hash}, 20))
	b.partBlock(0x01, 3)
	for i := 0; i < tableCount; i++ {
		b.i32(index)
	}
}

// songDetails writes the shared tail with distinguishable defaults.
func (b *builder) songDetails(loadingPhrase string) {
	b.boolean(true)  // master
	b.boolean(false) // video loop
	b.i32(1)         // album track
	b.i32(2)         // playlist track
	b.i64(215_000)   // length
	b.i64(0)         // offset
	b.u32(4)         // rating
	b.i64(30_000)    // preview start
	b.i64(45_000)    // preview end
	b.i64(0)         // video start
	b.i64(0)         // video end

	b.str(loadingPhrase)
	for i := 0; i < 11; i++ { // links
		b.str("")
	}
	b.str("") // install location
	for i := 0; i < 7; i++ { // credits actually present in the stream
		b.str("")
	}
}

// rbconBlock writes the container metadata block.
func (b *builder) rbconBlock(year int32, songID string) {
	b.i32(year)
	for i := 0; i < 13; i++ {
		b.i16(int16(i))
	}
	b.u8(1)     // vocal gender
	b.u8(0)     // tonality
	b.u8(0)     // midi encoding
	b.u32(32)   // anim tempo
	b.u32(2300) // vocal scroll speed
	b.u32(2)    // vocal parts
	b.i32(-50)  // tuning offset cents
	b.u32(25)   // venue version
	b.str(songID)
	b.str("sfx/tambourine_bank.milo")
	b.str("sfx/kit01_bank.milo")
}

func timeToTicks(t time.Time) int64 {
	return t.UnixMilli()*ticksPerMilli + unixEpochTicks
}

// testTables fills index 0 of every category.
func testTables() [tableCount][]string {
	return [tableCount][]string{
		tableTitles:    {"Through the Fire and Flames"},
		tableArtists:   {"DragonForce"},
		tableAlbums:    {"Inhuman Rampage"},
		tableGenres:    {"Power Metal"},
		tableYears:     {"2006"},
		tableCharters:  {"Harmonix"},
		tablePlaylists: {"Setlist One"},
		tableSources:   {"gh3"},
	}
}

func emptySection(b *builder) { b.i32(0) }
