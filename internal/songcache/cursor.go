package songcache

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// cursor is a bounded read position over a byte buffer. It never copies:
// child cursors produced by slice share the same backing array, bounded
// to their record. Every read either advances by exactly the bytes it
// consumed or fails without advancing.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor { return &cursor{buf: buf} }

func (c *cursor) remaining() int { return len(c.buf) - c.pos }

func (c *cursor) require(n int) error {
	if c.remaining() < n {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrOutOfRange, n, c.remaining())
	}
	return nil
}

// take returns the next n bytes as a view and advances past them.
func (c *cursor) take(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// slice carves the next n bytes into a child cursor. The parent advances
// by n whether or not the child is ever fully consumed.
func (c *cursor) slice(n int) (*cursor, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return &cursor{buf: b}, nil
}

func (c *cursor) readByte() (byte, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readBool() (bool, error) {
	b, err := c.readByte()
	return b != 0, err
}

func (c *cursor) readInt16() (int16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func (c *cursor) readInt32() (int32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readInt64() (int64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// readUvarint decodes the base-128 little-endian varint used for string
// lengths: low seven bits per byte, high bit set while more bytes follow.
func (c *cursor) readUvarint() (uint64, error) {
	var value uint64
	for shift := uint(0); shift < 64; shift += 7 {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, nil
		}
	}
	return 0, fmt.Errorf("%w: unterminated varint", ErrInvalidEncoding)
}

// readString reads a varint byte length followed by UTF-8 text.
func (c *cursor) readString() (string, error) {
	length, err := c.readUvarint()
	if err != nil {
		return "", err
	}
	if length > uint64(c.remaining()) {
		return "", fmt.Errorf("%w: string of %d bytes, have %d", ErrOutOfRange, length, c.remaining())
	}
	b, err := c.take(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, b)
	}
	return string(b), nil
}
