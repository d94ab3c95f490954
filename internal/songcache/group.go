package songcache

import "fmt"

// groupReader walks a counted run of length-delimited records: an int32
// count (read at construction or supplied by the caller), then per
// record an int32 byte length and that many payload bytes. Each record
// comes back as a bounded child cursor, so under-consuming a record is
// harmless and over-consuming fails inside the child.
type groupReader struct {
	parent *cursor
	count  int
	read   int
}

func newGroupReader(c *cursor) (*groupReader, error) {
	n, err := c.readInt32()
	if err != nil {
		return nil, fmt.Errorf("read record count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative record count %d", ErrOutOfRange, n)
	}
	return &groupReader{parent: c, count: int(n)}, nil
}

func (g *groupReader) len() int { return g.count }

func (g *groupReader) more() bool { return g.read < g.count }

// next yields the following record as a bounded cursor. The parent
// position moves past the whole record regardless of how much of the
// child the caller consumes.
func (g *groupReader) next() (*cursor, error) {
	if !g.more() {
		return nil, fmt.Errorf("%w: record %d of %d", ErrOutOfRange, g.read+1, g.count)
	}
	length, err := g.parent.readInt32()
	if err != nil {
		return nil, fmt.Errorf("record %d length: %w", g.read, err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative record length %d", ErrOutOfRange, length)
	}
	rec, err := g.parent.slice(int(length))
	if err != nil {
		return nil, fmt.Errorf("record %d body: %w", g.read, err)
	}
	g.read++
	return rec, nil
}
