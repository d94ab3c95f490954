package songcache

import "fmt"

// The eight interned string categories, in stream order. Entry records
// refer to these lists by dense zero-based index instead of repeating
// the text.
const (
	tableTitles = iota
	tableArtists
	tableAlbums
	tableGenres
	tableYears
	tableCharters
	tablePlaylists
	tableSources
	tableCount
)

var tableNames = [tableCount]string{
	"titles", "artists", "albums", "genres",
	"years", "charters", "playlists", "sources",
}

// stringTables holds the interning lists read once at the start of the
// cache body. Immutable after construction.
type stringTables [tableCount][]string

func readStringTables(c *cursor) (*stringTables, error) {
	var t stringTables
	for i := range t {
		count, err := c.readInt32()
		if err != nil {
			return nil, fmt.Errorf("%s count: %w", tableNames[i], err)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative %s count %d", ErrOutOfRange, tableNames[i], count)
		}
		list := make([]string, 0, count)
		for j := int32(0); j < count; j++ {
			s, err := c.readString()
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", tableNames[i], j, err)
			}
			list = append(list, s)
		}
		t[i] = list
	}
	return &t, nil
}

// lookup resolves an interned index. The producer never writes an index
// it did not intern, so a miss means the cache is corrupt.
func (t *stringTables) lookup(table int, index int32) (string, error) {
	list := t[table]
	if index < 0 || int(index) >= len(list) {
		return "", fmt.Errorf("%w: %s[%d] with %d entries", ErrIndexOutOfRange, tableNames[table], index, len(list))
	}
	return list[index], nil
}
