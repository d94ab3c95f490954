package catalog

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators are not safe for concurrent use; ingest and queries can
// run from different goroutines.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und, collate.Loose)
)

// sortKey returns a binary collation key so titles order case- and
// diacritic-insensitively under a plain BLOB comparison in SQLite.
func sortKey(s string) []byte {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	var buf collate.Buffer
	return append([]byte(nil), collator.KeyFromString(&buf, s)...)
}
