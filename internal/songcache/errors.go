package songcache

import "errors"

var (
	// ErrOutOfRange reports a read that would pass the end of its
	// bounded record. Always fatal for the whole decode.
	ErrOutOfRange = errors.New("read past end of record")

	// ErrIndexOutOfRange reports a string-table index outside the
	// tables built from this cache.
	ErrIndexOutOfRange = errors.New("string table index out of range")

	// ErrInvalidEncoding reports a string field that is not valid
	// UTF-8. The decoder rejects such caches rather than substituting
	// replacement runes.
	ErrInvalidEncoding = errors.New("string is not valid UTF-8")

	// ErrUnknownDiscriminant reports a variant selector byte outside
	// the known set. The decoder fails fast instead of guessing a
	// layout for the bytes that follow.
	ErrUnknownDiscriminant = errors.New("unknown record discriminant")
)
