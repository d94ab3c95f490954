package songcache

// ConFileRef locates one file inside a packaged container.
type ConFileRef struct {
	Name   string
	Offset int64
	Size   int64
}

// ConListing enumerates the files of one packaged container.
type ConListing struct {
	files map[string]ConFileRef
	order []string
}

// NewConListing builds a listing from refs, keeping first-seen order.
func NewConListing(refs []ConFileRef) *ConListing {
	l := &ConListing{files: make(map[string]ConFileRef, len(refs))}
	for _, ref := range refs {
		if _, ok := l.files[ref.Name]; ok {
			continue
		}
		l.files[ref.Name] = ref
		l.order = append(l.order, ref.Name)
	}
	return l
}

// Locate finds a file by its full in-container path.
func (l *ConListing) Locate(name string) (ConFileRef, bool) {
	if l == nil {
		return ConFileRef{}, false
	}
	ref, ok := l.files[name]
	return ref, ok
}

// Names returns the listed paths in container order.
func (l *ConListing) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// ListingResolver supplies the listing for a container root path, or
// nil when the container cannot be opened. Only consulted for packed
// entries; a nil resolver or nil listing is not a decode error.
type ListingResolver func(root string) *ConListing

// ConAssets are the companion files a packed song references inside its
// container. Nil pointers mean the listing did not resolve them.
type ConAssets struct {
	Audio *ConFileRef
	Mix   *ConFileRef
	Venue *ConFileRef
	Cover *ConFileRef
}

func resolveAssets(resolve ListingResolver, root, name string) ConAssets {
	if resolve == nil {
		return ConAssets{}
	}
	listing := resolve(root)
	if listing == nil {
		return ConAssets{}
	}

	locate := func(path string) *ConFileRef {
		if ref, ok := listing.Locate(path); ok {
			return &ref
		}
		return nil
	}
	base := "songs/" + name + "/" + name
	gen := "songs/" + name + "/gen/" + name
	return ConAssets{
		Audio: locate(base + ".mogg"),
		Mix:   locate(base + ".mix"),
		Venue: locate(gen + ".milo_xbox"),
		Cover: locate(gen + "_keep.png_xbox"),
	}
}
