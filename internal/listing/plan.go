package listing

import "strconv"

// PlaceholderCount is the number of placeholder entries shown during first load.
const PlaceholderCount = 8

// Keyed is an item with a stable identity.
type Keyed interface {
	Key() string
}

// ResultSet is the caller's snapshot of a paginated query.
// A nil Items slice is treated as empty and a zero Total as unknown.
type ResultSet[T Keyed] struct {
	Items     []T
	Total     int
	IsPending bool
}

// EntryKind tags an Entry.
type EntryKind int

const (
	// EntryReal is backed by a loaded item.
	EntryReal EntryKind = iota
	// EntryPlaceholder stands in for an item that has not arrived.
	EntryPlaceholder
)

// String returns the kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryReal:
		return "real"
	case EntryPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Entry is one rendered row. Item is set only for EntryReal and Index only
// for EntryPlaceholder.
type Entry[T Keyed] struct {
	Kind           EntryKind
	Item           T
	Index          int
	ShowCollection bool
	IsPending      bool
}

// Key returns the rendering identity of the entry.
func (e Entry[T]) Key() string {
	switch e.Kind {
	case EntryReal:
		return e.Item.Key()
	case EntryPlaceholder:
		return strconv.Itoa(e.Index)
	default:
		return ""
	}
}

// Diagram returns the backing item and true for real entries.
func (e Entry[T]) Diagram() (T, bool) {
	if e.Kind == EntryReal {
		return e.Item, true
	}
	var zero T
	return zero, false
}

// Layout is the output of Plan.
type Layout[T Keyed] struct {
	Entries []Entry[T]

	// Sentinel is always true; it is kept explicit so hosts render the
	// sentinel from the layout rather than by convention.
	Sentinel bool
}

// Real returns the real entries in order.
func (l Layout[T]) Real() []Entry[T] {
	out := make([]Entry[T], 0, len(l.Entries))
	for _, e := range l.Entries {
		if e.Kind == EntryReal {
			out = append(out, e)
		}
	}
	return out
}

// Placeholders returns the placeholder entries in order.
func (l Layout[T]) Placeholders() []Entry[T] {
	out := make([]Entry[T], 0, PlaceholderCount)
	for _, e := range l.Entries {
		if e.Kind == EntryPlaceholder {
			out = append(out, e)
		}
	}
	return out
}

// Keys returns the keys of all entries in order.
func (l Layout[T]) Keys() []string {
	keys := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		keys[i] = e.Key()
	}
	return keys
}

// FirstLoad reports whether result is pending with no known total.
func FirstLoad[T Keyed](result ResultSet[T]) bool {
	return result.IsPending && result.Total == 0
}

// Plan computes the entries to render for result. showCollection is passed
// through to every entry uninterpreted.
func Plan[T Keyed](result ResultSet[T], showCollection bool) Layout[T] {
	firstLoad := FirstLoad(result)

	size := len(result.Items)
	if firstLoad {
		size += PlaceholderCount
	}
	entries := make([]Entry[T], 0, size)

	for _, item := range result.Items {
		entries = append(entries, Entry[T]{
			Kind:           EntryReal,
			Item:           item,
			ShowCollection: showCollection,
		})
	}

	if firstLoad {
		for i := 0; i < PlaceholderCount; i++ {
			entries = append(entries, Entry[T]{
				Kind:           EntryPlaceholder,
				Index:          i,
				ShowCollection: showCollection,
				IsPending:      true,
			})
		}
	}

	return Layout[T]{Entries: entries, Sentinel: true}
}
