package modlist

import (
	"errors"
	"slices"
)

var (
	// ErrDuplicateID is returned by [List.Append] when the ID is already
	// in the list.
	ErrDuplicateID = errors.New("duplicate mod id")

	// ErrIndexOutOfRange is returned by [List.Move] for an index outside
	// the list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotInList is returned by [List.MoveTo] for an ID the list does
	// not hold.
	ErrNotInList = errors.New("mod id not in list")
)

// Info is the display metadata carried alongside a mod in a [List]. The
// solver never looks at it.
type Info struct {
	Name        string   `json:"name,omitempty"`
	Path        string   `json:"path,omitempty"`
	Description string   `json:"description,omitempty"`
	Authors     []string `json:"authors,omitempty"`
}

// Entry is one position of a [List].
type Entry struct {
	ID   ID
	Info Info
}

// List is an ordered sequence of unique mod IDs.
//
// A List has no constraint awareness: appending, removing and moving entries
// never re-evaluates rules. Callers rebuild [Issues] once per structural
// edit.
//
// The zero value is an empty list ready to use.
type List struct {
	entries []Entry
	index   map[ID]int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// ListOf returns a list holding ids in order with empty metadata. Duplicate
// IDs after the first occurrence are dropped.
func ListOf(ids ...ID) *List {
	l := NewList()
	for _, id := range ids {
		_ = l.Append(id, Info{})
	}
	return l
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Append adds id at the end of the list. It returns ErrDuplicateID if id is
// already present; the list is unchanged in that case.
func (l *List) Append(id ID, info Info) error {
	if l.Contains(id) {
		return ErrDuplicateID
	}
	if l.index == nil {
		l.index = make(map[ID]int)
	}
	l.index[id] = len(l.entries)
	l.entries = append(l.entries, Entry{ID: id, Info: info})
	return nil
}

// Remove deletes id, shifting later entries up, and returns its metadata.
// The boolean is false when id is not in the list.
func (l *List) Remove(id ID) (Info, bool) {
	i, ok := l.Index(id)
	if !ok {
		return Info{}, false
	}
	info := l.entries[i].Info
	l.entries = slices.Delete(l.entries, i, i+1)
	delete(l.index, id)
	l.reindex(i, len(l.entries))
	return info, true
}

// Index returns the position of id.
func (l *List) Index(id ID) (int, bool) {
	i, ok := l.index[id]
	return i, ok
}

// Contains reports whether id is in the list.
func (l *List) Contains(id ID) bool {
	_, ok := l.index[id]
	return ok
}

// Get returns the metadata of id.
func (l *List) Get(id ID) (Info, bool) {
	i, ok := l.Index(id)
	if !ok {
		return Info{}, false
	}
	return l.entries[i].Info, true
}

// At returns the entry at position i. It panics if i is out of range.
func (l *List) At(i int) Entry { return l.entries[i] }

// Move moves the entry at position from so that it ends up at position to,
// shifting the entries in between by one. Moving an entry down places it
// after the entry that occupied to; moving it up places it before.
func (l *List) Move(from, to int) error {
	n := len(l.entries)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	e := l.entries[from]
	if from < to {
		copy(l.entries[from:to], l.entries[from+1:to+1])
	} else {
		copy(l.entries[to+1:from+1], l.entries[to:from])
	}
	l.entries[to] = e
	l.reindex(min(from, to), max(from, to)+1)
	return nil
}

// MoveTo moves id into the position currently held by the entry at index
// to. It is Move with the source looked up by ID.
func (l *List) MoveTo(id ID, to int) error {
	from, ok := l.Index(id)
	if !ok {
		return ErrNotInList
	}
	return l.Move(from, to)
}

// IDs returns the IDs in order.
func (l *List) IDs() []ID {
	out := make([]ID, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.ID
	}
	return out
}

// Entries returns a copy of the entries in order.
func (l *List) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Clone returns an independent copy of l, for callers that want to try
// edits or a fix without touching the original.
func (l *List) Clone() *List {
	c := &List{
		entries: slices.Clone(l.entries),
		index:   make(map[ID]int, len(l.index)),
	}
	for id, i := range l.index {
		c.index[id] = i
	}
	return c
}

func (l *List) reindex(from, to int) {
	for i := from; i < to; i++ {
		l.index[l.entries[i].ID] = i
	}
}
