package modlist

import "strings"

// ID is a mod package identifier.
//
// IDs are case-folded to lower case when they are created with [NewID] or
// decoded from text, so equality, ordering and map lookups are
// case-insensitive. An ID is never re-normalized after creation.
type ID string

// CoreID is the package ID of the base game data. A load order without it
// cannot be saved.
const CoreID ID = "ludeon.rimworld"

// NewID returns the normalized ID for s.
func NewID(s string) ID {
	return ID(strings.ToLower(strings.TrimSpace(s)))
}

// String returns the ID as a plain string.
func (id ID) String() string { return string(id) }

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It lowercases the
// decoded value, which also applies to map keys in TOML, YAML and JSON.
func (id *ID) UnmarshalText(text []byte) error {
	*id = NewID(string(text))
	return nil
}

// IDs converts raw strings to normalized IDs, preserving order.
func IDs(raw ...string) []ID {
	out := make([]ID, len(raw))
	for i, s := range raw {
		out[i] = NewID(s)
	}
	return out
}
