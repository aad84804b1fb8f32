package modlist

import (
	"fmt"
	"strings"
)

// Relation is a directed constraint a mod declares about another mod.
type Relation int

const (
	// Before requires the declaring mod to load before the target.
	Before Relation = iota
	// After requires the declaring mod to load after the target.
	After
	// Dependency requires the target to be active. When it is, the
	// dependency degrades to an After constraint.
	Dependency
	// Incompatible forbids both mods from being active together.
	Incompatible
)

var relationNames = [...]string{
	Before:       "before",
	After:        "after",
	Dependency:   "dependency",
	Incompatible: "incompatible",
}

// String returns the lower-case name used in rule files.
func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("relation(%d)", int(r))
	}
	return relationNames[r]
}

// ParseRelation parses a relation name. Matching is case-insensitive and
// accepts "incompatibility" as an alias of "incompatible".
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before":
		return Before, nil
	case "after":
		return After, nil
	case "dependency":
		return Dependency, nil
	case "incompatible", "incompatibility":
		return Incompatible, nil
	}
	return 0, fmt.Errorf("unknown relation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Relation) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(relationNames) {
		return nil, fmt.Errorf("unknown relation %d", int(r))
	}
	return []byte(relationNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Relation) UnmarshalText(text []byte) error {
	rel, err := ParseRelation(string(text))
	if err != nil {
		return err
	}
	*r = rel
	return nil
}
