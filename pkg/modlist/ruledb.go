package modlist

import "slices"

// SourceID names a rule source in a [RuleDB]. It is either [MetadataSource]
// or the location of an external rule file (see [RuleFile]).
type SourceID struct {
	// Path is the rule file location. Empty for MetadataSource.
	Path string
}

// MetadataSource is the source holding relations derived from the mods' own
// metadata (About.xml).
var MetadataSource = SourceID{}

// RuleFile returns the SourceID for a rule file at path.
func RuleFile(path string) SourceID {
	return SourceID{Path: path}
}

// IsMetadata reports whether s is the metadata source.
func (s SourceID) IsMetadata() bool { return s.Path == "" }

// String returns "metadata" for the metadata source and the path otherwise.
func (s SourceID) String() string {
	if s.IsMetadata() {
		return "metadata"
	}
	return s.Path
}

// RuleDB is an ordered collection of named rule sources.
//
// Each source maps declaring mods to their [RuleSet]. Sources are kept apart
// for provenance but [FindIssues] consults them as a union: a relation
// declared by any source is binding. Re-adding a source replaces only that
// source's rule sets.
//
// The zero value is not usable - use [NewRuleDB].
type RuleDB struct {
	order   []SourceID
	sources map[SourceID]map[ID]*RuleSet
}

// NewRuleDB returns an empty database.
func NewRuleDB() *RuleDB {
	return &RuleDB{sources: make(map[SourceID]map[ID]*RuleSet)}
}

// AddSource inserts or replaces the rule sets registered under id. A
// replaced source keeps its original position in the source order. The
// rules map is owned by the database afterwards.
func (db *RuleDB) AddSource(id SourceID, rules map[ID]*RuleSet) {
	if rules == nil {
		rules = make(map[ID]*RuleSet)
	}
	if _, ok := db.sources[id]; !ok {
		db.order = append(db.order, id)
	}
	db.sources[id] = rules
}

// Metadata returns the rule set declared by mod under [MetadataSource],
// creating the source and the rule set if needed. Loaders merge the
// relations they read from a mod's metadata into the returned value.
func (db *RuleDB) Metadata(mod ID) *RuleSet {
	src, ok := db.sources[MetadataSource]
	if !ok {
		src = make(map[ID]*RuleSet)
		db.AddSource(MetadataSource, src)
	}
	rs, ok := src[mod]
	if !ok {
		rs = NewRuleSet()
		src[mod] = rs
	}
	return rs
}

// Sources returns the source IDs in insertion order.
func (db *RuleDB) Sources() []SourceID {
	return slices.Clone(db.order)
}

// Rules returns the rule sets of source id, or nil if it is unknown. The
// returned map is shared with the database.
func (db *RuleDB) Rules(id SourceID) map[ID]*RuleSet {
	return db.sources[id]
}

// Len returns the number of sources.
func (db *RuleDB) Len() int { return len(db.order) }

// Declared returns the union of the rule sets mod declares across all
// sources, merged in source order. It returns nil when no source mentions
// mod. Loaders use it to inspect what they registered; the solver reads
// the sources directly.
func (db *RuleDB) Declared(mod ID) *RuleSet {
	var out *RuleSet
	for _, src := range db.order {
		rs, ok := db.sources[src][mod]
		if !ok {
			continue
		}
		if out == nil {
			out = NewRuleSet()
		}
		out.Merge(rs)
	}
	return out
}

// each calls fn for every (source, declaring mod, rule set) in source order.
// Declaring mods within one source are visited in ascending ID order.
func (db *RuleDB) each(fn func(src SourceID, mod ID, rs *RuleSet)) {
	for _, src := range db.order {
		rules := db.sources[src]
		for _, mod := range sortedKeys(rules) {
			fn(src, mod, rules[mod])
		}
	}
}

func sortedKeys[V any](m map[ID]V) []ID {
	keys := make([]ID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
