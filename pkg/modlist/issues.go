package modlist

import (
	"maps"
	"slices"
)

// Issues records every currently violated relation of an active list,
// keyed by declaring mod and then by target.
//
// Issues is derived data: it is either empty or a complete recomputation by
// [FindIssues] / [Issues.Rebuild]. Any edit of the list that is not followed
// by a rebuild leaves it stale.
type Issues map[ID]map[ID]Relation

// Issue is a single violated relation.
type Issue struct {
	Mod      ID
	Target   ID
	Relation Relation
}

// FindIssues returns the issues of list l against db.
func FindIssues(db *RuleDB, l *List) Issues {
	issues := make(Issues)
	issues.Rebuild(db, l)
	return issues
}

// Rebuild clears c and recomputes it from l and db.
//
// For every source and every declaring mod present in l:
//   - each Dependency target is first recorded as missing;
//   - each relation whose target is also in l is resolved by position:
//     Before is violated when the mod loads after the target, After when it
//     loads before it, a present Dependency clears the missing entry and is
//     then checked as After, and Incompatible is always violated.
//
// Declaring mods left without issues are dropped.
func (c Issues) Rebuild(db *RuleDB, l *List) {
	clear(c)

	db.each(func(_ SourceID, mod ID, rs *RuleSet) {
		pos, ok := l.Index(mod)
		if !ok {
			return
		}

		found := c[mod]
		if found == nil {
			found = make(map[ID]Relation)
			c[mod] = found
		}

		for target, rel := range rs.Rules {
			if rel == Dependency {
				found[target] = Dependency
			}
		}

		for target, rel := range rs.Rules {
			targetPos, ok := l.Index(target)
			if !ok {
				continue
			}
			switch rel {
			case Before:
				if pos > targetPos {
					found[target] = Before
				}
			case After:
				if pos < targetPos {
					found[target] = After
				}
			case Dependency:
				delete(found, target)
				if pos < targetPos {
					found[target] = After
				}
			case Incompatible:
				found[target] = Incompatible
			}
		}
	})

	maps.DeleteFunc(c, func(_ ID, found map[ID]Relation) bool {
		return len(found) == 0
	})
}

// Len returns the number of violated relations.
func (c Issues) Len() int {
	n := 0
	for _, found := range c {
		n += len(found)
	}
	return n
}

// Empty reports whether no relation is violated.
func (c Issues) Empty() bool { return len(c) == 0 }

// For returns the issues declared by mod, sorted by target.
func (c Issues) For(mod ID) []Issue {
	found := c[mod]
	out := make([]Issue, 0, len(found))
	for _, target := range sortedKeys(found) {
		out = append(out, Issue{Mod: mod, Target: target, Relation: found[target]})
	}
	return out
}

// Sorted returns all issues ordered by declaring mod, then target.
func (c Issues) Sorted() []Issue {
	out := make([]Issue, 0, c.Len())
	for _, mod := range sortedKeys(c) {
		out = append(out, c.For(mod)...)
	}
	return out
}

// first returns the issue of mod with the smallest target ID. This is the
// issue autofix repairs first when a mod has several.
func (c Issues) first(mod ID) (Issue, bool) {
	found := c[mod]
	if len(found) == 0 {
		return Issue{}, false
	}
	target := slices.Min(slices.Collect(maps.Keys(found)))
	return Issue{Mod: mod, Target: target, Relation: found[target]}, true
}
