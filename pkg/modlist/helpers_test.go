package modlist

import (
	"maps"
	"testing"
)

// dbOf builds a database with a single metadata source.
func dbOf(rules map[ID]map[ID]Relation) *RuleDB {
	db := NewRuleDB()
	for mod, rs := range rules {
		set := db.Metadata(mod)
		for target, rel := range rs {
			set.Set(target, rel)
		}
	}
	return db
}

func assertIssues(t *testing.T, got, want Issues) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("issues = %v, want %v", got, want)
	}
	for mod, found := range want {
		if !maps.Equal(got[mod], found) {
			t.Fatalf("issues[%s] = %v, want %v (all: %v)", mod, got[mod], found, got)
		}
	}
}

func assertOrder(t *testing.T, l *List, want ...ID) {
	t.Helper()
	got := l.IDs()
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
