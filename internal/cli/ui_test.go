package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/loadorder/pkg/modlist"
)

func TestDescribeIssue(t *testing.T) {
	tests := []struct {
		rel  modlist.Relation
		want string
	}{
		{modlist.Before, "a.mod must load before b.mod"},
		{modlist.After, "a.mod must load after b.mod"},
		{modlist.Dependency, "a.mod requires b.mod, which is not active"},
		{modlist.Incompatible, "a.mod is incompatible with b.mod"},
	}
	for _, tt := range tests {
		t.Run(tt.rel.String(), func(t *testing.T) {
			got := describeIssue(modlist.Issue{Mod: "a.mod", Target: "b.mod", Relation: tt.rel})
			if got != tt.want {
				t.Errorf("describeIssue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintIssues(t *testing.T) {
	out := captureStdout(t)
	db := modlist.NewRuleDB()
	db.Metadata("z.mod").Set("a.mod", modlist.Incompatible)
	db.Metadata("b.mod").Set("missing.mod", modlist.Dependency)
	issues := modlist.FindIssues(db, modlist.ListOf("a.mod", "b.mod", "z.mod"))

	printIssues(issues)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "b.mod requires missing.mod") {
		t.Errorf("first line = %q, want the b.mod issue", lines[0])
	}
	if !strings.Contains(lines[1], "z.mod is incompatible with a.mod") {
		t.Errorf("second line = %q, want the z.mod issue", lines[1])
	}
}

func TestModTable(t *testing.T) {
	l := modlist.NewList()
	_ = l.Append("brrainz.harmony", modlist.Info{Name: "Harmony"})
	_ = l.Append(modlist.CoreID, modlist.Info{Name: "Core"})

	got := modTable(l, nil)
	for _, want := range []string{"Package ID", "brrainz.harmony", "Harmony", "ludeon.rimworld", "Core", "2"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "brrainz.harmony") > strings.Index(got, "ludeon.rimworld") {
		t.Error("table rows are not in list order")
	}
}

func TestModTableEmpty(t *testing.T) {
	got := modTable(modlist.NewList(), nil)
	if !strings.Contains(got, "Package ID") {
		t.Errorf("empty table should still have headers:\n%s", got)
	}
}
