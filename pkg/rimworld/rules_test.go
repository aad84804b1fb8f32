package rimworld

import (
	"path/filepath"
	"testing"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

func TestLoadRuleFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "community.toml")
	writeFile(t, tomlPath, `
["Brrainz.Harmony"]
start_anchor = true

["ui.mod".rules]
"brrainz.harmony" = "after"
`)
	yamlPath := filepath.Join(dir, "local.yaml")
	writeFile(t, yamlPath, `
ui.mod:
  rules:
    other.mod: incompatible
`)

	db := modlist.NewRuleDB()
	if err := LoadRuleFile(db, tomlPath); err != nil {
		t.Fatalf("toml: %v", err)
	}
	if err := LoadRuleFile(db, yamlPath); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if db.Len() != 2 {
		t.Fatalf("Len = %d, want 2", db.Len())
	}
	rs := db.Declared("ui.mod")
	if rs.Rules["brrainz.harmony"] != modlist.After || rs.Rules["other.mod"] != modlist.Incompatible {
		t.Errorf("ui.mod rules = %v", rs.Rules)
	}
	if !db.Rules(modlist.RuleFile(tomlPath))["brrainz.harmony"].StartAnchor {
		t.Error("start_anchor should be decoded")
	}
}

func TestLoadRuleFileErrors(t *testing.T) {
	dir := t.TempDir()
	db := modlist.NewRuleDB()

	if err := LoadRuleFile(db, filepath.Join(dir, "missing.toml")); !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("missing err = %v", err)
	}
	if err := LoadRuleFile(db, ""); !apperrors.Is(err, apperrors.ErrCodeInvalidPath) {
		t.Errorf("empty path err = %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, `["a".rules]
"b" = "sideways"
`)
	if err := LoadRuleFile(db, bad); !apperrors.Is(err, apperrors.ErrCodeInvalidRules) {
		t.Errorf("bad relation err = %v", err)
	}
	if db.Len() != 0 {
		t.Error("failed loads must leave the database unchanged")
	}
}

func TestLoadExampleRuleFiles(t *testing.T) {
	db := modlist.NewRuleDB()
	for _, name := range []string{"community.toml", "combat.yaml"} {
		if err := LoadRuleFile(db, filepath.Join("..", "..", "examples", "rules", name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if rs := db.Declared("brrainz.harmony"); !rs.StartAnchor {
		t.Error("harmony should be start anchored")
	}
	if rs := db.Declared("ceteam.combatextended"); rs.Rules["brrainz.harmony"] != modlist.Dependency {
		t.Errorf("combat extended rules = %v", rs.Rules)
	}
}
