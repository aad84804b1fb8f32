package rimworld

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

func TestCheckSavable(t *testing.T) {
	withIssue := modlist.Issues{"a": {"b": modlist.After}}
	tests := []struct {
		name   string
		active *modlist.List
		issues modlist.Issues
		code   apperrors.Code
	}{
		{"ok", modlist.ListOf(modlist.CoreID, "a"), modlist.Issues{}, ""},
		{"missing core", modlist.ListOf("a"), modlist.Issues{}, apperrors.ErrCodeMissingCore},
		{"missing core wins", modlist.ListOf("a"), withIssue, apperrors.ErrCodeMissingCore},
		{"issues", modlist.ListOf(modlist.CoreID, "a"), withIssue, apperrors.ErrCodeUnresolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSavable(tt.active, tt.issues)
			if got := apperrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestSaveModsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ModsConfigFile)
	writeFile(t, path, sampleModsConfig)

	active := modlist.ListOf(modlist.CoreID, "brrainz.harmony")
	if err := SaveModsConfig(path, "ignored", active, modlist.Issues{}); err != nil {
		t.Fatalf("SaveModsConfig: %v", err)
	}
	c, err := ReadModsConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c.ActiveMods, active.IDs()) {
		t.Errorf("ActiveMods = %v", c.ActiveMods)
	}
	if c.Version != "1.5.4063 rev1100" {
		t.Errorf("existing version should be kept, got %q", c.Version)
	}
	if !reflect.DeepEqual(c.KnownExpansions, modlist.IDs("ludeon.rimworld.royalty")) {
		t.Errorf("KnownExpansions = %v", c.KnownExpansions)
	}
}

func TestSaveModsConfigNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Config", ModsConfigFile)
	if err := SaveModsConfig(path, "1.5.4063 rev1100", modlist.ListOf(modlist.CoreID), nil); err != nil {
		t.Fatalf("SaveModsConfig: %v", err)
	}
	c, err := ReadModsConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Version != "1.5.4063 rev1100" {
		t.Errorf("Version = %q", c.Version)
	}
}

func TestSaveModsConfigRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), ModsConfigFile)
	writeFile(t, path, sampleModsConfig)

	err := SaveModsConfig(path, "", modlist.ListOf("brrainz.harmony"), nil)
	if !apperrors.Is(err, apperrors.ErrCodeMissingCore) {
		t.Fatalf("err = %v, want MISSING_CORE", err)
	}
	c, err := ReadModsConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.EqualFold(c.ActiveMods[0].String(), "brrainz.harmony") || len(c.ActiveMods) != 3 {
		t.Errorf("refused save must not touch the file, got %v", c.ActiveMods)
	}
}
