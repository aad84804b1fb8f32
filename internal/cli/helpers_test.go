package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/loadorder/pkg/config"
	"github.com/matzehuels/loadorder/pkg/modlist"
	"github.com/matzehuels/loadorder/pkg/rimworld"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// captureStdout redirects command output to a buffer for the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := captureStdout(t)
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

type fixture struct {
	game    string
	modsCfg string
	cfgFile string
}

const (
	coreAbout = `<ModMetaData>
  <packageId>Ludeon.RimWorld</packageId>
</ModMetaData>`

	harmonyAbout = `<ModMetaData>
  <name>Harmony</name>
  <packageId>brrainz.harmony</packageId>
  <supportedVersions><li>1.5</li></supportedVersions>
  <loadBefore><li>Ludeon.RimWorld</li></loadBefore>
</ModMetaData>`

	uiAbout = `<ModMetaData>
  <name>UI Mod</name>
  <packageId>ui.mod</packageId>
  <supportedVersions><li>1.5</li></supportedVersions>
  <modDependencies>
    <li><packageId>brrainz.harmony</packageId></li>
  </modDependencies>
</ModMetaData>`
)

// newFixture creates a RimWorld 1.5 install with core, Harmony and a mod
// that depends on Harmony, a ModsConfig.xml activating active, and a
// config file pointing at both.
func newFixture(t *testing.T, active ...string) fixture {
	t.Helper()
	t.Setenv(config.EnvGamePath, "")
	t.Setenv(config.EnvSteamPath, "")
	t.Setenv(config.EnvNoCache, "")

	root := t.TempDir()
	f := fixture{
		game:    filepath.Join(root, "RimWorld"),
		modsCfg: filepath.Join(root, "Config", rimworld.ModsConfigFile),
		cfgFile: filepath.Join(root, "config.toml"),
	}
	writeFile(t, filepath.Join(f.game, rimworld.VersionFile), "1.5.4063 rev1100\n")
	writeFile(t, rimworld.AboutPath(filepath.Join(f.game, "Data", "Core")), coreAbout)
	writeFile(t, rimworld.AboutPath(filepath.Join(f.game, "Mods", "Harmony")), harmonyAbout)
	writeFile(t, rimworld.AboutPath(filepath.Join(f.game, "Mods", "UI")), uiAbout)

	var items bytes.Buffer
	for _, id := range active {
		fmt.Fprintf(&items, "    <li>%s</li>\n", id)
	}
	writeFile(t, f.modsCfg, fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<ModsConfigData>
  <version>1.5.4063 rev1100</version>
  <activeMods>
%s  </activeMods>
</ModsConfigData>
`, items.String()))

	writeFile(t, f.cfgFile, fmt.Sprintf("game_path = %q\nmodsconfig_path = %q\nno_cache = true\n", f.game, f.modsCfg))
	return f
}

func (f fixture) activeMods(t *testing.T) []modlist.ID {
	t.Helper()
	mc, err := rimworld.ReadModsConfig(f.modsCfg)
	if err != nil {
		t.Fatalf("ReadModsConfig: %v", err)
	}
	return mc.ActiveMods
}

// testSession builds a session without touching the disk: core, b.mod and
// a.mod are active, b.mod must load after a.mod, c.mod is inactive.
func testSession(t *testing.T) *session {
	t.Helper()
	db := modlist.NewRuleDB()
	db.Metadata("b.mod").Set("a.mod", modlist.After)
	cat := &rimworld.Catalog{
		Version:  semver.MustParse("1.5.4063"),
		Release:  "1.5",
		Mods:     map[modlist.ID]*rimworld.Mod{},
		Active:   modlist.ListOf(modlist.CoreID, "b.mod", "a.mod"),
		Inactive: modlist.ListOf("c.mod"),
		Rules:    db,
	}
	s := &session{
		cfg:     config.Default(),
		cat:     cat,
		modsCfg: filepath.Join(t.TempDir(), rimworld.ModsConfigFile),
	}
	s.refresh()
	return s
}
