package rimworld

import (
	"os"
	"path/filepath"
	"testing"
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

// fakeGame creates a game directory for version 1.5 and returns its path.
func fakeGame(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, VersionFile), "1.5.4063 rev1100\n")
	if err := os.MkdirAll(filepath.Join(dir, "Data"), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func addMod(t *testing.T, folder, name, about string) string {
	t.Helper()
	dir := filepath.Join(folder, name)
	writeFile(t, AboutPath(dir), about)
	return dir
}

const coreAbout = `<?xml version="1.0" encoding="utf-8"?>
<ModMetaData>
  <packageId>Ludeon.RimWorld</packageId>
  <description>The core game.</description>
</ModMetaData>`

const harmonyAbout = `<?xml version="1.0" encoding="utf-8"?>
<ModMetaData>
  <name>Harmony</name>
  <author>Andreas Pardeike</author>
  <packageId>brrainz.harmony</packageId>
  <supportedVersions>
    <li>1.4</li>
    <li>1.5</li>
  </supportedVersions>
  <loadBefore>
    <li>Ludeon.RimWorld</li>
  </loadBefore>
</ModMetaData>`

const uiAbout = `<?xml version="1.0" encoding="utf-8"?>
<ModMetaData>
  <name>UI Mod</name>
  <packageId>ui.mod</packageId>
  <supportedVersions><li>1.5</li></supportedVersions>
  <modDependencies>
    <li>
      <packageId>brrainz.harmony</packageId>
      <displayName>Harmony</displayName>
    </li>
  </modDependencies>
</ModMetaData>`

const oldAbout = `<ModMetaData>
  <name>Old Mod</name>
  <packageId>old.mod</packageId>
  <supportedVersions><li>1.0</li></supportedVersions>
</ModMetaData>`
