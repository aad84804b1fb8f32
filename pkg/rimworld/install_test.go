package rimworld

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
)

func TestValidGameDir(t *testing.T) {
	game := fakeGame(t)
	if !ValidGameDir(game) {
		t.Error("fake game should be valid")
	}
	if ValidGameDir(t.TempDir()) {
		t.Error("empty dir should not be a game dir")
	}
	if ValidGameDir(filepath.Join(game, VersionFile)) {
		t.Error("a file should not be a game dir")
	}
}

func TestValidSteamPrefix(t *testing.T) {
	steam := t.TempDir()
	if ValidSteamPrefix(steam) {
		t.Error("empty dir should not be a steam prefix")
	}
	if err := os.MkdirAll(filepath.Join(steam, "steamapps"), 0o755); err != nil {
		t.Fatal(err)
	}
	if !ValidSteamPrefix(steam) {
		t.Error("dir with steamapps should be a steam prefix")
	}
}

func TestInstallValidate(t *testing.T) {
	game := fakeGame(t)
	tests := []struct {
		name string
		in   Install
		code apperrors.Code
	}{
		{"ok", Install{GameDir: game}, ""},
		{"unset", Install{}, apperrors.ErrCodeInvalidConfig},
		{"not a game", Install{GameDir: t.TempDir()}, apperrors.ErrCodeInvalidPath},
		{"bad steam", Install{GameDir: game, SteamDir: t.TempDir()}, apperrors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if got := apperrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestScanDirs(t *testing.T) {
	game := fakeGame(t)
	steam := t.TempDir()
	extra := t.TempDir()

	in := Install{GameDir: game, SteamDir: steam, ModFolders: []string{extra}}
	want := []string{filepath.Join(game, "Data"), extra}
	if got := in.ScanDirs(); !reflect.DeepEqual(got, want) {
		t.Errorf("ScanDirs = %v, want %v", got, want)
	}

	for _, d := range []string{filepath.Join(game, "Mods"), WorkshopDir(steam)} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	want = []string{filepath.Join(game, "Data"), filepath.Join(game, "Mods"), WorkshopDir(steam), extra}
	if got := in.ScanDirs(); !reflect.DeepEqual(got, want) {
		t.Errorf("ScanDirs = %v, want %v", got, want)
	}
}
