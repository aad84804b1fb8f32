package rimworld

import (
	"os"
	"path/filepath"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
)

// WorkshopAppID is RimWorld's Steam application ID.
const WorkshopAppID = "294100"

// Install describes where mods live on disk.
type Install struct {
	// GameDir is the game installation, holding Version.txt, Data/ and Mods/.
	GameDir string
	// SteamDir is an optional Steam prefix whose workshop folder is scanned.
	SteamDir string
	// ModFolders are extra directories whose subdirectories are mods.
	ModFolders []string
}

// ValidGameDir reports whether dir looks like a RimWorld installation.
func ValidGameDir(dir string) bool {
	return isDir(dir) && isFile(filepath.Join(dir, VersionFile)) && isDir(filepath.Join(dir, "Data"))
}

// ValidSteamPrefix reports whether dir looks like a Steam prefix.
func ValidSteamPrefix(dir string) bool {
	return isDir(dir) && isDir(filepath.Join(dir, "steamapps"))
}

// WorkshopDir returns the RimWorld workshop content folder of a Steam prefix.
func WorkshopDir(steamDir string) string {
	return filepath.Join(steamDir, "steamapps", "workshop", "content", WorkshopAppID)
}

// Validate checks the game and Steam paths.
func (in Install) Validate() error {
	if in.GameDir == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "game path is not set")
	}
	if err := apperrors.ValidatePath(in.GameDir); err != nil {
		return err
	}
	if !ValidGameDir(in.GameDir) {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "%s is not a valid RimWorld installation", in.GameDir)
	}
	if in.SteamDir != "" && !ValidSteamPrefix(in.SteamDir) {
		return apperrors.New(apperrors.ErrCodeInvalidPath, "%s is not a valid Steam prefix", in.SteamDir)
	}
	return nil
}

// ScanDirs lists the folders to look for mods in: the base game data, the
// local Mods folder, the workshop folder when present, then the extra
// folders. Folders that do not exist are dropped except for the extras.
func (in Install) ScanDirs() []string {
	var dirs []string
	for _, d := range []string{filepath.Join(in.GameDir, "Data"), filepath.Join(in.GameDir, "Mods")} {
		if isDir(d) {
			dirs = append(dirs, d)
		}
	}
	if in.SteamDir != "" {
		if w := WorkshopDir(in.SteamDir); isDir(w) {
			dirs = append(dirs, w)
		}
	}
	return append(dirs, in.ModFolders...)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
