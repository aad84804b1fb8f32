package rimworld

import (
	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// CheckSavable reports why active must not be written to ModsConfig.xml:
// the game refuses to start without Core, and a list with known issues is
// never persisted.
func CheckSavable(active *modlist.List, issues modlist.Issues) error {
	if !active.Contains(modlist.CoreID) {
		return apperrors.New(apperrors.ErrCodeMissingCore,
			"your mod list must contain the Core module (%s)", modlist.CoreID)
	}
	if n := issues.Len(); n > 0 {
		return apperrors.New(apperrors.ErrCodeUnresolved,
			"your mod list has %d unresolved issue(s) which must be fixed before saving", n)
	}
	return nil
}

// SaveModsConfig writes the order of active into the ModsConfig.xml at
// path. The existing file is updated in place so the game version, known
// expansions and unknown elements are kept; a new file is created with
// version when none exists.
func SaveModsConfig(path, version string, active *modlist.List, issues modlist.Issues) error {
	if err := CheckSavable(active, issues); err != nil {
		return err
	}
	cfg, err := ReadModsConfig(path)
	if apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		cfg, err = NewModsConfig(version), nil
	}
	if err != nil {
		return err
	}
	cfg.SetActive(active)
	return cfg.Write(path)
}
