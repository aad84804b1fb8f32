package rimworld

import (
	"os"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// LoadRuleFile reads a TOML or YAML rule file and registers it as a source
// of db, keyed by its path. A file that fails to decode leaves db unchanged.
func LoadRuleFile(db *modlist.RuleDB, path string) error {
	if err := apperrors.ValidatePath(path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "rule file %s", path)
		}
		return err
	}
	return db.DecodeSource(modlist.RuleFile(path), data, modlist.FormatFromPath(path))
}
