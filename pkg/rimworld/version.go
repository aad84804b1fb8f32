package rimworld

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
)

// VersionFile is the file in the game directory holding the build version.
const VersionFile = "Version.txt"

// ParseGameVersion parses the contents of Version.txt, e.g.
// "1.5.4063 rev1100". Only the first whitespace separated token is used.
func ParseGameVersion(text string) (*semver.Version, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidMetadata, "empty game version")
	}
	v, err := semver.NewVersion(fields[0])
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidMetadata, err, "parse game version %q", fields[0])
	}
	return v, nil
}

// ReadGameVersion reads and parses Version.txt from gameDir.
func ReadGameVersion(gameDir string) (*semver.Version, error) {
	path := filepath.Join(gameDir, VersionFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "game version file %s", path)
		}
		return nil, err
	}
	return ParseGameVersion(string(data))
}

// Release returns the major.minor form of v, the granularity mods declare
// support at.
func Release(v *semver.Version) string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// normalizeRelease turns a declared version such as "1.4", " v1.4 " or
// "1.4.3901" into its release. ok is false for unparsable input.
func normalizeRelease(s string) (string, bool) {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return Release(v), true
}
