package errors

import (
	"strings"
	"unicode"
)

// maxPackageIDLength bounds package IDs read from metadata and profiles.
const maxPackageIDLength = 256

// ValidatePackageID validates a mod package ID as it appears in About.xml,
// ModsConfig.xml or a rule file.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - No path separators
//   - Maximum length of 256 characters
//
// Case is not checked; IDs are case-folded when they are converted to
// [modlist.ID].
func ValidatePackageID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPackage, "package id cannot be empty")
	}

	if len(id) > maxPackageIDLength {
		return New(ErrCodeInvalidPackage, "package id too long (max %d characters)", maxPackageIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPackage, "package id %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidPackage, "package id %q contains path separators", id)
	}

	return nil
}

// ValidatePath validates a user-supplied filesystem path (game directory,
// mod folder, rule file).
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
