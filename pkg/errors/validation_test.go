package errors

import (
	"strings"
	"testing"
)

func TestValidatePackageID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid core", "ludeon.rimworld", false},
		{"valid mixed case", "UnlimitedHugs.HugsLib", false},
		{"valid with dash", "brrainz.harmony-fork", false},
		{"valid with underscore", "author.my_mod", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"space", "my mod", true},
		{"slash", "author/mod", true},
		{"backslash", "author\\mod", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPackage) {
				t.Errorf("ValidatePackageID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"absolute", "/home/user/.steam/steam", false},
		{"relative", "rules/community.toml", false},
		{"windows", `C:\Program Files (x86)\Steam`, false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
