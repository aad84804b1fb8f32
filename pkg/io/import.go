package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// ReadProfile decodes a JSON profile from r.
//
// ReadProfile returns an error with code INVALID_INPUT if the JSON is
// malformed, "active" is missing, an ID is not a valid package ID, or an ID
// appears more than once across both lists. ReadProfile does not close r.
func ReadProfile(r io.Reader) (*Profile, error) {
	var raw struct {
		Version  string    `json:"version"`
		Active   *[]string `json:"active"`
		Inactive []string  `json:"inactive"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode profile")
	}
	if raw.Active == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "profile has no active list")
	}

	seen := make(map[modlist.ID]bool)
	convert := func(list []string) ([]modlist.ID, error) {
		out := make([]modlist.ID, 0, len(list))
		for _, s := range list {
			if err := apperrors.ValidatePackageID(s); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "profile entry %q", s)
			}
			id := modlist.NewID(s)
			if seen[id] {
				return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "%s listed twice", id)
			}
			seen[id] = true
			out = append(out, id)
		}
		return out, nil
	}

	p := &Profile{Version: raw.Version}
	var err error
	if p.Active, err = convert(*raw.Active); err != nil {
		return nil, err
	}
	if len(raw.Inactive) > 0 {
		if p.Inactive, err = convert(raw.Inactive); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ImportProfile reads a JSON profile file at path.
//
// ImportProfile returns the same validation errors as [ReadProfile]; a
// missing file is reported with code FILE_NOT_FOUND.
func ImportProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "profile %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadProfile(f)
}
