package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/loadorder/pkg/modlist"
)

// WriteProfile encodes p as indented JSON and writes it to w.
func WriteProfile(p *Profile, w io.Writer) error {
	out := *p
	if out.Active == nil {
		out.Active = []modlist.ID{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportProfile writes p to a JSON file at path.
// This is a convenience wrapper around [WriteProfile] for file-based output.
func ExportProfile(p *Profile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteProfile(p, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
