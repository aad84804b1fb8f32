package modlist

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
)

// Format identifies the encoding of a rule file.
type Format string

// Supported rule file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the rule file format from the file extension.
// Unknown extensions fall back to TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// rawRuleSet mirrors RuleSet with plain strings so that unknown relation
// names are reported with the offending mod instead of a decoder position.
type rawRuleSet struct {
	StartAnchor bool              `toml:"start_anchor" yaml:"start_anchor"`
	EndAnchor   bool              `toml:"end_anchor" yaml:"end_anchor"`
	Rules       map[string]string `toml:"rules" yaml:"rules"`
}

// DecodeRules decodes a rule file body into rule sets keyed by declaring
// mod. The file is a table per mod:
//
//	["brrainz.harmony"]
//	start_anchor = true
//
//	["author.some_mod"]
//	rules = { "ludeon.rimworld" = "after", "other.mod" = "incompatible" }
//
// Mod IDs are lowercased. Errors carry [apperrors.ErrCodeInvalidRules].
func DecodeRules(data []byte, format Format) (map[ID]*RuleSet, error) {
	raw := make(map[string]rawRuleSet)
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRules, err, "decode yaml rules")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRules, err, "decode toml rules")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRules, "unknown key %q", undecoded[0].String())
		}
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidRules, "unsupported rule format %q", format)
	}

	// Case variants of one ID merge in a fixed order.
	mods := make([]string, 0, len(raw))
	for mod := range raw {
		mods = append(mods, mod)
	}
	slices.Sort(mods)

	out := make(map[ID]*RuleSet, len(raw))
	for _, mod := range mods {
		r := raw[mod]
		if err := apperrors.ValidatePackageID(mod); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRules, err, "declaring mod %q", mod)
		}
		rs := &RuleSet{
			StartAnchor: r.StartAnchor,
			EndAnchor:   r.EndAnchor,
			Rules:       make(map[ID]Relation, len(r.Rules)),
		}
		id := NewID(mod)
		for target, name := range r.Rules {
			rel, err := ParseRelation(name)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRules, err, "%s -> %s", mod, target)
			}
			// A mod cannot be ordered against itself.
			if t := NewID(target); t != id {
				rs.Rules[t] = rel
			}
		}
		if existing, ok := out[id]; ok {
			existing.Merge(rs)
			continue
		}
		out[id] = rs
	}
	return out, nil
}

// DecodeSource decodes data and registers the result under id. On error the
// database is left unchanged.
func (db *RuleDB) DecodeSource(id SourceID, data []byte, format Format) error {
	rules, err := DecodeRules(data, format)
	if err != nil {
		return err
	}
	db.AddSource(id, rules)
	return nil
}
