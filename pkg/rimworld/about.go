package rimworld

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/beevik/etree"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// AboutPath returns the About.xml location inside a mod directory.
func AboutPath(modDir string) string {
	return filepath.Join(modDir, "About", "About.xml")
}

// Dependency is one entry of modDependencies.
type Dependency struct {
	PackageID        modlist.ID `json:"package_id"`
	DisplayName      string     `json:"display_name,omitempty"`
	SteamWorkshopURL string     `json:"steam_workshop_url,omitempty"`
}

// About is the decoded content of a mod's About.xml.
//
// Base game data (Core and the expansions) omits name and
// supportedVersions; both are optional here. The *ByVersion maps are keyed
// by release ("1.5").
type About struct {
	Name              string     `json:"name,omitempty"`
	Authors           []string   `json:"authors,omitempty"`
	Description       string     `json:"description,omitempty"`
	SupportedVersions []string   `json:"supported_versions,omitempty"`
	PackageID         modlist.ID `json:"package_id"`

	LoadBefore          []modlist.ID            `json:"load_before,omitempty"`
	LoadBeforeByVersion map[string][]modlist.ID `json:"load_before_by_version,omitempty"`
	ForceLoadBefore     []modlist.ID            `json:"force_load_before,omitempty"`

	LoadAfter          []modlist.ID            `json:"load_after,omitempty"`
	LoadAfterByVersion map[string][]modlist.ID `json:"load_after_by_version,omitempty"`
	ForceLoadAfter     []modlist.ID            `json:"force_load_after,omitempty"`

	Dependencies          []Dependency            `json:"dependencies,omitempty"`
	DependenciesByVersion map[string][]Dependency `json:"dependencies_by_version,omitempty"`

	IncompatibleWith          []modlist.ID            `json:"incompatible_with,omitempty"`
	IncompatibleWithByVersion map[string][]modlist.ID `json:"incompatible_with_by_version,omitempty"`
}

// ReadAbout reads About/About.xml from modDir.
func ReadAbout(modDir string) (*About, error) {
	path := AboutPath(modDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "no About.xml in %s", modDir)
		}
		return nil, err
	}
	a, err := ParseAbout(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// ParseAbout decodes an About.xml document. Element names are matched
// case-insensitively since hand written files vary (packageId, packageID).
// A missing packageId is an error; everything else is optional.
func ParseAbout(r io.Reader) (*About, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidMetadata, err, "malformed xml")
	}
	root := doc.Root()
	if root == nil || !strings.EqualFold(root.Tag, "ModMetaData") {
		return nil, apperrors.New(apperrors.ErrCodeInvalidMetadata, "missing ModMetaData root element")
	}

	a := &About{
		Name:        text(root, "name"),
		Description: text(root, "description"),
		PackageID:   modlist.NewID(text(root, "packageId")),
	}
	if a.PackageID == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidMetadata, "missing packageId")
	}

	var authors []string
	for _, name := range strings.Split(text(root, "author"), ",") {
		authors = append(authors, strings.TrimSpace(name))
	}
	authors = append(authors, items(child(root, "authors"))...)
	a.Authors = uniqueStrings(authors)

	for _, raw := range items(child(root, "supportedVersions")) {
		if rel, ok := normalizeRelease(raw); ok && !slices.Contains(a.SupportedVersions, rel) {
			a.SupportedVersions = append(a.SupportedVersions, rel)
		}
	}

	a.LoadBefore = ids(child(root, "loadBefore"))
	a.LoadBeforeByVersion = idsByVersion(child(root, "loadBeforeByVersion"))
	a.ForceLoadBefore = ids(child(root, "forceLoadBefore"))
	a.LoadAfter = ids(child(root, "loadAfter"))
	a.LoadAfterByVersion = idsByVersion(child(root, "loadAfterByVersion"))
	a.ForceLoadAfter = ids(child(root, "forceLoadAfter"))
	a.Dependencies = dependencies(child(root, "modDependencies"))
	a.IncompatibleWith = ids(child(root, "incompatibleWith"))
	a.IncompatibleWithByVersion = idsByVersion(child(root, "incompatibleWithByVersion"))

	if byVersion := child(root, "modDependenciesByVersion"); byVersion != nil {
		a.DependenciesByVersion = make(map[string][]Dependency)
		for _, ve := range byVersion.ChildElements() {
			if rel, ok := normalizeRelease(ve.Tag); ok {
				a.DependenciesByVersion[rel] = append(a.DependenciesByVersion[rel], dependencies(ve)...)
			}
		}
	}
	return a, nil
}

// Supports reports whether the mod can run on release. Mods that declare no
// supported versions (base game data) support every release.
func (a *About) Supports(release string) bool {
	if len(a.SupportedVersions) == 0 {
		return true
	}
	return slices.Contains(a.SupportedVersions, release)
}

// LoadRules merges the relations the mod declares for release into the
// metadata source of db. The mod's RuleSet is created even when it does not
// support release, in which case it stays empty.
//
// Lists are applied in a fixed order and a later list wins when a target
// appears twice: loadBefore, forceLoadBefore, loadAfter, forceLoadAfter,
// modDependencies, incompatibleWith, each followed by its *ByVersion entry.
func (a *About) LoadRules(release string, db *modlist.RuleDB) {
	rs := db.Metadata(a.PackageID)
	if !a.Supports(release) {
		return
	}
	set := func(targets []modlist.ID, rel modlist.Relation) {
		for _, t := range targets {
			if t != a.PackageID {
				rs.Set(t, rel)
			}
		}
	}
	set(a.LoadBefore, modlist.Before)
	set(a.LoadBeforeByVersion[release], modlist.Before)
	set(a.ForceLoadBefore, modlist.Before)
	set(a.LoadAfter, modlist.After)
	set(a.LoadAfterByVersion[release], modlist.After)
	set(a.ForceLoadAfter, modlist.After)
	set(dependencyIDs(a.Dependencies), modlist.Dependency)
	set(dependencyIDs(a.DependenciesByVersion[release]), modlist.Dependency)
	set(a.IncompatibleWith, modlist.Incompatible)
	set(a.IncompatibleWithByVersion[release], modlist.Incompatible)
}

// Info returns the display metadata carried in the mod lists.
func (a *About) Info(path string) modlist.Info {
	name := a.Name
	if name == "" {
		name = a.PackageID.String()
	}
	return modlist.Info{
		Name:        name,
		Path:        path,
		Description: a.Description,
		Authors:     slices.Clone(a.Authors),
	}
}

func child(e *etree.Element, tag string) *etree.Element {
	if e == nil {
		return nil
	}
	for _, c := range e.ChildElements() {
		if strings.EqualFold(c.Tag, tag) {
			return c
		}
	}
	return nil
}

func text(e *etree.Element, tag string) string {
	if c := child(e, tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// items returns the trimmed, non-empty text of every <li> under e.
func items(e *etree.Element) []string {
	if e == nil {
		return nil
	}
	var out []string
	for _, li := range e.ChildElements() {
		if !strings.EqualFold(li.Tag, "li") {
			continue
		}
		if s := strings.TrimSpace(li.Text()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func ids(e *etree.Element) []modlist.ID {
	raw := items(e)
	if len(raw) == 0 {
		return nil
	}
	out := make([]modlist.ID, 0, len(raw))
	for _, s := range raw {
		if id := modlist.NewID(s); !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// idsByVersion decodes <v1.4><li>..</li></v1.4> blocks.
func idsByVersion(e *etree.Element) map[string][]modlist.ID {
	if e == nil {
		return nil
	}
	out := make(map[string][]modlist.ID)
	for _, ve := range e.ChildElements() {
		if rel, ok := normalizeRelease(ve.Tag); ok {
			out[rel] = append(out[rel], ids(ve)...)
		}
	}
	return out
}

func dependencies(e *etree.Element) []Dependency {
	if e == nil {
		return nil
	}
	var out []Dependency
	for _, li := range e.ChildElements() {
		if !strings.EqualFold(li.Tag, "li") {
			continue
		}
		d := Dependency{
			PackageID:   modlist.NewID(text(li, "packageId")),
			DisplayName: text(li, "displayName"),
		}
		if d.PackageID == "" {
			continue
		}
		if raw := text(li, "steamWorkshopUrl"); raw != "" {
			// broken links are common and never fatal
			if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
				d.SteamWorkshopURL = u.String()
			}
		}
		out = append(out, d)
	}
	return out
}

func dependencyIDs(deps []Dependency) []modlist.ID {
	out := make([]modlist.ID, len(deps))
	for i, d := range deps {
		out[i] = d.PackageID
	}
	return out
}

func uniqueStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
