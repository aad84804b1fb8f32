package rimworld

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/beevik/etree"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// ModsConfigFile is the name of the game's load order file.
const ModsConfigFile = "ModsConfig.xml"

// ModsConfigPath returns where the game keeps ModsConfig.xml for the
// current user and operating system.
func ModsConfigPath() string {
	return modsConfigPath(runtime.GOOS, xdg.Home, xdg.ConfigHome)
}

func modsConfigPath(goos, home, configHome string) string {
	var dir string
	switch goos {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "RimWorld", "Config")
	case "windows":
		dir = filepath.Join(home, "AppData", "LocalLow", "Ludeon Studios", "RimWorld by Ludeon Studios", "Config")
	default:
		dir = filepath.Join(configHome, "unity3d", "Ludeon Studios", "RimWorld by Ludeon Studios", "Config")
	}
	return filepath.Join(dir, ModsConfigFile)
}

// ModsConfig is the content of ModsConfig.xml.
//
// The parsed document is kept so that elements this package does not know
// about survive a read/write round trip.
type ModsConfig struct {
	Version         string
	ActiveMods      []modlist.ID
	KnownExpansions []modlist.ID

	doc *etree.Document
}

// NewModsConfig returns an empty config for the given game version.
func NewModsConfig(version string) *ModsConfig {
	return &ModsConfig{Version: version}
}

// ReadModsConfig reads ModsConfig.xml from path.
func ReadModsConfig(path string) (*ModsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "mods config %s", path)
		}
		return nil, err
	}
	c, err := ParseModsConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseModsConfig decodes a ModsConfig.xml document. Package IDs are
// lowercased and duplicates dropped, keeping the first occurrence.
func ParseModsConfig(r io.Reader) (*ModsConfig, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidMetadata, err, "malformed xml")
	}
	root := doc.Root()
	if root == nil || !strings.EqualFold(root.Tag, "ModsConfigData") {
		return nil, apperrors.New(apperrors.ErrCodeInvalidMetadata, "missing ModsConfigData root element")
	}
	return &ModsConfig{
		Version:         text(root, "version"),
		ActiveMods:      ids(child(root, "activeMods")),
		KnownExpansions: ids(child(root, "knownExpansions")),
		doc:             doc,
	}, nil
}

// SetActive replaces the active mods with the order of l.
func (c *ModsConfig) SetActive(l *modlist.List) {
	c.ActiveMods = l.IDs()
}

// WriteTo writes the config as XML, starting with an XML declaration.
func (c *ModsConfig) WriteTo(w io.Writer) (int64, error) {
	return c.document().WriteTo(w)
}

// Write saves the config to path, replacing the file atomically.
func (c *ModsConfig) Write(path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// document syncs the fields into the kept etree document.
func (c *ModsConfig) document() *etree.Document {
	doc := c.doc
	if doc == nil {
		doc = etree.NewDocument()
		doc.CreateElement("ModsConfigData")
		c.doc = doc
	}
	if !hasDeclaration(doc) {
		doc.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))
	}
	root := doc.Root()
	ensureChild(root, "version").SetText(c.Version)
	setItems(ensureChild(root, "activeMods"), c.ActiveMods)
	setItems(ensureChild(root, "knownExpansions"), c.KnownExpansions)
	doc.Indent(2)
	return doc
}

func hasDeclaration(doc *etree.Document) bool {
	return slices.ContainsFunc(doc.Child, func(t etree.Token) bool {
		pi, ok := t.(*etree.ProcInst)
		return ok && pi.Target == "xml"
	})
}

func ensureChild(e *etree.Element, tag string) *etree.Element {
	if c := child(e, tag); c != nil {
		return c
	}
	return e.CreateElement(tag)
}

func setItems(e *etree.Element, list []modlist.ID) {
	for _, c := range e.ChildElements() {
		e.RemoveChild(c)
	}
	for _, id := range list {
		e.CreateElement("li").SetText(id.String())
	}
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
