// Package config loads and saves the loadorder settings file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/loadorder/config.toml by
// default (see [DefaultPath]):
//
//	game_path = "/games/RimWorld"
//	steam_path = "~/.local/share/Steam"
//	mod_folders = ["/srv/rimworld/mods"]
//	rule_files = ["~/rimworld/community-rules.toml"]
//	anchors = true
//
// A missing file yields [Default]. LOADORDER_GAME_PATH, LOADORDER_STEAM_PATH
// and LOADORDER_NO_CACHE override the file when set.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/rimworld"
)

// Environment variables that override the file.
const (
	EnvGamePath  = "LOADORDER_GAME_PATH"
	EnvSteamPath = "LOADORDER_STEAM_PATH"
	EnvNoCache   = "LOADORDER_NO_CACHE"
)

// Config holds the user settings.
type Config struct {
	GamePath       string   `toml:"game_path"`
	SteamPath      string   `toml:"steam_path"`
	ModFolders     []string `toml:"mod_folders"`
	RuleFiles      []string `toml:"rule_files"`
	ModsConfigPath string   `toml:"modsconfig_path"`
	// Anchors enables pinning of start/end anchored mods before autofix.
	Anchors bool `toml:"anchors"`
	// NoCache disables the About.xml scan cache.
	NoCache bool `toml:"no_cache"`
}

// Keys lists the settable keys in file order.
var Keys = []string{"game_path", "steam_path", "mod_folders", "rule_files", "modsconfig_path", "anchors", "no_cache"}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{Anchors: true}
}

// DefaultPath returns the default location of the config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "loadorder", "config.toml")
}

// LoadFile reads the config at path without applying environment
// overrides. A missing file yields [Default].
func LoadFile(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return c, nil
}

// Load reads the config at path and applies environment overrides.
func Load(path string) (*Config, error) {
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := c.applyEnv(nil); err != nil {
		return nil, err
	}
	return c, nil
}

// envOverrides holds the settings that can come from the environment.
// Unset or empty variables leave the file value alone.
type envOverrides struct {
	GamePath  string `env:"LOADORDER_GAME_PATH"`
	SteamPath string `env:"LOADORDER_STEAM_PATH"`
	NoCache   *bool  `env:"LOADORDER_NO_CACHE"`
}

// applyEnv applies overrides from environ, or from the process
// environment when environ is nil.
func (c *Config) applyEnv(environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "environment")
	}
	if o.GamePath != "" {
		c.GamePath = expandHome(o.GamePath)
	}
	if o.SteamPath != "" {
		c.SteamPath = expandHome(o.SteamPath)
	}
	if o.NoCache != nil {
		c.NoCache = *o.NoCache
	}
	return nil
}

// Save writes the config to path, replacing the file atomically.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Set assigns value to key. List keys take a comma separated value; an
// empty value clears them. Paths starting with ~/ are expanded.
func (c *Config) Set(key, value string) error {
	switch key {
	case "game_path":
		c.GamePath = expandHome(value)
	case "steam_path":
		c.SteamPath = expandHome(value)
	case "modsconfig_path":
		c.ModsConfigPath = expandHome(value)
	case "mod_folders":
		c.ModFolders = splitList(value)
	case "rule_files":
		c.RuleFiles = splitList(value)
	case "anchors", "no_cache":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "%s expects true or false", key)
		}
		if key == "anchors" {
			c.Anchors = b
		} else {
			c.NoCache = b
		}
	default:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns the display form of key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "game_path":
		return c.GamePath, nil
	case "steam_path":
		return c.SteamPath, nil
	case "modsconfig_path":
		return c.ModsConfigPath, nil
	case "mod_folders":
		return strings.Join(c.ModFolders, ","), nil
	case "rule_files":
		return strings.Join(c.RuleFiles, ","), nil
	case "anchors":
		return strconv.FormatBool(c.Anchors), nil
	case "no_cache":
		return strconv.FormatBool(c.NoCache), nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown key %q", key)
}

// Install returns the scan locations described by the config.
func (c *Config) Install() rimworld.Install {
	return rimworld.Install{
		GameDir:    c.GamePath,
		SteamDir:   c.SteamPath,
		ModFolders: slices.Clone(c.ModFolders),
	}
}

// ModsConfigFile returns the ModsConfig.xml to read and write: the
// configured override or the game's default location.
func (c *Config) ModsConfigFile() string {
	if c.ModsConfigPath != "" {
		return c.ModsConfigPath
	}
	return rimworld.ModsConfigPath()
}

// Validate checks that the configured paths are usable for a scan.
func (c *Config) Validate() error {
	if err := c.Install().Validate(); err != nil {
		return apperrors.Wrap(apperrors.GetCode(err), err, "%s (set it with: loadorder config set game_path <dir>)", apperrors.UserMessage(err))
	}
	for _, p := range slices.Concat(c.ModFolders, c.RuleFiles) {
		if err := apperrors.ValidatePath(p); err != nil {
			return err
		}
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, expandHome(s))
		}
	}
	return out
}

func expandHome(p string) string {
	if p == "~" {
		return xdg.Home
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return filepath.Join(xdg.Home, rest)
	}
	return p
}
