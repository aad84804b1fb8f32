package rimworld

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/loadorder/pkg/cache"
	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
	"github.com/matzehuels/loadorder/pkg/observability"
)

// DefaultCacheTTL bounds how long a parsed About.xml is trusted. Entries are
// keyed by modification time, so the TTL only limits cache growth.
const DefaultCacheTTL = 30 * 24 * time.Hour

// Mod is one installed mod.
type Mod struct {
	Path  string
	About *About
}

// Catalog is the result of scanning an installation.
type Catalog struct {
	Version *semver.Version
	Release string

	// Mods holds every usable mod by package ID.
	Mods map[modlist.ID]*Mod
	// Active starts empty; Inactive holds every usable mod in scan order.
	Active   *modlist.List
	Inactive *modlist.List
	// Rules has the metadata source filled from the About.xml files.
	Rules *modlist.RuleDB

	// Unsupported lists mods skipped because they do not support Release.
	Unsupported []string
	// Broken maps mod directories to the error that made them unusable.
	Broken map[string]error
	// Duplicates lists directories whose package ID was already seen.
	Duplicates []string
}

// Scanner reads mod metadata from disk.
type Scanner struct {
	// Cache stores parsed About.xml files between runs. Nil disables caching.
	Cache cache.Cache
	// TTL for cache entries; zero selects DefaultCacheTTL.
	TTL time.Duration
	// Logger, if set, receives one line per inspected mod.
	Logger func(format string, args ...any)
}

// Scan inspects every mod directory of in. A mod with a missing or broken
// About.xml is recorded in [Catalog.Broken] and skipped; the scan only
// fails when the installation itself is unusable.
func (s Scanner) Scan(ctx context.Context, in Install) (cat *Catalog, err error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	dirs := in.ScanDirs()
	start := time.Now()
	observability.Scan().OnScanStart(ctx, len(dirs))
	defer func() {
		mods := 0
		if cat != nil {
			mods = cat.Inactive.Len()
		}
		observability.Scan().OnScanComplete(ctx, mods, time.Since(start), err)
	}()

	version, err := ReadGameVersion(in.GameDir)
	if err != nil {
		return nil, err
	}
	cat = &Catalog{
		Version:  version,
		Release:  Release(version),
		Mods:     make(map[modlist.ID]*Mod),
		Active:   modlist.NewList(),
		Inactive: modlist.NewList(),
		Rules:    modlist.NewRuleDB(),
		Broken:   make(map[string]error),
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "read mod folder %s", dir)
		}
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			modDir := filepath.Join(dir, entry.Name())
			if !isDir(modDir) {
				continue
			}
			s.logf("inspecting mod at %s", modDir)

			about, err := s.about(ctx, modDir)
			if err != nil {
				s.logf("skipping %s: %v", modDir, err)
				cat.Broken[modDir] = err
				continue
			}
			if err := apperrors.ValidatePackageID(about.PackageID.String()); err != nil {
				s.logf("skipping %s: %v", modDir, err)
				cat.Broken[modDir] = err
				continue
			}
			if !about.Supports(cat.Release) {
				s.logf("skipping %s: does not support %s", about.PackageID, cat.Release)
				cat.Unsupported = append(cat.Unsupported, modDir)
				continue
			}
			if prev, dup := cat.Mods[about.PackageID]; dup {
				s.logf("skipping %s: %s already provided by %s", modDir, about.PackageID, prev.Path)
				cat.Duplicates = append(cat.Duplicates, modDir)
				continue
			}

			cat.Mods[about.PackageID] = &Mod{Path: modDir, About: about}
			about.LoadRules(cat.Release, cat.Rules)
			if err := cat.Inactive.Append(about.PackageID, about.Info(modDir)); err != nil {
				return nil, err
			}
		}
	}
	return cat, nil
}

// about parses About.xml, consulting the cache first.
func (s Scanner) about(ctx context.Context, modDir string) (*About, error) {
	path := AboutPath(modDir)
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "no About.xml")
		}
		return nil, err
	}
	if s.Cache == nil {
		return ReadAbout(modDir)
	}

	key := cache.MetadataKey(path, fi.ModTime())
	if data, hit, err := s.Cache.Get(ctx, key); err == nil && hit {
		var a About
		if err := json.Unmarshal(data, &a); err == nil {
			observability.Cache().OnCacheHit(ctx, "about")
			return &a, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "about")

	a, err := ReadAbout(modDir)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	ttl := s.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	if err := s.Cache.Set(ctx, key, data, ttl); err != nil {
		s.logf("cache write failed for %s: %v", path, err)
	} else {
		observability.Cache().OnCacheSet(ctx, "about", len(data))
	}
	return a, nil
}

func (s Scanner) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger(format, args...)
	}
}

// Activate moves ids, in order, from the inactive to the end of the active
// list. IDs that are already active are left in place. IDs that are not
// installed are returned.
func (c *Catalog) Activate(ids []modlist.ID) (missing []modlist.ID) {
	for _, id := range ids {
		if c.Active.Contains(id) {
			continue
		}
		info, ok := c.Inactive.Remove(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		_ = c.Active.Append(id, info)
	}
	return missing
}

// Deactivate moves id from the active list to the end of the inactive list.
func (c *Catalog) Deactivate(id modlist.ID) bool {
	info, ok := c.Active.Remove(id)
	if !ok {
		return false
	}
	_ = c.Inactive.Append(id, info)
	return true
}

// Toggle moves id to the other list and reports whether it is now active.
func (c *Catalog) Toggle(id modlist.ID) bool {
	if c.Deactivate(id) {
		return false
	}
	c.Activate([]modlist.ID{id})
	return c.Active.Contains(id)
}
