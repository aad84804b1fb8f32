package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/matzehuels/loadorder/pkg/config"
	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
	"github.com/matzehuels/loadorder/pkg/rimworld"
)

// session is a scanned installation with the current load order applied.
type session struct {
	cfg     *config.Config
	cat     *rimworld.Catalog
	modsCfg string // path of ModsConfig.xml
	issues  modlist.Issues
}

// openOptions controls how much state openSession restores.
type openOptions struct {
	// skipActive leaves every mod inactive instead of reading ModsConfig.xml.
	skipActive bool
}

// openSession loads the config, scans the installation, loads rule files
// and activates the mods listed in ModsConfig.xml. Broken rule files and
// unknown active mods are reported as warnings.
func (c *CLI) openSession(ctx context.Context, opts openOptions) (*session, error) {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, os.Stderr, "Scanning mods...")
	spinner.Start()
	logf := debugf(logger)
	scanner := rimworld.Scanner{
		Cache: newCache(cfg),
		Logger: func(format string, args ...any) {
			spinner.SetMessage(fmt.Sprintf(format, args...))
			logf(format, args...)
		},
	}
	cat, err := scanner.Scan(ctx, cfg.Install())
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Scanned %d mods for RimWorld %s", cat.Inactive.Len(), cat.Release))
	for _, dir := range slices.Sorted(maps.Keys(cat.Broken)) {
		logger.Warn("Skipped unreadable mod", "dir", dir, "err", apperrors.UserMessage(cat.Broken[dir]))
	}
	if n := len(cat.Unsupported); n > 0 {
		logger.Debugf("Skipped %d mods that do not support %s", n, cat.Release)
	}

	for _, path := range cfg.RuleFiles {
		if err := rimworld.LoadRuleFile(cat.Rules, path); err != nil {
			logger.Warn("Ignoring rule file", "path", path, "err", err)
			continue
		}
		logger.Debugf("Loaded rules from %s", path)
	}

	s := &session{cfg: cfg, cat: cat, modsCfg: cfg.ModsConfigFile()}
	if !opts.skipActive {
		if err := s.loadActive(ctx); err != nil {
			return nil, err
		}
	}
	s.refresh()
	return s, nil
}

// loadActive applies the active list of ModsConfig.xml. A missing file
// leaves every mod inactive.
func (s *session) loadActive(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	mc, err := rimworld.ReadModsConfig(s.modsCfg)
	if apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		logger.Warn("No ModsConfig.xml found, starting with an empty load order", "path", s.modsCfg)
		return nil
	}
	if err != nil {
		return err
	}
	s.activate(ctx, mc.ActiveMods)
	return nil
}

// activate moves ids to the active list and warns about missing mods.
func (s *session) activate(ctx context.Context, ids []modlist.ID) {
	missing := s.cat.Activate(ids)
	if len(missing) > 0 {
		loggerFromContext(ctx).Warn("Active mods are not installed", "count", len(missing), "ids", missing)
	}
}

// refresh recomputes the issues of the active list.
func (s *session) refresh() {
	s.issues = modlist.FindIssues(s.cat.Rules, s.cat.Active)
}

// save writes the active list to ModsConfig.xml.
func (s *session) save() error {
	return rimworld.SaveModsConfig(s.modsCfg, s.cat.Version.Original(), s.cat.Active, s.issues)
}
