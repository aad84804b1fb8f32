// Package cli implements the loadorder command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/loadorder/pkg/buildinfo"
	"github.com/matzehuels/loadorder/pkg/cache"
	"github.com/matzehuels/loadorder/pkg/config"
	"github.com/matzehuels/loadorder/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "loadorder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the --config flag; empty means config.DefaultPath.
	configPath string
	verbose    bool
	stats      *runStats
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "loadorder sorts and checks RimWorld mod load orders",
		Long: `loadorder reads the mods installed for RimWorld, checks the active load order
against the rules declared in About.xml and in community rule files, and
repairs violated orderings automatically.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.stats = &runStats{}
			observability.SetScanHooks(c.stats)
			observability.SetFixHooks(c.stats)
			observability.SetCacheHooks(c.stats)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.stats == nil {
				return
			}
			if s := c.stats.summary(); s != "" {
				c.Logger.Debug(s)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	root.AddCommand(c.configCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.fixCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Cache
// =============================================================================

func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.DefaultPath()
}

// loadConfig reads the config file with environment overrides applied.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.configFile())
}

// newCache returns the scan cache, or a NullCache when caching is disabled
// or the cache directory cannot be created.
func newCache(cfg *config.Config) cache.Cache {
	if cfg.NoCache {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(cache.DefaultDir())
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}
