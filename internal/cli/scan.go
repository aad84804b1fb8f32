package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// scanCommand creates the scan command.
func (c *CLI) scanCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the installation and list active and inactive mods",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context(), openOptions{skipActive: all})
			if err != nil {
				return err
			}
			printKeyValue("Game version", s.cat.Version.Original())
			printKeyValue("ModsConfig", s.modsCfg)
			printNewline()

			fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf("Active (%d)", s.cat.Active.Len())))
			fmt.Fprintln(stdout, modTable(s.cat.Active, s.issues))
			fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf("Inactive (%d)", s.cat.Inactive.Len())))
			fmt.Fprintln(stdout, modTable(s.cat.Inactive, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all-inactive", false, "ignore ModsConfig.xml and list every mod as inactive")
	return cmd
}

// checkCommand creates the check command. It fails when issues remain so
// it can gate scripts.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report violated rules in the current load order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context(), openOptions{})
			if err != nil {
				return err
			}
			return reportIssues(s)
		},
	}
}

func reportIssues(s *session) error {
	if !s.cat.Active.Contains(modlist.CoreID) {
		printWarning("Core (%s) is not active", modlist.CoreID)
	}
	if s.issues.Empty() {
		printSuccess("No issues in %d active mods", s.cat.Active.Len())
		return nil
	}
	printError("%d issue(s) in %d active mods", s.issues.Len(), s.cat.Active.Len())
	printIssues(s.issues)
	return apperrors.New(apperrors.ErrCodeUnresolved, "load order has %d unresolved issue(s)", s.issues.Len())
}

// fixCommand creates the fix command.
func (c *CLI) fixCommand() *cobra.Command {
	var (
		write     bool
		noAnchors bool
		budget    int
	)
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Repair the load order automatically",
		Long: `Repair the active load order: mods are moved to satisfy before/after rules and
missing dependencies are activated from the installed mods. Incompatible mods
and missing dependencies that are not installed must be resolved by hand.

The result is only written to ModsConfig.xml with --write.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.openSession(ctx, openOptions{})
			if err != nil {
				return err
			}
			before := s.issues.Len()

			f := newFixer(ctx)
			f.Budget = budget
			fixErr := f.run(s, s.cfg.Anchors && !noAnchors)

			var fe *modlist.FixError
			switch {
			case fixErr == nil:
				printSuccess("Fixed %d issue(s)", before)
			case errors.As(fixErr, &fe):
				printError("Autofix stopped: %s", fixStopReason(fe))
				printIssues(s.issues)
			default:
				return fixErr
			}

			fmt.Fprintln(stdout, modTable(s.cat.Active, s.issues))
			if fixErr != nil {
				return fixErr
			}
			if !write {
				printInfo("Dry run; use --write to save to %s", s.modsCfg)
				return nil
			}
			if err := s.save(); err != nil {
				return err
			}
			printSuccess("Saved load order")
			printFile(s.modsCfg)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "save the result to ModsConfig.xml")
	cmd.Flags().BoolVar(&noAnchors, "no-anchors", false, "do not pin start/end anchored mods first")
	cmd.Flags().IntVar(&budget, "budget", 0, "override the retry budget (0 = automatic)")
	return cmd
}

func fixStopReason(fe *modlist.FixError) string {
	switch {
	case errors.Is(fe, modlist.ErrIncompatible):
		return fmt.Sprintf("%s is incompatible with %s; deactivate one of them", fe.Mod, fe.Target)
	case errors.Is(fe, modlist.ErrMissingDependency):
		return fmt.Sprintf("%s requires %s, which is not installed", fe.Mod, fe.Target)
	case errors.Is(fe, modlist.ErrBudgetExhausted):
		return fmt.Sprintf("gave up on %s and %s; the rules may form a cycle", fe.Mod, fe.Target)
	}
	return fe.Error()
}
