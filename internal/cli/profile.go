package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/loadorder/pkg/io"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Save the current load order as a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context(), openOptions{})
			if err != nil {
				return err
			}
			p := io.NewProfile(s.cat.Release, s.cat.Active, s.cat.Inactive)
			if err := io.ExportProfile(p, args[0]); err != nil {
				return err
			}
			printSuccess("Exported %d active mods", len(p.Active))
			printFile(args[0])
			return nil
		},
	}
}

// importCommand creates the import command.
func (c *CLI) importCommand() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a profile as the active load order",
		Long: `Load a profile written by export. Mods of the profile that are not installed
are reported and skipped. The result is checked like 'check' and only written
to ModsConfig.xml with --write.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := io.ImportProfile(args[0])
			if err != nil {
				return err
			}
			s, err := c.openSession(cmd.Context(), openOptions{skipActive: true})
			if err != nil {
				return err
			}
			if p.Version != "" && p.Version != s.cat.Release {
				printWarning("Profile was made for RimWorld %s, installed is %s", p.Version, s.cat.Release)
			}
			s.activate(cmd.Context(), p.Active)
			s.refresh()

			printSuccess("Imported %d of %d mods", s.cat.Active.Len(), len(p.Active))
			if err := reportIssues(s); err != nil {
				return err
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
	return cmd
}
