package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/loadorder/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configSetCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			for _, key := range config.Keys {
				v, err := cfg.Get(key)
				if err != nil {
					return err
				}
				if v == "" {
					v = StyleDim.Render("(unset)")
				}
				printKeyValue(key, v)
			}
			printNewline()
			printDetail("Config file: %s", c.configFile())
			printDetail("ModsConfig:  %s", cfg.ModsConfigFile())
			return nil
		},
	}
}

func (c *CLI) configSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Change a setting",
		Long:              "Change a setting. List settings (mod_folders, rule_files) take a comma separated value.",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile()
			// Environment overrides must not end up in the file.
			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			v, _ := cfg.Get(args[0])
			printSuccess("Set %s = %s", args[0], v)
			printFile(path)
			return nil
		},
	}
}
