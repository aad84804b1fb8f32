package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loadorder/pkg/config"
)

// completionGenerators maps shell names to cobra's script generators.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for loadorder.

Bash:
  $ source <(loadorder completion bash)

Zsh:
  $ loadorder completion zsh > "${fpath[1]}/_loadorder"

Fish:
  $ loadorder completion fish > ~/.config/fish/completions/loadorder.fish

PowerShell:
  PS> loadorder completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), stdout)
		},
	}
}

// completeConfigKeys completes the key argument of "config set".
func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return config.Keys, cobra.ShellCompDirectiveNoFileComp
}

// completeGraphFormat completes the --format flag of "graph".
func completeGraphFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"dot\tGraphviz source", "svg\trendered image"}, cobra.ShellCompDirectiveNoFileComp
}
