package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modgraph"
)

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output string
		format string
		opts   modgraph.Options
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the constraint graph of the active mods",
		Long: `Render the relations between the active mods as a graph.

Edges point from the mod that must load first to the mod that loads after it.
Dependencies are drawn bold, incompatibilities dashed, and violated relations
red. The format defaults to the extension of --output, or dot on stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = "dot"
				if strings.HasSuffix(strings.ToLower(output), ".svg") {
					format = "svg"
				}
			}
			if format != "dot" && format != "svg" {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown format %q (want dot or svg)", format)
			}

			s, err := c.openSession(cmd.Context(), openOptions{})
			if err != nil {
				return err
			}
			data := []byte(modgraph.ToDOT(s.cat.Rules, s.cat.Active, s.issues, opts))
			if format == "svg" {
				prog := newProgress(loggerFromContext(cmd.Context()))
				data, err = modgraph.RenderSVG(cmd.Context(), string(data))
				if err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
				prog.done("Rendered SVG")
			}

			if output == "" {
				_, err := stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Wrote %s graph of %d mods", format, s.cat.Active.Len())
			printFile(output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg")
	_ = cmd.RegisterFlagCompletionFunc("format", completeGraphFormat)
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show display names")
	cmd.Flags().BoolVar(&opts.ShowMissing, "missing", true, "draw inactive dependencies")
	return cmd
}
