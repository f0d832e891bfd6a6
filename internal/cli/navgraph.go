package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lbio "github.com/matzehuels/letterboard/pkg/io"
	"github.com/matzehuels/letterboard/pkg/navgraph"
)

// navgraphCommand creates the navgraph command for drawing panel navigation.
func (c *CLI) navgraphCommand() *cobra.Command {
	var from, output string
	var dotOnly bool

	cmd := &cobra.Command{
		Use:   "navgraph",
		Short: "Draw the panel and notecard navigation graph",
		Long: `Draw the panel and notecard navigation graph.

Prints DOT with --dot, otherwise renders SVG with Graphviz. With --from the
view shown by that snapshot is highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNavgraph(withLogger(cmd.Context(), c.Logger), cmd, from, output, dotOnly)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "highlight the view of a JSON state snapshot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "emit DOT instead of SVG")

	return cmd
}

func (c *CLI) runNavgraph(ctx context.Context, cmd *cobra.Command, from, output string, dotOnly bool) error {
	var opts navgraph.Options
	if from != "" {
		st, err := lbio.ImportJSON(from)
		if err != nil {
			return err
		}
		opts = navgraph.FromState(st)
	}

	data := []byte(navgraph.ToDOT(opts))
	if !dotOnly {
		var spinner *Spinner
		if output != "" {
			spinner = newSpinner(ctx, os.Stderr, "Rendering navigation graph...")
			spinner.Start()
		}
		svg, err := navgraph.RenderSVG(ctx, string(data))
		if spinner != nil {
			if err != nil {
				spinner.StopWithError("Render failed")
			} else {
				spinner.Stop()
			}
		}
		if err != nil {
			return err
		}
		data = svg
	}
	loggerFromContext(ctx).Debug("navgraph", "bytes", len(data), "dot", dotOnly)

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Rendered navigation graph")
	printFile(output)
	return nil
}
