package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/letterboard/pkg/config"
	lbio "github.com/matzehuels/letterboard/pkg/io"
)

// layoutOptions are the flags of the layout command.
type layoutOptions struct {
	width, height float64
	output        string
	json          bool
}

// layoutCommand creates the layout command for laying out the configured headings.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out the configured headings on a measured board",
		Long: `Lay out the configured headings on a measured board.

The layout command loads the config, marks fonts ready, measures the board and
prints every tile with its position. Use --width/--height to try another board
size, -o to write a state snapshot that 'replay --from' can resume.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(withLogger(cmd.Context(), c.Logger), cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", 0, "board width in pixels (default: config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "board height in pixels (default: config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write a JSON state snapshot to this file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the JSON state snapshot instead of a table")

	return cmd
}

// runLayout boots a session and reports the resulting tiles.
func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, opts layoutOptions) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err := applyBoardSize(&cfg, opts.width, opts.height); err != nil {
		return err
	}

	sess, err := c.newSession(cfg, "")
	if err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(ctx))
	st := sess.boot(ctx)
	prog.done(fmt.Sprintf("Laid out %d headings", len(st.Headings)))

	if opts.json {
		return lbio.WriteJSON(st, cmd.OutOrStdout())
	}
	if opts.output != "" {
		if err := lbio.ExportJSON(st, opts.output); err != nil {
			return err
		}
		printSuccess("Wrote %d tiles", len(st.Tiles))
		printFile(opts.output)
		return nil
	}

	m := st.BoardMetrics
	printKeyValue("Board", fmt.Sprintf("%s × %s", formatFloat(m.Width), formatFloat(m.Height)))
	printKeyValue("Row pitch", formatFloat(m.RowHeightPx))
	printKeyValue("Tiles", fmt.Sprint(len(st.Tiles)))
	fmt.Fprintln(cmd.OutOrStdout(), tileTable(st.Tiles))
	return nil
}

// applyBoardSize overrides the configured board with non-zero flag values.
func applyBoardSize(cfg *config.Config, width, height float64) error {
	if width != 0 {
		cfg.Board.Width = width
	}
	if height != 0 {
		cfg.Board.Height = height
	}
	return cfg.Validate()
}
