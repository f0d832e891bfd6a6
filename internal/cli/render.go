package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"

	"github.com/matzehuels/letterboard/pkg/boardimage"
	"github.com/matzehuels/letterboard/pkg/errors"
	lbio "github.com/matzehuels/letterboard/pkg/io"
	"github.com/matzehuels/letterboard/pkg/letterboard"
)

// renderCommand creates the render command for PNG snapshots of the board.
func (c *CLI) renderCommand() *cobra.Command {
	var from, output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the board to PNG",
		Long: `Render the board to PNG.

Draws the configured board after layout, or the state of a snapshot given with
--from. An open gallery panel adds its polaroid stage below the board. The
config's font_file is used for glyphs when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--output is required")
			}
			return c.runRender(withLogger(cmd.Context(), c.Logger), from, output)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "render a JSON state snapshot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, from, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	var st letterboard.State
	if from != "" {
		if st, err = lbio.ImportJSON(from); err != nil {
			return err
		}
	} else {
		sess, err := c.newSession(cfg, "")
		if err != nil {
			return err
		}
		st = sess.boot(ctx)
	}

	var opts boardimage.Options
	if cfg.FontFile != "" {
		data, err := os.ReadFile(cfg.FontFile)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFontLoad, err, "read font %s", cfg.FontFile)
		}
		if opts.Font, err = truetype.Parse(data); err != nil {
			return errors.Wrap(errors.ErrCodeFontLoad, err, "parse font %s", cfg.FontFile)
		}
	}
	r, err := boardimage.New(opts)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := r.WritePNG(st, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Rendered %d tiles", len(st.Tiles)))
	printFile(output)
	return nil
}
