package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/polaroid"
)

// galleryCommand creates the gallery command for previewing polaroid scatters.
func (c *CLI) galleryCommand() *cobra.Command {
	var (
		width, height float64
		seed          uint64
		count         int
		hero, asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Scatter polaroids across a stage",
		Long: `Scatter polaroids across a stage.

Places the gallery images at random positions, sizes and rotations inside the
stage, keeping every rotated frame inside it. The same --seed always yields
the same scatter. --hero places the two hero polaroids side by side instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			stage := cfg.StageSize()
			if width != 0 {
				stage.Width = width
			}
			if height != 0 {
				stage.Height = height
			}
			if err := errors.ValidateDimension("width", stage.Width); err != nil {
				return err
			}
			if err := errors.ValidateDimension("height", stage.Height); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}

			gen := polaroid.NewSeeded(seed)
			var ps []polaroid.Polaroid
			if hero {
				ps = gen.Hero(stage.Width, stage.Height)
			} else {
				ps = gen.Gallery(stage.Width, stage.Height, count)
			}
			c.Logger.Debug("generated polaroids", "count", len(ps), "stage", fmt.Sprintf("%gx%g", stage.Width, stage.Height), "seed", seed)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ps)
			}
			fmt.Fprintln(cmd.OutOrStdout(), polaroidTable(ps))
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "stage width (default: config stage)")
	cmd.Flags().Float64Var(&height, "height", 0, "stage height (default: config stage)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: config seed)")
	cmd.Flags().IntVarP(&count, "count", "n", polaroid.DefaultGalleryCount, "number of polaroids")
	cmd.Flags().BoolVar(&hero, "hero", false, "place the hero polaroids instead")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
