package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	lbio "github.com/matzehuels/letterboard/pkg/io"
	"github.com/matzehuels/letterboard/pkg/letterboard"
	"github.com/matzehuels/letterboard/pkg/scenario"
)

// replayCommand creates the replay command for running scripted sessions.
func (c *CLI) replayCommand() *cobra.Command {
	var from, output string

	cmd := &cobra.Command{
		Use:   "replay [scenario.toml]",
		Short: "Replay a scripted sequence of actions",
		Long: `Replay a scripted sequence of actions.

Each [[step]] in the scenario names an action (FONT_READY, BOARD_MEASURED,
DRAG_END, PANEL_OPEN, ...) with its fields. The steps run in order through a
single store starting from the configured initial state, or from a snapshot
given with --from. The final state is printed as JSON, or written with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(withLogger(cmd.Context(), c.Logger), cmd, args[0], from, output)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "resume from a JSON state snapshot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the final state to this file (default: stdout)")

	return cmd
}

func (c *CLI) runReplay(ctx context.Context, cmd *cobra.Command, path, from, output string) error {
	logger := loggerFromContext(ctx)

	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	sess, err := c.newSession(cfg, from)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	step := 0
	unsubscribe := sess.store.Subscribe(func(st letterboard.State) {
		step++
		logger.Debug("step applied", "step", step, "panel", st.Panel.ActivePanel, "tiles", len(st.Tiles), "max_z", st.MaxZIndex)
	})
	st, err := sc.Run(ctx, sess.store)
	unsubscribe()
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Replayed %d actions", len(sc.Actions)))

	if output == "" {
		return lbio.WriteJSON(st, cmd.OutOrStdout())
	}
	if err := lbio.ExportJSON(st, output); err != nil {
		return err
	}
	printSuccess("Final state after %d actions", sess.store.Dispatched())
	printFile(output)
	return nil
}
