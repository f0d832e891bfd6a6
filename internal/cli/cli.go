// Package cli implements the letterboard command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/letterboard/pkg/buildinfo"
	"github.com/matzehuels/letterboard/pkg/config"
	"github.com/matzehuels/letterboard/pkg/letterboard"
	lbio "github.com/matzehuels/letterboard/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "letterboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Letterboard lays out headings as draggable letter tiles",
		Long: `Letterboard lays out headings as letter tiles on a grooved board, snaps
dragged tiles to the grooves, and scatters polaroids across the gallery stage.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML config file (default: built-in board)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.galleryCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.navgraphCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Session Setup
// =============================================================================

// loadConfig returns the --config file, or the defaults when none is given.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "headings", len(cfg.Headings), "measurer", cfg.Measurer)
	return cfg, nil
}

// session is a configured store with its controller.
type session struct {
	cfg        config.Config
	store      *letterboard.Store
	controller *letterboard.Controller
}

// newSession builds a store from cfg. A non-empty from path resumes from a
// snapshot instead of the configured initial state.
func (c *CLI) newSession(cfg config.Config, from string) (*session, error) {
	r, err := cfg.NewReducer()
	if err != nil {
		return nil, err
	}
	initial := cfg.InitialState()
	if from != "" {
		if initial, err = lbio.ImportJSON(from); err != nil {
			return nil, err
		}
		c.Logger.Debug("resumed snapshot", "path", from, "tiles", len(initial.Tiles))
	}
	store := letterboard.NewStore(r, initial, c.Logger)
	return &session{
		cfg:        cfg,
		store:      store,
		controller: letterboard.NewController(store, cfg.Seed),
	}, nil
}

// boot marks fonts ready and measures the configured board, which lays out
// every heading.
func (s *session) boot(ctx context.Context) letterboard.State {
	s.controller.FontReady(ctx)
	return s.controller.BoardMeasured(ctx, s.cfg.Metrics())
}
