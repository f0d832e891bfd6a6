// Package config loads letterboard settings from TOML.
//
// A config file overlays the defaults:
//
//	font_family = "LetterboardWhite Pixillo"
//	measurer    = "font"
//	font_file   = "fonts/pixillo.ttf"
//	seed        = 42
//
//	[board]
//	width  = 1200
//	height = 250
//
//	[stage]
//	width  = 960
//	height = 250
//
//	[[heading]]
//	id    = "h1-1"
//	level = "H1"
//	text  = "James Crook"
//
// The measurer is "estimate" (0.6 em per rune, the default) or "font", which
// reads glyph advances from font_file or, without one, the embedded Go
// Regular face. Any [[heading]] table replaces the default headings as a whole. An omitted
// [stage] defaults to 0.8 × board width by board height.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/geometry"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/letterboard"
	"github.com/matzehuels/letterboard/pkg/textmeasure"
)

// Default board size in pixels.
const (
	DefaultBoardWidth  = 1200.0
	DefaultBoardHeight = 250.0
)

// Glyph measurer names.
const (
	MeasurerEstimate = "estimate"
	MeasurerFont     = "font"
)

// Size is a width and height in pixels.
type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Heading is one configured heading.
type Heading struct {
	ID    string `toml:"id"`
	Level string `toml:"level"`
	Text  string `toml:"text"`
}

// Config holds everything needed to build an initial letterboard.
type Config struct {
	FontFamily string    `toml:"font_family"`
	Measurer   string    `toml:"measurer"`
	FontFile   string    `toml:"font_file"`
	Seed       uint64    `toml:"seed"`
	Board      Size      `toml:"board"`
	Stage      Size      `toml:"stage"`
	Headings   []Heading `toml:"heading"`
}

// Default returns the built-in configuration: the title and menu headings on
// a 1200×250 board.
func Default() Config {
	var hs []Heading
	for _, h := range letterboard.DefaultHeadings() {
		hs = append(hs, Heading{ID: h.ID, Level: string(h.Level), Text: h.Text})
	}
	return Config{
		FontFamily: strings.Trim(textmeasure.DefaultFontFamily, `"`),
		Measurer:   MeasurerEstimate,
		Seed:       1,
		Board:      Size{Width: DefaultBoardWidth, Height: DefaultBoardHeight},
		Headings:   hs,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	cfg.Headings = nil

	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if !md.IsDefined("heading") {
		cfg.Headings = Default().Headings
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem in c.
func (c Config) Validate() error {
	switch c.Measurer {
	case MeasurerEstimate, MeasurerFont:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown measurer %q (want %s or %s)", c.Measurer, MeasurerEstimate, MeasurerFont)
	}
	if c.FontFile != "" && c.Measurer != MeasurerFont {
		return errors.New(errors.ErrCodeInvalidConfig, "font_file requires measurer = %q", MeasurerFont)
	}
	if err := errors.ValidateDimension("board.width", c.Board.Width); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "board")
	}
	if err := errors.ValidateDimension("board.height", c.Board.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "board")
	}
	if c.Stage != (Size{}) {
		if err := errors.ValidateDimension("stage.width", c.Stage.Width); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "stage")
		}
		if err := errors.ValidateDimension("stage.height", c.Stage.Height); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "stage")
		}
	}

	seen := make(map[string]bool, len(c.Headings))
	for i, h := range c.Headings {
		if err := errors.ValidateID("heading id", h.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "heading %d", i)
		}
		if seen[h.ID] {
			return errors.New(errors.ErrCodeInvalidConfig, "heading %d: duplicate id %q", i, h.ID)
		}
		seen[h.ID] = true
		if _, err := layout.ParseLevel(h.Level); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "heading %q", h.ID)
		}
		if err := errors.ValidateText(h.Text); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "heading %q", h.ID)
		}
	}
	return nil
}

// Metrics derives the board metrics.
func (c Config) Metrics() board.Metrics {
	return board.Measure(c.Board.Width, c.Board.Height)
}

// StageSize returns the polaroid container size.
func (c Config) StageSize() geometry.Size {
	if c.Stage != (Size{}) {
		return geometry.Size{Width: c.Stage.Width, Height: c.Stage.Height}
	}
	return geometry.Size{
		Width:  c.Board.Width * letterboard.GalleryStageRatio,
		Height: c.Board.Height,
	}
}

// FontFamilyCSS returns the family quoted the way the measurer expects.
func (c Config) FontFamilyCSS() string {
	if c.FontFamily == "" {
		return textmeasure.DefaultFontFamily
	}
	return `"` + c.FontFamily + `"`
}

// NewMeasurer builds the configured glyph measurer.
func (c Config) NewMeasurer() (textmeasure.Measurer, error) {
	if c.Measurer != MeasurerFont {
		return textmeasure.Estimator{}, nil
	}
	if c.FontFile == "" {
		return textmeasure.NewFontMeasurer(nil)
	}
	data, err := os.ReadFile(c.FontFile)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "read font %s", c.FontFile)
	}
	m, err := textmeasure.NewFontMeasurer(nil)
	if err != nil {
		return nil, err
	}
	if err := m.Register(c.FontFamilyCSS(), data); err != nil {
		return nil, err
	}
	return m, nil
}

// NewReducer builds a reducer using the configured measurer and family.
func (c Config) NewReducer() (*letterboard.Reducer, error) {
	m, err := c.NewMeasurer()
	if err != nil {
		return nil, err
	}
	return letterboard.NewReducer(letterboard.WithMeasurer(m), letterboard.WithFontFamily(c.FontFamilyCSS())), nil
}

// LayoutHeadings converts the configured headings. Call after Validate.
func (c Config) LayoutHeadings() []layout.Heading {
	out := make([]layout.Heading, 0, len(c.Headings))
	for _, h := range c.Headings {
		lvl, _ := layout.ParseLevel(h.Level)
		out = append(out, layout.Heading{ID: h.ID, Level: lvl, Text: h.Text})
	}
	return out
}

// InitialState builds the starting letterboard state.
func (c Config) InitialState() letterboard.State {
	return letterboard.InitialState(c.LayoutHeadings(), c.Seed)
}
