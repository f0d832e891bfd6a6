// Package scenario decodes scripted letterboard sessions from TOML.
//
// A scenario is a list of steps, each naming an action by its wire name:
//
//	seed = 42
//
//	[[step]]
//	action = "FONT_READY"
//
//	[[step]]
//	action = "BOARD_MEASURED"
//	width  = 1200
//	height = 250
//
//	[[step]]
//	action = "DRAG_END"
//	tile   = "h1-1-0"
//	x      = 100
//	y      = 50
//
// GALLERY_GENERATE_POLAROIDS takes an optional seed; without one the step
// uses the scenario seed plus its index.
package scenario

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/letterboard"
)

// Step is one raw scenario entry. Pointer fields distinguish missing values
// from zero.
type Step struct {
	Action   string   `toml:"action"`
	Tile     string   `toml:"tile"`
	ID       string   `toml:"id"`
	X        *float64 `toml:"x"`
	Y        *float64 `toml:"y"`
	Width    *float64 `toml:"width"`
	Height   *float64 `toml:"height"`
	Panel    string   `toml:"panel"`
	Notecard string   `toml:"notecard"`
	Level    string   `toml:"level"`
	Text     string   `toml:"text"`
	Seed     *uint64  `toml:"seed"`
}

type file struct {
	Seed  uint64 `toml:"seed"`
	Steps []Step `toml:"step"`
}

// Scenario is a decoded, validated action sequence.
type Scenario struct {
	Seed    uint64
	Actions []letterboard.Action
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read scenario %s", path)
	}
	return Parse(string(data))
}

// Parse decodes scenario text.
func Parse(text string) (*Scenario, error) {
	var f file
	md, err := toml.Decode(text, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "unknown scenario key %s", undecoded[0])
	}

	sc := &Scenario{Seed: f.Seed, Actions: make([]letterboard.Action, 0, len(f.Steps))}
	for i, st := range f.Steps {
		a, err := st.toAction(f.Seed + uint64(i))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "step %d (%s)", i+1, st.Action)
		}
		sc.Actions = append(sc.Actions, a)
	}
	return sc, nil
}

// Run dispatches every action into store and returns the final state.
func (s *Scenario) Run(ctx context.Context, store *letterboard.Store) (letterboard.State, error) {
	for _, a := range s.Actions {
		if err := ctx.Err(); err != nil {
			return store.State(), err
		}
		store.Dispatch(ctx, a)
	}
	return store.State(), nil
}

func (st Step) toAction(defaultSeed uint64) (letterboard.Action, error) {
	switch letterboard.ActionType(st.Action) {
	case letterboard.TypeFontReady:
		return letterboard.FontReady{}, nil

	case letterboard.TypeBoardMeasured:
		w, h, err := st.size()
		if err != nil {
			return nil, err
		}
		return letterboard.BoardMeasured{Metrics: board.Measure(w, h)}, nil

	case letterboard.TypeAddHeading:
		lvl, err := layout.ParseLevel(st.Level)
		if err != nil {
			return nil, err
		}
		if err := errors.ValidateText(st.Text); err != nil {
			return nil, err
		}
		return letterboard.AddHeading{Level: lvl, Text: st.Text}, nil

	case letterboard.TypeReflowLayout:
		return letterboard.ReflowLayout{}, nil

	case letterboard.TypeDragStart:
		if err := errors.ValidateID("tile", st.Tile); err != nil {
			return nil, err
		}
		return letterboard.DragStart{TileID: st.Tile}, nil

	case letterboard.TypeDragEnd:
		if err := errors.ValidateID("tile", st.Tile); err != nil {
			return nil, err
		}
		x, y, err := st.point()
		if err != nil {
			return nil, err
		}
		return letterboard.DragEnd{TileID: st.Tile, X: x, Y: y}, nil

	case letterboard.TypePanelOpen:
		p, err := letterboard.ParsePanel(st.Panel)
		if err != nil {
			return nil, err
		}
		return letterboard.PanelOpen{Panel: p}, nil

	case letterboard.TypePanelClose:
		return letterboard.PanelClose{}, nil

	case letterboard.TypeGenerateGalleryPolaroids:
		w, h, err := st.size()
		if err != nil {
			return nil, err
		}
		seed := defaultSeed
		if st.Seed != nil {
			seed = *st.Seed
		}
		return letterboard.GenerateGalleryPolaroids{Width: w, Height: h, Seed: seed}, nil

	case letterboard.TypePolaroidDragEnd:
		if err := errors.ValidateID("polaroid id", st.ID); err != nil {
			return nil, err
		}
		x, y, err := st.point()
		if err != nil {
			return nil, err
		}
		return letterboard.PolaroidDragEnd{ID: st.ID, X: x, Y: y}, nil

	case letterboard.TypePolaroidBringToFront:
		if err := errors.ValidateID("polaroid id", st.ID); err != nil {
			return nil, err
		}
		return letterboard.PolaroidBringToFront{ID: st.ID}, nil

	case letterboard.TypeNotecardOpen:
		n, err := letterboard.ParseNotecard(st.Notecard)
		if err != nil {
			return nil, err
		}
		return letterboard.NotecardOpen{Notecard: n}, nil

	case letterboard.TypeNotecardClose:
		return letterboard.NotecardClose{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidAction, "unknown action %q", st.Action)
}

func (st Step) point() (x, y float64, err error) {
	if st.X == nil || st.Y == nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "x and y are required")
	}
	if err := errors.ValidateCoordinate("x", *st.X); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateCoordinate("y", *st.Y); err != nil {
		return 0, 0, err
	}
	return *st.X, *st.Y, nil
}

func (st Step) size() (w, h float64, err error) {
	if st.Width == nil || st.Height == nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "width and height are required")
	}
	if err := errors.ValidateDimension("width", *st.Width); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateDimension("height", *st.Height); err != nil {
		return 0, 0, err
	}
	return *st.Width, *st.Height, nil
}
