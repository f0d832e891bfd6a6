package letterboard

import (
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/geometry"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/polaroid"
	"github.com/matzehuels/letterboard/pkg/textmeasure"
)

// Fixed rectangle polaroid drags are clamped into. It does not follow the
// container passed to GALLERY_GENERATE_POLAROIDS.
const (
	PolaroidBoundsWidth  = 1200.0
	PolaroidBoundsHeight = 800.0
)

// headingNamespace scopes name-based heading ids.
var headingNamespace = uuid.MustParse("3f8c1e52-6a0b-4c1e-9d57-3b9c2f1a7e40")

// Reducer applies actions to states. It holds read-only layout
// collaborators and is safe for concurrent use.
type Reducer struct {
	measure    textmeasure.Measurer
	fontFamily string
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithMeasurer sets the glyph-width measurer. The default is the estimate.
func WithMeasurer(m textmeasure.Measurer) Option {
	return func(r *Reducer) {
		if m != nil {
			r.measure = m
		}
	}
}

// WithFontFamily sets the font family passed to the measurer.
func WithFontFamily(family string) Option {
	return func(r *Reducer) { r.fontFamily = family }
}

// NewReducer creates a reducer.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{
		measure:    textmeasure.Estimator{},
		fontFamily: textmeasure.DefaultFontFamily,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce returns the state that results from applying a to s. It never
// mutates s. Actions that do not apply (unknown ids, layout before the board
// is ready, drags to non-finite coordinates) return s unchanged.
func (r *Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FontReady:
		s.FontReady = true
		return s

	case BoardMeasured:
		m := a.Metrics
		s.BoardMetrics = &m
		return s

	case AddHeading:
		h := layout.Heading{
			ID:    headingID(len(s.Headings), a.Level, a.Text),
			Level: a.Level,
			Text:  a.Text,
		}
		s.Headings = append(slices.Clip(s.Headings), h)
		if s.BoardMetrics != nil {
			s.Tiles = r.layoutAll(s.Headings, s.Tiles, *s.BoardMetrics)
		}
		return s

	case ReflowLayout:
		if !s.Ready() {
			return s
		}
		s.Tiles = r.layoutAll(s.Headings, s.Tiles, *s.BoardMetrics)
		return s

	case DragStart:
		return s

	case DragEnd:
		if s.BoardMetrics == nil || !finite(a.X, a.Y) {
			return s
		}
		i := slices.IndexFunc(s.Tiles, func(t layout.Tile) bool { return t.ID == a.TileID })
		if i < 0 {
			return s
		}
		p := board.SnapToGroove(a.X, a.Y, s.Tiles[i].Extent(), *s.BoardMetrics)
		s.Tiles = slices.Clone(s.Tiles)
		s.Tiles[i].X, s.Tiles[i].Y = p.X, p.Y
		s.Tiles[i].ManuallyMoved = true
		return s

	case PanelOpen:
		s.Panel.ActivePanel = a.Panel
		s.Panel.IsPanelOpen = true
		return s

	case PanelClose:
		s.Panel.ActivePanel = PanelHero
		s.Panel.IsPanelOpen = false
		return s

	case GenerateGalleryPolaroids:
		ps := polaroid.NewSeeded(a.Seed).Gallery(a.Width, a.Height, polaroid.DefaultGalleryCount)
		s.Panel.GalleryPolaroids = ps
		for _, p := range ps {
			s.MaxZIndex = max(s.MaxZIndex, p.ZIndex)
		}
		return s

	case PolaroidDragEnd:
		if !finite(a.X, a.Y) {
			return s
		}
		return updatePolaroid(s, a.ID, func(p *polaroid.Polaroid) {
			p.X = geometry.Clamp(a.X, 0, PolaroidBoundsWidth-p.Width)
			p.Y = geometry.Clamp(a.Y, 0, PolaroidBoundsHeight-p.Height)
		})

	case PolaroidBringToFront:
		if _, ok := s.Polaroid(a.ID); !ok {
			return s
		}
		z := s.MaxZIndex + 1
		s = updatePolaroid(s, a.ID, func(p *polaroid.Polaroid) { p.ZIndex = z })
		s.MaxZIndex = z
		return s

	case NotecardOpen:
		s.CraftPanel.ActiveNotecard = a.Notecard
		return s

	case NotecardClose:
		s.CraftPanel.ActiveNotecard = NotecardNone
		return s
	}
	return s
}

// layoutAll lays out every heading from scratch, substituting manually moved
// tiles from existing by id.
func (r *Reducer) layoutAll(headings []layout.Heading, existing []layout.Tile, m board.Metrics) []layout.Tile {
	manual := make(map[string]layout.Tile)
	for _, t := range existing {
		if t.ManuallyMoved {
			manual[t.ID] = t
		}
	}

	var tiles []layout.Tile
	for _, h := range headings {
		for _, t := range layout.LayoutTiles(h, m, r.measure, r.fontFamily) {
			if mt, ok := manual[t.ID]; ok {
				t = mt
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// updatePolaroid applies fn to the polaroid with id in whichever collection
// holds it. Collections without a match are shared with s unchanged.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func updatePolaroid(s State, id string, fn func(*polaroid.Polaroid)) State {
	s.Panel.HeroPolaroids = updateIn(s.Panel.HeroPolaroids, id, fn)
	s.Panel.GalleryPolaroids = updateIn(s.Panel.GalleryPolaroids, id, fn)
	return s
}

func updateIn(ps []polaroid.Polaroid, id string, fn func(*polaroid.Polaroid)) []polaroid.Polaroid {
	i := slices.IndexFunc(ps, func(p polaroid.Polaroid) bool { return p.ID == id })
	if i < 0 {
		return ps
	}
	ps = slices.Clone(ps)
	fn(&ps[i])
	return ps
}

// headingID derives a stable id for the index-th heading.
func headingID(index int, level layout.Level, text string) string {
	return uuid.NewSHA1(headingNamespace, fmt.Appendf(nil, "%d:%s:%s", index, level, text)).String()
}
