package letterboard

import (
	"context"
	"math/rand/v2"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/layout"
)

// GalleryStageRatio is the share of the board width used as the gallery
// container when the gallery opens before the stage is measured.
const GalleryStageRatio = 0.8

// Controller turns external events into actions the way the application
// shell does: measurements trigger reflows only when needed, and opening the
// gallery generates its polaroids. It is not safe for concurrent use.
type Controller struct {
	store      *Store
	rng        *rand.Rand
	lastReflow *board.Metrics
}

// NewController wraps store. Gallery seeds are drawn from seed.
func NewController(store *Store, seed uint64) *Controller {
	return &Controller{
		store: store,
		rng:   rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
	}
}

// Store returns the underlying store.
func (c *Controller) Store() *Store { return c.store }

// State returns the current state.
func (c *Controller) State() State { return c.store.State() }

// FontReady records that fonts loaded and lays out if the board is measured.
func (c *Controller) FontReady(ctx context.Context) State {
	c.store.Dispatch(ctx, FontReady{})
	return c.maybeReflow(ctx)
}

// BoardMeasured records a measurement and lays out if the board size changed
// or nothing has been laid out yet.
func (c *Controller) BoardMeasured(ctx context.Context, m board.Metrics) State {
	c.store.Dispatch(ctx, BoardMeasured{Metrics: m})
	return c.maybeReflow(ctx)
}

func (c *Controller) maybeReflow(ctx context.Context) State {
	st := c.store.State()
	if !st.Ready() {
		return st
	}
	changed := c.lastReflow == nil || !c.lastReflow.SameSize(*st.BoardMetrics)
	if !changed && len(st.Tiles) > 0 {
		return st
	}
	m := *st.BoardMetrics
	c.lastReflow = &m
	return c.store.Dispatch(ctx, ReflowLayout{})
}

// AddHeading appends a heading.
func (c *Controller) AddHeading(ctx context.Context, level layout.Level, text string) State {
	return c.store.Dispatch(ctx, AddHeading{Level: level, Text: text})
}

// OpenPanel navigates to p. Opening the gallery with a measured board also
// generates polaroids for a stage of 0.8 × board width by board height.
func (c *Controller) OpenPanel(ctx context.Context, p PanelType) State {
	st := c.store.Dispatch(ctx, PanelOpen{Panel: p})
	if p == PanelGallery && st.BoardMetrics != nil {
		m := st.BoardMetrics
		st = c.RegenerateGallery(ctx, m.Width*GalleryStageRatio, m.Height)
	}
	return st
}

// OpenMenuItem opens the panel of a navigation phrase. Unknown phrases leave
// the state unchanged.
func (c *Controller) OpenMenuItem(ctx context.Context, text string) State {
	p, ok := PanelForMenuItem(text)
	if !ok {
		return c.store.State()
	}
	return c.OpenPanel(ctx, p)
}

// RegenerateGallery replaces the gallery polaroids for a measured container.
func (c *Controller) RegenerateGallery(ctx context.Context, width, height float64) State {
	return c.store.Dispatch(ctx, GenerateGalleryPolaroids{Width: width, Height: height, Seed: c.rng.Uint64()})
}

// ClosePanel returns to the hero panel.
func (c *Controller) ClosePanel(ctx context.Context) State {
	return c.store.Dispatch(ctx, PanelClose{})
}

// DragTile drags a tile by (dx, dy) from its current position and commits it.
// Unknown tiles leave the state unchanged.
func (c *Controller) DragTile(ctx context.Context, id string, dx, dy float64) State {
	t, ok := c.store.State().Tile(id)
	if !ok {
		return c.store.State()
	}
	c.store.Dispatch(ctx, DragStart{TileID: id})
	return c.store.Dispatch(ctx, DragEnd{TileID: id, X: t.X + dx, Y: t.Y + dy})
}

// DragPolaroid commits a polaroid drag at (x, y).
func (c *Controller) DragPolaroid(ctx context.Context, id string, x, y float64) State {
	return c.store.Dispatch(ctx, PolaroidDragEnd{ID: id, X: x, Y: y})
}

// BringToFront raises a polaroid above all others.
func (c *Controller) BringToFront(ctx context.Context, id string) State {
	return c.store.Dispatch(ctx, PolaroidBringToFront{ID: id})
}

// OpenNotecard shows a craft drill-down.
func (c *Controller) OpenNotecard(ctx context.Context, n NotecardType) State {
	return c.store.Dispatch(ctx, NotecardOpen{Notecard: n})
}

// CloseNotecard hides the craft drill-down.
func (c *Controller) CloseNotecard(ctx context.Context) State {
	return c.store.Dispatch(ctx, NotecardClose{})
}
