package letterboard

import (
	"context"
	"testing"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/polaroid"
)

func newTestController() *Controller {
	return NewController(NewStore(nil, InitialState(DefaultHeadings(), 1), nil), 9)
}

func TestControllerReflowsOnceReady(t *testing.T) {
	ctx := context.Background()
	c := newTestController()

	st := c.BoardMeasured(ctx, board.Measure(1200, 250))
	if len(st.Tiles) != 0 {
		t.Fatal("laid out before fonts loaded")
	}
	st = c.FontReady(ctx)
	if len(st.Tiles) == 0 {
		t.Fatal("no layout after fonts loaded")
	}

	n := c.Store().Dispatched()
	c.BoardMeasured(ctx, board.Measure(1200, 250))
	if got := c.Store().Dispatched(); got != n+1 {
		t.Errorf("same-size measurement dispatched %d actions, want 1", got-n)
	}

	c.BoardMeasured(ctx, board.Measure(900, 250))
	if got := c.Store().Dispatched(); got != n+3 {
		t.Errorf("resize dispatched %d actions, want 2", got-n-1)
	}
}

func TestControllerGallery(t *testing.T) {
	ctx := context.Background()
	c := newTestController()

	st := c.OpenPanel(ctx, PanelGallery)
	if st.Panel.ActivePanel != PanelGallery || len(st.Panel.GalleryPolaroids) != 0 {
		t.Fatalf("unmeasured gallery: %+v", st.Panel)
	}

	c.BoardMeasured(ctx, board.Measure(1200, 250))
	st = c.OpenPanel(ctx, PanelGallery)
	if len(st.Panel.GalleryPolaroids) != polaroid.DefaultGalleryCount {
		t.Fatalf("gallery = %d", len(st.Panel.GalleryPolaroids))
	}
	first := st.Panel.GalleryPolaroids[0].ID

	st = c.RegenerateGallery(ctx, 960, 600)
	if st.Panel.GalleryPolaroids[0].ID == first {
		t.Error("regenerate reused polaroid ids")
	}

	st = c.ClosePanel(ctx)
	if st.Panel.IsPanelOpen || st.Panel.ActivePanel != PanelHero {
		t.Errorf("after close: %+v", st.Panel)
	}
}

func TestControllerOpenMenuItem(t *testing.T) {
	ctx := context.Background()
	c := newTestController()

	tests := []struct {
		text string
		want PanelType
	}{
		{"Journey", PanelJourney},
		{"Craft", PanelCraft},
		{"Contact", PanelContact},
		{"Attic", PanelContact},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			st := c.OpenMenuItem(ctx, tt.text)
			if st.Panel.ActivePanel != tt.want {
				t.Errorf("panel = %q, want %q", st.Panel.ActivePanel, tt.want)
			}
		})
	}
}

func TestControllerDragTile(t *testing.T) {
	ctx := context.Background()
	c := newTestController()
	c.BoardMeasured(ctx, board.Measure(1200, 250))
	st := c.FontReady(ctx)

	tile := st.Tiles[0]
	st = c.DragTile(ctx, tile.ID, 20, 15)
	got, _ := st.Tile(tile.ID)
	if got.X != tile.X+20 || got.Y != tile.Y+15 {
		t.Errorf("pos = (%v, %v), want (%v, %v)", got.X, got.Y, tile.X+20, tile.Y+15)
	}
	if !got.ManuallyMoved {
		t.Error("tile not marked manually moved")
	}

	n := c.Store().Dispatched()
	c.DragTile(ctx, "missing", 1, 1)
	if c.Store().Dispatched() != n {
		t.Error("dragging an unknown tile dispatched actions")
	}
}

func TestControllerPolaroidsAndNotecards(t *testing.T) {
	ctx := context.Background()
	c := newTestController()
	id := c.State().Panel.HeroPolaroids[1].ID

	st := c.BringToFront(ctx, id)
	p, _ := st.Polaroid(id)
	if p.ZIndex != InitialMaxZIndex+1 {
		t.Errorf("z = %d, want %d", p.ZIndex, InitialMaxZIndex+1)
	}
	st = c.DragPolaroid(ctx, id, 50, 60)
	p, _ = st.Polaroid(id)
	if p.X != 50 || p.Y != 60 {
		t.Errorf("pos = (%v, %v)", p.X, p.Y)
	}

	st = c.OpenNotecard(ctx, NotecardEncore)
	if st.CraftPanel.ActiveNotecard != NotecardEncore {
		t.Errorf("notecard = %q", st.CraftPanel.ActiveNotecard)
	}
	st = c.CloseNotecard(ctx)
	if st.CraftPanel.ActiveNotecard != NotecardNone {
		t.Errorf("notecard = %q", st.CraftPanel.ActiveNotecard)
	}
}

func TestNotecardContent(t *testing.T) {
	if len(EncoreGrindSettings) != 4 || EncoreGrindSettings[2].BrewMethod != "V60" {
		t.Errorf("grind settings = %+v", EncoreGrindSettings)
	}
	if V60Recipe[0].Value != "1:15" || V60Recipe[3].LinkURL == "" {
		t.Errorf("recipe = %+v", V60Recipe)
	}
	if NotecardTitle(NotecardNone) != "" || NotecardTitle(NotecardV60) == "" {
		t.Error("unexpected notecard titles")
	}
}
