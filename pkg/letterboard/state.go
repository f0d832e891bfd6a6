package letterboard

import (
	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/polaroid"
)

// PanelType names a full-stage content view.
type PanelType string

// Panels.
const (
	PanelHero    PanelType = "hero"
	PanelJourney PanelType = "journey"
	PanelCraft   PanelType = "craft"
	PanelGallery PanelType = "gallery"
	PanelContact PanelType = "contact"
)

// Panels lists every panel, default first.
var Panels = []PanelType{PanelHero, PanelJourney, PanelCraft, PanelGallery, PanelContact}

// ParsePanel validates s as a panel name.
func ParsePanel(s string) (PanelType, error) {
	for _, p := range Panels {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidPanel, "unknown panel %q", s)
}

// PanelForMenuItem maps a navigation phrase to its panel.
func PanelForMenuItem(text string) (PanelType, bool) {
	switch text {
	case "Journey":
		return PanelJourney, true
	case "Craft":
		return PanelCraft, true
	case "Gallery":
		return PanelGallery, true
	case "Contact":
		return PanelContact, true
	}
	return "", false
}

// NotecardType names a craft drill-down. The zero value means none.
type NotecardType string

// Notecards.
const (
	NotecardNone   NotecardType = ""
	NotecardEncore NotecardType = "encore"
	NotecardV60    NotecardType = "v60"
)

// ParseNotecard validates s as an openable notecard.
func ParseNotecard(s string) (NotecardType, error) {
	switch n := NotecardType(s); n {
	case NotecardEncore, NotecardV60:
		return n, nil
	}
	return NotecardNone, errors.New(errors.ErrCodeInvalidNotecard, "unknown notecard %q (want encore or v60)", s)
}

// PanelState is the panel navigation layer.
type PanelState struct {
	ActivePanel      PanelType           `json:"activePanel"`
	IsPanelOpen      bool                `json:"isPanelOpen"`
	HeroPolaroids    []polaroid.Polaroid `json:"heroPolaroids"`
	GalleryPolaroids []polaroid.Polaroid `json:"galleryPolaroids"`
}

// CraftPanelState is the craft notecard overlay.
type CraftPanelState struct {
	ActiveNotecard NotecardType `json:"activeNotecard"`
}

// State is the aggregate letterboard state.
type State struct {
	FontReady    bool             `json:"fontReady"`
	BoardMetrics *board.Metrics   `json:"boardMetrics"`
	Headings     []layout.Heading `json:"headings"`
	Tiles        []layout.Tile    `json:"tiles"`
	Panel        PanelState       `json:"panel"`
	CraftPanel   CraftPanelState  `json:"craftPanel"`
	MaxZIndex    int              `json:"maxZIndex"`
}

// InitialMaxZIndex sits above the initial polaroid z-indices.
const InitialMaxZIndex = 100

// Hero placeholder container used before the stage is measured.
const (
	heroPlaceholderWidth  = 800.0
	heroPlaceholderHeight = 600.0
)

// DefaultHeadings are the title and the four navigation items.
func DefaultHeadings() []layout.Heading {
	return []layout.Heading{
		{ID: "h1-1", Level: layout.H1, Text: "James Crook"},
		{ID: "menu-journey", Level: layout.H2, Text: "Journey"},
		{ID: "menu-craft", Level: layout.H2, Text: "Craft"},
		{ID: "menu-gallery", Level: layout.H2, Text: "Gallery"},
		{ID: "menu-contact", Level: layout.H2, Text: "Contact"},
	}
}

// InitialState returns the pre-measurement state: no fonts, no metrics, no
// tiles, the hero panel closed and hero polaroids placed in a placeholder
// container with rotations drawn from seed.
func InitialState(headings []layout.Heading, seed uint64) State {
	return State{
		Headings: append([]layout.Heading(nil), headings...),
		Panel: PanelState{
			ActivePanel:   PanelHero,
			HeroPolaroids: polaroid.NewSeeded(seed).Hero(heroPlaceholderWidth, heroPlaceholderHeight),
		},
		MaxZIndex: InitialMaxZIndex,
	}
}

// Tile returns the tile with id.
func (s State) Tile(id string) (layout.Tile, bool) {
	for _, t := range s.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return layout.Tile{}, false
}

// Polaroid returns the polaroid with id from either collection.
func (s State) Polaroid(id string) (polaroid.Polaroid, bool) {
	for _, p := range s.Panel.HeroPolaroids {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range s.Panel.GalleryPolaroids {
		if p.ID == id {
			return p, true
		}
	}
	return polaroid.Polaroid{}, false
}

// Ready reports whether a layout can run.
func (s State) Ready() bool {
	return s.FontReady && s.BoardMetrics != nil
}
