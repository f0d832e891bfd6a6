package letterboard

import (
	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/layout"
)

// ActionType is the wire name of an action.
type ActionType string

// Action types.
const (
	TypeFontReady                ActionType = "FONT_READY"
	TypeBoardMeasured            ActionType = "BOARD_MEASURED"
	TypeAddHeading               ActionType = "ADD_HEADING"
	TypeReflowLayout             ActionType = "INIT_OR_REFLOW_LAYOUT"
	TypeDragStart                ActionType = "DRAG_START"
	TypeDragEnd                  ActionType = "DRAG_END"
	TypePanelOpen                ActionType = "PANEL_OPEN"
	TypePanelClose               ActionType = "PANEL_CLOSE"
	TypeGenerateGalleryPolaroids ActionType = "GALLERY_GENERATE_POLAROIDS"
	TypePolaroidDragEnd          ActionType = "POLAROID_DRAG_END"
	TypePolaroidBringToFront     ActionType = "POLAROID_BRING_TO_FRONT"
	TypeNotecardOpen             ActionType = "NOTECARD_OPEN"
	TypeNotecardClose            ActionType = "NOTECARD_CLOSE"
)

// Action is a state transition request. The set of implementations is
// closed to this package.
type Action interface {
	Type() ActionType
	isAction()
}

// FontReady marks the display font usable.
type FontReady struct{}

// BoardMeasured stores a board metrics snapshot.
type BoardMeasured struct {
	Metrics board.Metrics
}

// AddHeading appends a heading and re-lays the board. The reducer assigns
// the heading id.
type AddHeading struct {
	Level layout.Level
	Text  string
}

// ReflowLayout re-lays every heading, keeping manually moved tiles.
type ReflowLayout struct{}

// DragStart is informational; it does not change state.
type DragStart struct {
	TileID string
}

// DragEnd commits a tile drag at (X, Y), snapped to the nearest groove.
type DragEnd struct {
	TileID string
	X, Y   float64
}

// PanelOpen navigates to a panel.
type PanelOpen struct {
	Panel PanelType
}

// PanelClose returns to the hero panel.
type PanelClose struct{}

// GenerateGalleryPolaroids replaces the gallery set for a container of the
// given size. Seed determines sizes, rotations, positions and ids.
type GenerateGalleryPolaroids struct {
	Width, Height float64
	Seed          uint64
}

// PolaroidDragEnd commits a polaroid drag at (X, Y).
type PolaroidDragEnd struct {
	ID   string
	X, Y float64
}

// PolaroidBringToFront raises a polaroid above all others.
type PolaroidBringToFront struct {
	ID string
}

// NotecardOpen shows a craft drill-down.
type NotecardOpen struct {
	Notecard NotecardType
}

// NotecardClose hides the craft drill-down.
type NotecardClose struct{}

func (FontReady) Type() ActionType                { return TypeFontReady }
func (BoardMeasured) Type() ActionType            { return TypeBoardMeasured }
func (AddHeading) Type() ActionType               { return TypeAddHeading }
func (ReflowLayout) Type() ActionType             { return TypeReflowLayout }
func (DragStart) Type() ActionType                { return TypeDragStart }
func (DragEnd) Type() ActionType                  { return TypeDragEnd }
func (PanelOpen) Type() ActionType                { return TypePanelOpen }
func (PanelClose) Type() ActionType               { return TypePanelClose }
func (GenerateGalleryPolaroids) Type() ActionType { return TypeGenerateGalleryPolaroids }
func (PolaroidDragEnd) Type() ActionType          { return TypePolaroidDragEnd }
func (PolaroidBringToFront) Type() ActionType     { return TypePolaroidBringToFront }
func (NotecardOpen) Type() ActionType             { return TypeNotecardOpen }
func (NotecardClose) Type() ActionType            { return TypeNotecardClose }

func (FontReady) isAction()                {}
func (BoardMeasured) isAction()            {}
func (AddHeading) isAction()               {}
func (ReflowLayout) isAction()             {}
func (DragStart) isAction()                {}
func (DragEnd) isAction()                  {}
func (PanelOpen) isAction()                {}
func (PanelClose) isAction()               {}
func (GenerateGalleryPolaroids) isAction() {}
func (PolaroidDragEnd) isAction()          {}
func (PolaroidBringToFront) isAction()     {}
func (NotecardOpen) isAction()             {}
func (NotecardClose) isAction()            {}
