package layout

import (
	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/textmeasure"
)

// MenuPaddingPx is the left inset of menu tiles.
const MenuPaddingPx = 16.0

// defaultMenuRow is used for menu text missing from the row table.
const defaultMenuRow = 5

// menuRows places navigation items on their own rows, separate from the
// content heading rows.
var menuRows = map[string]int{
	"Journey": 5,
	"Craft":   7,
	"Gallery": 9,
	"Contact": 11,
}

// MenuItems lists the navigation phrases in board order.
var MenuItems = []string{"Journey", "Craft", "Gallery", "Contact"}

// IsMenuItem reports whether text is a navigation item.
func IsMenuItem(text string) bool {
	_, ok := menuRows[text]
	return ok
}

// MenuRowIndex returns the groove row of a navigation item.
func MenuRowIndex(text string) int {
	if row, ok := menuRows[text]; ok {
		return row
	}
	return defaultMenuRow
}

// LayoutMenuTiles returns a single tile spanning the whole phrase of h,
// left-aligned at [MenuPaddingPx].
func LayoutMenuTiles(h Heading, m board.Metrics, measure textmeasure.Measurer, fontFamily string) []Tile {
	fontSize := FontSizeForHeading(h.Level, m.Width)
	return []Tile{{
		ID:           TileID(h.ID, 0),
		HeadingID:    h.ID,
		HeadingLevel: h.Level,
		Index:        0,
		Char:         h.Text,
		X:            MenuPaddingPx,
		Y:            m.RowY(MenuRowIndex(h.Text)),
		Width:        measure.Measure(h.Text, fontSize, fontFamily),
		FontSizePx:   fontSize,
	}}
}

// LayoutTiles dispatches h to the menu or content layout.
func LayoutTiles(h Heading, m board.Metrics, measure textmeasure.Measurer, fontFamily string) []Tile {
	if IsMenuItem(h.Text) {
		return LayoutMenuTiles(h, m, measure, fontFamily)
	}
	return LayoutHeadingTiles(h, m, measure, fontFamily)
}
