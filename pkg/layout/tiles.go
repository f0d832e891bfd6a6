package layout

import (
	"strings"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/textmeasure"
)

// Spacing in em, relative to the heading font size.
const (
	LetterSpacingEm = 0.18
	WordSpacingEm   = 0.85
)

// LayoutHeadingTiles lays out one tile per non-space character of h,
// centred horizontally on the board and resting on the level's groove row.
func LayoutHeadingTiles(h Heading, m board.Metrics, measure textmeasure.Measurer, fontFamily string) []Tile {
	fontSize := FontSizeForHeading(h.Level, m.Width)
	y := m.RowY(RowIndexForHeading(h.Level))

	colWidth := fontSize * textmeasure.EstimateRatio
	for _, r := range h.Text {
		if r == ' ' {
			continue
		}
		if w := measure.Measure(string(r), fontSize, fontFamily); w > colWidth {
			colWidth = w
		}
	}
	letterGap := LetterSpacingEm * fontSize
	wordGap := WordSpacingEm * fontSize

	var tiles []Tile
	x := 0.0
	words := strings.Split(h.Text, " ")
	for wi, word := range words {
		for _, r := range word {
			idx := len(tiles)
			tiles = append(tiles, Tile{
				ID:           TileID(h.ID, idx),
				HeadingID:    h.ID,
				HeadingLevel: h.Level,
				Index:        idx,
				Char:         string(r),
				X:            x,
				Y:            y,
				Width:        colWidth,
				FontSizePx:   fontSize,
			})
			x += colWidth + letterGap
		}
		if wi < len(words)-1 {
			x += wordGap
		}
	}
	if len(tiles) == 0 {
		return nil
	}

	// The last advance adds a trailing letter gap that is not part of the row.
	total := x - letterGap
	shift := (m.Width - total) / 2
	for i := range tiles {
		tiles[i].X += shift
	}
	return tiles
}
