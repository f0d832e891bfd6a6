package layout

import (
	"fmt"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/errors"
)

// Level is a heading level.
type Level string

// Heading levels, largest first.
const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
	H4 Level = "H4"
)

// Levels lists every heading level in size order.
var Levels = []Level{H1, H2, H3, H4}

// ParseLevel validates s as a heading level.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case H1, H2, H3, H4:
		return l, nil
	}
	return "", errors.New(errors.ErrCodeInvalidLevel, "unknown heading level %q (want H1, H2, H3 or H4)", s)
}

// Heading is a static content definition.
type Heading struct {
	ID    string `json:"id" toml:"id"`
	Level Level  `json:"level" toml:"level"`
	Text  string `json:"text" toml:"text"`
}

// Tile is one positioned glyph, or one whole phrase for menu items.
type Tile struct {
	ID            string  `json:"id"`
	HeadingID     string  `json:"headingId"`
	HeadingLevel  Level   `json:"headingLevel"`
	Index         int     `json:"index"`
	Char          string  `json:"char"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	FontSizePx    float64 `json:"fontSizePx"`
	ManuallyMoved bool    `json:"manuallyMoved"`
}

// Extent returns the tile footprint used for snapping.
func (t Tile) Extent() board.Extent {
	return board.Extent{Width: t.Width, FontSizePx: t.FontSizePx}
}

// TileID derives the id of the index-th tile of a heading.
func TileID(headingID string, index int) string {
	return fmt.Sprintf("%s-%d", headingID, index)
}

// remPx converts rem to pixels.
const remPx = 16.0

type sizeRange struct {
	minRem, maxRem, vw float64
}

var headingSizes = map[Level]sizeRange{
	H1: {minRem: 5, maxRem: 12, vw: 0.14},
	H2: {minRem: 3, maxRem: 8, vw: 0.10},
	H3: {minRem: 2.5, maxRem: 6, vw: 0.08},
	H4: {minRem: 2, maxRem: 5, vw: 0.06},
}

var headingRows = map[Level]int{H1: 2, H2: 5, H3: 8, H4: 11}

// FontSizeForHeading returns the font size in pixels for level on a board of
// the given width. Unknown levels size as H4.
func FontSizeForHeading(level Level, boardWidthPx float64) float64 {
	r, ok := headingSizes[level]
	if !ok {
		r = headingSizes[H4]
	}
	rem := max(r.minRem, min((boardWidthPx/100)*r.vw, r.maxRem))
	return rem * remPx
}

// RowIndexForHeading returns the groove row for level. Unknown levels sit
// on the H4 row.
func RowIndexForHeading(level Level) int {
	if row, ok := headingRows[level]; ok {
		return row
	}
	return headingRows[H4]
}
