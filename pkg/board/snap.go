package board

import (
	"math"

	"github.com/matzehuels/letterboard/pkg/geometry"
)

// tileHeightRatio is the rendered tile height relative to its font size.
const tileHeightRatio = 1.2

// Extent is the footprint of a tile on the board.
type Extent struct {
	Width      float64
	FontSizePx float64
}

// Height returns the rendered tile height.
func (e Extent) Height() float64 { return e.FontSizePx * tileHeightRatio }

// SnapToGroove moves y to the nearest groove row and clamps the point so the
// tile stays within the board. A board without a row pitch only clamps.
func SnapToGroove(x, y float64, e Extent, m Metrics) geometry.Point {
	if m.RowHeightPx > 0 {
		row := math.Round((y - m.GrooveOffsetPx) / m.RowHeightPx)
		y = row*m.RowHeightPx + m.GrooveOffsetPx
	}
	return ClampToBounds(x, y, e, m)
}

// ClampToBounds clamps the point into [0, width-tileWidth] × [0, height-tileHeight].
func ClampToBounds(x, y float64, e Extent, m Metrics) geometry.Point {
	return geometry.Point{
		X: geometry.Clamp(x, 0, m.Width-e.Width),
		Y: geometry.Clamp(y, 0, m.Height-e.Height()),
	}
}
