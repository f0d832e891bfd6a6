package board

// SVG viewbox geometry of the board background. Metrics scale these by the
// rendered board height.
const (
	ViewBoxWidth  = 1200.0
	ViewBoxHeight = 250.0
	RowHeight     = 15.0
	GrooveSnapY   = 13.0
)

// Metrics is a snapshot of the measured board.
type Metrics struct {
	Width          float64 `json:"width" toml:"width"`
	Height         float64 `json:"height" toml:"height"`
	RowHeightPx    float64 `json:"rowHeightPx" toml:"row_height_px"`
	GrooveOffsetPx float64 `json:"grooveOffsetPx" toml:"groove_offset_px"`
	ScaleFactor    float64 `json:"scaleFactor" toml:"scale_factor"`
}

// Measure derives metrics from the rendered board rectangle. The scale factor
// is board-relative: rendered height over viewbox height.
func Measure(width, height float64) Metrics {
	scale := 0.0
	if height > 0 {
		scale = height / ViewBoxHeight
	}
	return Metrics{
		Width:          width,
		Height:         height,
		RowHeightPx:    RowHeight * scale,
		GrooveOffsetPx: GrooveSnapY * scale,
		ScaleFactor:    scale,
	}
}

// RowY returns the y coordinate of the groove for row.
func (m Metrics) RowY(row int) float64 {
	return float64(row)*m.RowHeightPx + m.GrooveOffsetPx
}

// SameSize reports whether m and o describe a board of the same rendered size.
func (m Metrics) SameSize(o Metrics) bool {
	return m.Width == o.Width && m.Height == o.Height
}
