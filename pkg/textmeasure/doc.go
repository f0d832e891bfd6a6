// Package textmeasure measures the rendered width of tile glyphs.
//
// Layout engines depend on the [Measurer] capability only. Implementations
// must never fail: when real measurement is unavailable they degrade to
// [Estimate], the documented fallback of 0.6 × font size per rune.
//
// [FontMeasurer] measures advance widths from a parsed TrueType font using
// golang/freetype. With no font supplied it uses the embedded Go Regular
// face, so results are stable across machines.
package textmeasure
