// Package board models the measured letterboard surface and the groove grid
// that tiles snap to.
//
// [Metrics] is an immutable snapshot supplied by an external measurement
// collaborator. Every length is expressed in the board's own coordinate
// system, scaled from the SVG viewbox by the board's rendered height, so a
// wide browser window never changes the groove pitch on its own.
//
// # Snapping
//
// [SnapToGroove] rounds a y coordinate to the nearest groove
// (round((y-offset)/rowHeight)*rowHeight + offset) and clamps both axes so
// the tile stays on the board. [ClampToBounds] clamps without rounding and is
// used for elements that do not sit in grooves.
package board
