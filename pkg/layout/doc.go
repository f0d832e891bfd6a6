// Package layout turns headings into positioned letterboard tiles.
//
// # Content Headings
//
// [LayoutHeadingTiles] lays out one tile per non-space character. Every tile
// in a heading gets the same column width, the widest glyph in the heading
// (never less than 0.6 × font size), the way a physical letterboard uses
// fixed-width slots. Tiles advance by column width plus a letter gap of
// 0.18 em, words are separated by an extra 0.85 em, and the finished row is
// centred on the board.
//
// Font size follows a board-relative clamp per level:
//
//	size = clamp(minRem, boardWidth/100 × vw, maxRem) × 16
//
// and each level sits on a fixed groove row (H1→2, H2→5, H3→8, H4→11).
//
// # Menu Items
//
// Navigation headings ("Journey", "Craft", "Gallery", "Contact") are laid
// out by [LayoutMenuTiles] as a single tile holding the whole phrase,
// left-aligned on its own row (5, 7, 9, 11). [IsMenuItem] classifies a
// heading by exact text match.
//
// # Tile Identity
//
// Tile ids are "<headingID>-<index>", so a re-layout produces the same ids
// and callers can carry manually placed tiles across reflows.
package layout
