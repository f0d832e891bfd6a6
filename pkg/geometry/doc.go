// Package geometry provides the small amount of planar math shared by the
// letterboard layout engines.
//
// All values are float64 in board user units (pixels of the measured board,
// never of the viewport). Angles are in degrees at the API surface and are
// converted to radians internally.
//
// # Rotated Bounds
//
// [RotatedBounds] returns the axis-aligned bounding box of a rectangle
// rotated about its centre:
//
//	w' = |w·cosθ| + |h·sinθ|
//	h' = |w·sinθ| + |h·cosθ|
//
// The sign of the angle does not matter, so RotatedBounds(w, h, θ) equals
// RotatedBounds(w, h, -θ), and a zero angle returns the input unchanged.
package geometry
