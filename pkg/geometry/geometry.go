package geometry

import "math"

// Point is a position in board coordinates.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Within reports whether r lies entirely inside outer.
func (r Rect) Within(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y && r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

// RotatedBounds returns the axis-aligned bounding box of a width×height
// rectangle rotated by angleDegrees about its centre.
func RotatedBounds(width, height, angleDegrees float64) Size {
	rad := math.Abs(angleDegrees) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Size{
		Width:  math.Abs(width*cos) + math.Abs(height*sin),
		Height: math.Abs(width*sin) + math.Abs(height*cos),
	}
}

// RotatedRect returns the bounding box of r rotated by angleDegrees about
// its own centre. The result shares r's centre.
func RotatedRect(r Rect, angleDegrees float64) Rect {
	s := RotatedBounds(r.Width, r.Height, angleDegrees)
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	return Rect{X: cx - s.Width/2, Y: cy - s.Height/2, Width: s.Width, Height: s.Height}
}

// Clamp restricts v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
