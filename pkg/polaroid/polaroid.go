package polaroid

import "github.com/matzehuels/letterboard/pkg/geometry"

// Polaroid is a rotated, draggable photo. X and Y locate the top-left corner
// of the unrotated frame; rotation is about the frame centre.
type Polaroid struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Caption  string  `json:"caption,omitempty"`
	ZIndex   int     `json:"zIndex"`
}

// Frame returns the unrotated frame rectangle.
func (p Polaroid) Frame() geometry.Rect {
	return geometry.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Bounds returns the axis-aligned box covered by the rotated frame.
func (p Polaroid) Bounds() geometry.Rect {
	return geometry.RotatedRect(p.Frame(), p.Rotation)
}

// Image is a catalog entry.
type Image struct {
	Src     string
	Caption string
}

// HeroImages are shown side by side on the hero panel.
var HeroImages = []Image{
	{Src: "/main_jim.webp", Caption: "Jim"},
	{Src: "/main_heart.webp", Caption: "Coffee + Community"},
}

// GalleryImages are scattered on the gallery panel, in z order.
var GalleryImages = []Image{
	{Src: "/Gallery_dark.webp", Caption: "Dark Matter: Daily Driver"},
	{Src: "/Gallery_failfoam.webp", Caption: "Foam Fail - Over steamed"},
	{Src: "/Gallery_heritage.webp", Caption: "Heritage Bikes & Coffee"},
	{Src: "/Gallery_Ireland.webp", Caption: "Hunting Coffee Fav part of travel (Ireland)"},
	{Src: "/Gallery_latte.webp", Caption: "A decent latte attempt"},
	{Src: "/Gallery_madcap.webp", Caption: "Fav MI Coffee"},
	{Src: "/Gallery_sparrow.webp", Caption: "Solid Coffee - Sparrow"},
	{Src: "/Gallery_tina.webp", Caption: "Tina <3 Pup Cups"},
	{Src: "/Gallery_wifefav.webp", Caption: "Wife's fav: Cinnamon Foam Latte"},
}

// Sizes are the gallery frame presets.
var Sizes = []geometry.Size{
	{Width: 180, Height: 220},
	{Width: 200, Height: 240},
	{Width: 220, Height: 260},
}
