package polaroid

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/matzehuels/letterboard/pkg/geometry"
)

// Placement constants.
const (
	GalleryPadding     = 30.0
	GalleryMaxRotation = 5.0
	BaseZIndex         = 10

	HeroWidth       = 280.0
	HeroHeight      = 340.0
	HeroGap         = 40.0
	HeroMaxRotation = 2.0
	HeroYRatio      = 0.5
)

// DefaultGalleryCount shows every catalog image once.
var DefaultGalleryCount = len(GalleryImages)

// Rand is the random source used for placement.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Generator creates polaroid placements.
type Generator struct {
	rng   Rand
	newID func() string
}

// NewGenerator creates a generator drawing from rng. A nil newID assigns
// random UUIDs.
func NewGenerator(rng Rand, newID func() string) *Generator {
	if newID == nil {
		newID = func() string { return "polaroid-" + uuid.NewString() }
	}
	return &Generator{rng: rng, newID: newID}
}

// NewSeeded creates a generator whose positions, rotations and ids are all
// derived from seed.
func NewSeeded(seed uint64) *Generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], seed^0xdeadbeef)
	src := rand.NewChaCha8(key)
	return &Generator{
		rng: rand.New(src),
		newID: func() string {
			// ChaCha8 reads never fail.
			return "polaroid-" + uuid.Must(uuid.NewRandomFromReader(src)).String()
		},
	}
}

func (g *Generator) rotation(limit float64) float64 {
	return g.rng.Float64()*2*limit - limit
}

// Gallery places count photos inside a width×height container, cycling
// through [GalleryImages] when count exceeds the catalog.
func (g *Generator) Gallery(width, height float64, count int) []Polaroid {
	if count <= 0 {
		return nil
	}
	out := make([]Polaroid, 0, count)
	for i := range count {
		img := GalleryImages[i%len(GalleryImages)]
		size := Sizes[g.rng.IntN(len(Sizes))]
		rot := g.rotation(GalleryMaxRotation)
		rb := geometry.RotatedBounds(size.Width, size.Height, rot)

		maxX := max(GalleryPadding, width-rb.Width-GalleryPadding)
		maxY := max(GalleryPadding, height-rb.Height-GalleryPadding)

		out = append(out, Polaroid{
			ID:       g.newID(),
			X:        GalleryPadding + g.rng.Float64()*(maxX-GalleryPadding),
			Y:        GalleryPadding + g.rng.Float64()*(maxY-GalleryPadding),
			Rotation: rot,
			Width:    size.Width,
			Height:   size.Height,
			ImageURL: img.Src,
			Caption:  img.Caption,
			ZIndex:   BaseZIndex + i,
		})
	}
	return out
}

// Hero places the hero photos side by side, centred horizontally at half the
// container height.
func (g *Generator) Hero(width, height float64) []Polaroid {
	out := make([]Polaroid, 0, len(HeroImages))
	for i, img := range HeroImages {
		rot := g.rotation(HeroMaxRotation)
		rb := geometry.RotatedBounds(HeroWidth, HeroHeight, rot)

		pair := rb.Width*2 + HeroGap
		startX := (width - pair) / 2

		out = append(out, Polaroid{
			ID:       g.newID(),
			X:        startX + float64(i)*(rb.Width+HeroGap),
			Y:        height * HeroYRatio,
			Rotation: rot,
			Width:    HeroWidth,
			Height:   HeroHeight,
			ImageURL: img.Src,
			Caption:  img.Caption,
			ZIndex:   BaseZIndex + i,
		})
	}
	return out
}
