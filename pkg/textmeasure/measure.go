package textmeasure

import (
	"math"
	"sync"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/letterboard/pkg/errors"
)

// EstimateRatio is the fallback glyph width relative to the font size.
const EstimateRatio = 0.6

// DefaultFontFamily is the letterboard display face.
const DefaultFontFamily = `"LetterboardWhite Pixillo"`

// Measurer returns the rendered width in pixels of text at fontSizePx.
type Measurer interface {
	Measure(text string, fontSizePx float64, fontFamily string) float64
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string, fontSizePx float64, fontFamily string) float64

// Measure calls f.
func (f MeasureFunc) Measure(text string, fontSizePx float64, fontFamily string) float64 {
	return f(text, fontSizePx, fontFamily)
}

// Estimate approximates text width without a font.
func Estimate(text string, fontSizePx float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSizePx * EstimateRatio
}

// Estimator is a Measurer that always returns [Estimate].
type Estimator struct{}

// Measure implements Measurer.
func (Estimator) Measure(text string, fontSizePx float64, _ string) float64 {
	return Estimate(text, fontSizePx)
}

type faceKey struct {
	family string
	size   float64
}

// FontMeasurer measures glyph advances from TrueType fonts. Faces are cached
// per family and size. It is safe for concurrent use.
type FontMeasurer struct {
	mu       sync.Mutex
	fonts    map[string]*truetype.Font
	fallback *truetype.Font
	faces    map[faceKey]font.Face
}

// NewFontMeasurer creates a measurer whose fallback face is parsed from ttf.
// A nil ttf selects the embedded Go Regular font.
func NewFontMeasurer(ttf []byte) (*FontMeasurer, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "parse fallback font")
	}
	return &FontMeasurer{
		fonts:    make(map[string]*truetype.Font),
		fallback: f,
		faces:    make(map[faceKey]font.Face),
	}, nil
}

// Register associates a font family name with TrueType data.
func (m *FontMeasurer) Register(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFontLoad, err, "parse font %q", family)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[family] = f
	for k := range m.faces {
		if k.family == family {
			delete(m.faces, k)
		}
	}
	return nil
}

// Measure implements Measurer. Unregistered families use the fallback font;
// non-positive sizes and non-finite results fall back to [Estimate].
func (m *FontMeasurer) Measure(text string, fontSizePx float64, fontFamily string) float64 {
	if text == "" {
		return 0
	}
	if fontSizePx <= 0 || math.IsNaN(fontSizePx) || math.IsInf(fontSizePx, 0) {
		return Estimate(text, fontSizePx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.face(fontFamily, fontSizePx)
	if face == nil {
		return Estimate(text, fontSizePx)
	}
	w := float64(font.MeasureString(face, text)) / 64
	if w <= 0 || math.IsNaN(w) {
		return Estimate(text, fontSizePx)
	}
	return w
}

// face returns a cached face; m.mu must be held.
func (m *FontMeasurer) face(family string, size float64) font.Face {
	key := faceKey{family: family, size: size}
	if f, ok := m.faces[key]; ok {
		return f
	}
	ttf, ok := m.fonts[family]
	if !ok {
		ttf = m.fallback
	}
	if ttf == nil {
		return nil
	}
	// 72 DPI makes one point equal one pixel.
	f := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	m.faces[key] = f
	return f
}
