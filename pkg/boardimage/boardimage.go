// Package boardimage rasterizes a letterboard state to PNG.
//
// The board is drawn at its measured pixel size: a dark felt background,
// one groove line per row and every tile's glyph centred in its footprint.
// When the gallery panel is open its polaroids are drawn on a stage below
// the board, rotated about their centres and stacked by z-index.
package boardimage

import (
	"image"
	"io"
	"slices"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/letterboard"
	"github.com/matzehuels/letterboard/pkg/polaroid"
)

// Colours.
const (
	feltColor    = "#1f1d1b"
	grooveColor  = "#34312d"
	tileColor    = "#f4f1ea"
	manualColor  = "#f2c14e"
	stageColor   = "#e9e4da"
	frameColor   = "#fdfcf8"
	photoColor   = "#8a8275"
	captionColor = "#3b3733"
)

// polaroidPhotoInset is the frame margin around the photo area.
const polaroidPhotoInset = 0.08

// Options configures rendering.
type Options struct {
	// Font draws the glyphs. Nil uses the embedded Go Regular face.
	Font *truetype.Font

	// StageHeight is the gallery stage height. Zero uses the tallest extent
	// of the gallery polaroids.
	StageHeight float64
}

// Renderer draws states. It caches one face per font size and is not safe
// for concurrent use.
type Renderer struct {
	font  *truetype.Font
	opts  Options
	faces map[float64]font.Face
}

// New creates a renderer.
func New(opts Options) (*Renderer, error) {
	f := opts.Font
	if f == nil {
		var err error
		if f, err = truetype.Parse(goregular.TTF); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "parse embedded font")
		}
	}
	return &Renderer{font: f, opts: opts, faces: make(map[float64]font.Face)}, nil
}

func (r *Renderer) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	r.faces[size] = f
	return f
}

// Render draws s. The board must be measured.
func (r *Renderer) Render(s letterboard.State) (image.Image, error) {
	dc, err := r.draw(s)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders s and encodes it to w.
func (r *Renderer) WritePNG(s letterboard.State, w io.Writer) error {
	dc, err := r.draw(s)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "encode PNG")
	}
	return nil
}

func (r *Renderer) draw(s letterboard.State) (*gg.Context, error) {
	bm := s.BoardMetrics
	if bm == nil || bm.Width < 1 || bm.Height < 1 {
		return nil, errors.New(errors.ErrCodeRender, "board is not measured")
	}

	var gallery []polaroid.Polaroid
	if s.Panel.IsPanelOpen && s.Panel.ActivePanel == letterboard.PanelGallery {
		gallery = s.Panel.GalleryPolaroids
	}
	stageH := r.stageHeight(gallery)

	dc := gg.NewContext(int(bm.Width), int(bm.Height+stageH))
	dc.SetHexColor(feltColor)
	dc.DrawRectangle(0, 0, bm.Width, bm.Height)
	dc.Fill()

	if bm.RowHeightPx > 0 {
		dc.SetHexColor(grooveColor)
		dc.SetLineWidth(1)
		for row := 0; bm.RowY(row) < bm.Height; row++ {
			y := bm.RowY(row)
			dc.DrawLine(0, y, bm.Width, y)
			dc.Stroke()
		}
	}

	for _, t := range s.Tiles {
		if t.ManuallyMoved {
			dc.SetHexColor(manualColor)
		} else {
			dc.SetHexColor(tileColor)
		}
		e := t.Extent()
		dc.SetFontFace(r.face(t.FontSizePx))
		dc.DrawStringAnchored(t.Char, t.X+e.Width/2, t.Y+e.Height()/2, 0.5, 0.35)
	}

	if stageH > 0 {
		r.drawStage(dc, gallery, bm.Height, bm.Width, stageH)
	}
	return dc, nil
}

func (r *Renderer) stageHeight(ps []polaroid.Polaroid) float64 {
	if len(ps) == 0 {
		return 0
	}
	if r.opts.StageHeight > 0 {
		return r.opts.StageHeight
	}
	h := 0.0
	for _, p := range ps {
		h = max(h, p.Bounds().Bottom())
	}
	return h
}

func (r *Renderer) drawStage(dc *gg.Context, ps []polaroid.Polaroid, top, width, height float64) {
	dc.SetHexColor(stageColor)
	dc.DrawRectangle(0, top, width, height)
	dc.Fill()

	ordered := slices.Clone(ps)
	slices.SortStableFunc(ordered, func(a, b polaroid.Polaroid) int { return a.ZIndex - b.ZIndex })

	dc.SetFontFace(r.face(12))
	for _, p := range ordered {
		fr := p.Frame()
		cx, cy := fr.X+fr.Width/2, top+fr.Y+fr.Height/2
		inset := fr.Width * polaroidPhotoInset

		dc.Push()
		dc.RotateAbout(gg.Radians(p.Rotation), cx, cy)
		dc.SetHexColor(frameColor)
		dc.DrawRectangle(fr.X, top+fr.Y, fr.Width, fr.Height)
		dc.Fill()
		dc.SetHexColor(photoColor)
		dc.DrawRectangle(fr.X+inset, top+fr.Y+inset, fr.Width-2*inset, fr.Width-2*inset)
		dc.Fill()
		dc.SetHexColor(captionColor)
		dc.DrawStringAnchored(p.Caption, cx, top+fr.Y+fr.Width-inset+(fr.Height-fr.Width+inset)/2, 0.5, 0.5)
		dc.Pop()
	}
}
