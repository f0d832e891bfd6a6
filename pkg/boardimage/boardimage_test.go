package boardimage

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/letterboard"
)

func laidOut(t *testing.T, actions ...letterboard.Action) letterboard.State {
	t.Helper()
	r := letterboard.NewReducer()
	s := letterboard.InitialState(letterboard.DefaultHeadings(), 1)
	base := []letterboard.Action{
		letterboard.FontReady{},
		letterboard.BoardMeasured{Metrics: board.Measure(600, 125)},
		letterboard.ReflowLayout{},
	}
	for _, a := range append(base, actions...) {
		s = r.Reduce(s, a)
	}
	return s
}

func TestRenderSize(t *testing.T) {
	r, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name       string
		state      letterboard.State
		wantHeight int
	}{
		{"board only", laidOut(t), 125},
		{
			name: "gallery stage",
			state: laidOut(t,
				letterboard.PanelOpen{Panel: letterboard.PanelGallery},
				letterboard.GenerateGalleryPolaroids{Width: 600, Height: 400, Seed: 2},
			),
			wantHeight: -1,
		},
		{
			name:       "closed gallery is not drawn",
			state:      laidOut(t, letterboard.GenerateGalleryPolaroids{Width: 600, Height: 400, Seed: 2}),
			wantHeight: 125,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := r.Render(tt.state)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			b := img.Bounds()
			if b.Dx() != 600 {
				t.Errorf("width = %d, want 600", b.Dx())
			}
			if tt.wantHeight > 0 && b.Dy() != tt.wantHeight {
				t.Errorf("height = %d, want %d", b.Dy(), tt.wantHeight)
			}
			if tt.wantHeight < 0 && b.Dy() <= 125 {
				t.Errorf("height = %d, want a stage below the board", b.Dy())
			}
		})
	}
}

func TestRenderDrawsTiles(t *testing.T) {
	r, _ := New(Options{})
	s := laidOut(t)
	img, err := r.Render(s)
	if err != nil {
		t.Fatal(err)
	}
	felt := img.At(0, 0)
	tile := s.Tiles[0]
	e := tile.Extent()
	changed := false
	for x := int(tile.X); x < int(tile.X+e.Width) && !changed; x++ {
		for y := int(tile.Y); y < int(tile.Y+e.Height()); y++ {
			if img.At(x, y) != felt {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("no glyph pixels inside the first tile")
	}
}

func TestRenderUnmeasured(t *testing.T) {
	r, _ := New(Options{})
	_, err := r.Render(letterboard.InitialState(nil, 1))
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Render() error = %v, want RENDER", err)
	}
}

func TestWritePNG(t *testing.T) {
	r, _ := New(Options{})
	var buf bytes.Buffer
	if err := r.WritePNG(laidOut(t), &buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if img.Bounds().Dx() != 600 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}
