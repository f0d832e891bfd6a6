package navgraph

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/letterboard/pkg/letterboard"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(Options{})
	tests := []struct {
		name string
		want string
	}{
		{"header", "digraph letterboard {"},
		{"open journey", `"hero" -> "journey" [label="PANEL_OPEN"];`},
		{"close contact", `"contact" -> "hero" [label="PANEL_CLOSE", style=dashed];`},
		{"regenerate", `"gallery" -> "gallery" [label="GALLERY_GENERATE_POLAROIDS"];`},
		{"open v60", `"craft" -> "notecard:v60" [label="NOTECARD_OPEN"];`},
		{"close encore", `"notecard:encore" -> "craft" [label="NOTECARD_CLOSE", style=dashed];`},
		{"notecard label", `"notecard:v60" [label="V60 Recipe", shape=note];`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(dot, tt.want) {
				t.Errorf("DOT missing %s\n%s", tt.want, dot)
			}
		})
	}
	if strings.Contains(dot, "penwidth") {
		t.Error("no node should be highlighted")
	}
	if strings.Contains(dot, `"hero" -> "hero"`) {
		t.Error("hero should not open itself")
	}
}

func TestToDOTHighlight(t *testing.T) {
	s := letterboard.InitialState(nil, 1)
	s.Panel.ActivePanel = letterboard.PanelCraft
	s.CraftPanel.ActiveNotecard = letterboard.NotecardEncore

	dot := ToDOT(FromState(s))
	if !strings.Contains(dot, `"craft" [label="craft", fillcolor="#f2c14e", penwidth=2];`) {
		t.Errorf("craft not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"notecard:encore" [label="Encore Grind Settings", fillcolor="#f2c14e", penwidth=2, shape=note];`) {
		t.Errorf("encore not highlighted:\n%s", dot)
	}
	if strings.Count(dot, "penwidth") != 2 {
		t.Errorf("highlighted %d nodes, want 2", strings.Count(dot, "penwidth"))
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 200.00" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox changed")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(svg)), "<") || !strings.Contains(string(svg), "<svg") {
		t.Errorf("output is not SVG: %.80s", svg)
	}
	if !strings.Contains(string(svg), "journey") {
		t.Error("SVG missing panel label")
	}
}
