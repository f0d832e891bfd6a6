// Package navgraph draws the letterboard's panel and notecard navigation as
// a Graphviz diagram.
package navgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/letterboard/pkg/errors"
	"github.com/matzehuels/letterboard/pkg/letterboard"
)

// Options configures the diagram.
type Options struct {
	// ActivePanel and ActiveNotecard are filled to mark the current view.
	ActivePanel    letterboard.PanelType
	ActiveNotecard letterboard.NotecardType
}

// FromState marks the view s is showing.
func FromState(s letterboard.State) Options {
	return Options{ActivePanel: s.Panel.ActivePanel, ActiveNotecard: s.CraftPanel.ActiveNotecard}
}

var notecards = []letterboard.NotecardType{letterboard.NotecardEncore, letterboard.NotecardV60}

func notecardNode(n letterboard.NotecardType) string { return "notecard:" + string(n) }

// ToDOT returns the navigation graph in DOT format. Panels open from the
// hero board and close back to it; the craft panel opens and closes its
// notecards; the gallery regenerates in place.
func ToDOT(opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph letterboard {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [fontsize=9, fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for _, p := range letterboard.Panels {
		fmt.Fprintf(&buf, "  %q [%s];\n", string(p), nodeAttrs(string(p), opts.ActivePanel == p))
	}
	for _, n := range notecards {
		active := opts.ActivePanel == letterboard.PanelCraft && opts.ActiveNotecard == n
		fmt.Fprintf(&buf, "  %q [%s, shape=note];\n", notecardNode(n), nodeAttrs(letterboard.NotecardTitle(n), active))
	}

	buf.WriteString("\n")
	hero := string(letterboard.PanelHero)
	for _, p := range letterboard.Panels[1:] {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", hero, string(p), letterboard.TypePanelOpen)
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, style=dashed];\n", string(p), hero, letterboard.TypePanelClose)
	}
	gallery := string(letterboard.PanelGallery)
	fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", gallery, gallery, letterboard.TypeGenerateGalleryPolaroids)
	craft := string(letterboard.PanelCraft)
	for _, n := range notecards {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", craft, notecardNode(n), letterboard.TypeNotecardOpen)
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, style=dashed];\n", notecardNode(n), craft, letterboard.TypeNotecardClose)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(label string, active bool) string {
	if active {
		return fmt.Sprintf("label=%q, fillcolor=\"#f2c14e\", penwidth=2", label)
	}
	return fmt.Sprintf("label=%q", label)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element to a zero-origin viewBox with
// matching pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
