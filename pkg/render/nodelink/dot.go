package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ifcgraph/pkg/fonts"
	"github.com/matzehuels/ifcgraph/pkg/render"
)

const (
	labelFontSize = 8
	titleFontSize = 16
	pointsPerInch = 72.0
)

// ToDOT converts a scene to Graphviz DOT for the neato engine.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Node positions are pinned to the scene coordinates (in points, y flipped to
// Graphviz's upward axis), so Graphviz only draws and does not lay out.
// Edge colours carry their fade as "#rrggbbaa". Placeholder nodes are dashed.
func ToDOT(s *render.Scene) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  notranslate=true;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", s.Background.HexA())
	fmt.Fprintf(&buf, "  label=%q;\n", s.Title)
	fmt.Fprintf(&buf, "  labelloc=t;\n  fontname=%q;\n  fontsize=%d;\n", fonts.FontFamily, titleFontSize)
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%s, style=filled, color=%q, fontname=%q, fontsize=%d];\n",
		ftoa(2*s.NodeRadius/pointsPerInch), s.Border.HexA(), fonts.FontFamily, labelFontSize)
	fmt.Fprintf(&buf, "  edge [penwidth=%s, arrowsize=0.6];\n", ftoa(s.EdgeWidth))
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Tag, strings.Join(nodeAttrs(s, n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range s.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [color=%q];\n", e.From, e.To, e.Color.HexA())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(s *render.Scene, n render.SceneNode) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", n.Label),
		fmt.Sprintf("pos=\"%s,%s!\"", ftoa(n.X), ftoa(float64(s.Height)-n.Y)),
		fmt.Sprintf("fillcolor=%q", n.Fill.HexA()),
		fmt.Sprintf("penwidth=%s", ftoa(n.BorderWidth)),
	}
	if n.Placeholder {
		attrs = append(attrs, "style=\"filled,dashed\"")
	}
	return attrs
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderFormat(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// viewBox-only one so the SVG scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
