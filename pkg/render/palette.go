package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with straight (non-premultiplied) alpha, all
// channels in [0, 1].
type Color struct {
	RGB colorful.Color
	A   float64
}

// Opaque returns c with full opacity.
func Opaque(c colorful.Color) Color { return Color{RGB: c, A: 1} }

// WithAlpha returns c with opacity a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts c for use with image/draw based renderers.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(c.A*255 + 0.5)}
}

// HexA returns c as "#rrggbbaa", the form Graphviz accepts.
func (c Color) HexA() string {
	return fmt.Sprintf("%s%02x", c.RGB.Clamped().Hex(), uint8(c.A*255+0.5))
}

// namedColors holds the CSS names accepted in configuration besides hex.
var namedColors = map[string]string{
	"black":      "#000000",
	"white":      "#ffffff",
	"orange":     "#ffa500",
	"lightgreen": "#90ee90",
	"lightblue":  "#add8e6",
	"lightgrey":  "#d3d3d3",
	"gray":       "#808080",
	"red":        "#ff0000",
	"green":      "#008000",
	"blue":       "#0000ff",
}

// ParseColor parses "#rgb", "#rrggbb" or one of a few CSS colour names.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Palette holds the colours of a rendering.
type Palette struct {
	Upward     colorful.Color // edges whose target sits above the source
	Downward   colorful.Color // all other edges
	Node       colorful.Color
	Border     colorful.Color
	Text       colorful.Color
	Background colorful.Color
}

// DefaultPalette returns orange/light green edges on light blue nodes.
func DefaultPalette() Palette {
	must := func(s string) colorful.Color {
		c, _ := ParseColor(s)
		return c
	}
	return Palette{
		Upward:     must("orange"),
		Downward:   must("lightgreen"),
		Node:       must("lightblue"),
		Border:     must("black"),
		Text:       must("black"),
		Background: must("white"),
	}
}
