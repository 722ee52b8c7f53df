package render

import (
	"fmt"

	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// Scene defaults. The canvas matches a 12x8 inch figure at 100 dpi.
const (
	DefaultWidth       = 1200
	DefaultHeight      = 800
	DefaultMargin      = 60.0
	DefaultTitleHeight = 40.0
	DefaultNodeRadius  = 12.0
	DefaultEdgeWidth   = 2.0

	StartBorderWidth = 3.0
	NodeBorderWidth  = 0.5
)

// Options configures [NewScene].
type Options struct {
	Width, Height int
	Palette       Palette
	MinAlpha      float64
}

// DefaultOptions returns the default scene options.
func DefaultOptions() Options {
	return Options{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Palette:  DefaultPalette(),
		MinAlpha: MinAlpha,
	}
}

// Scene is a backend independent description of a trace drawing.
// Coordinates are pixels with the origin at the top left.
type Scene struct {
	Width, Height int
	Title         string
	Start         string

	Background Color
	Border     Color
	Text       Color

	NodeRadius float64
	EdgeWidth  float64

	Nodes []SceneNode // trace discovery order
	Edges []SceneEdge // trace edge order
}

// SceneNode is a positioned node.
type SceneNode struct {
	Tag         string
	Entity      string
	Label       string // "<tag>\n<entity>"
	X, Y        float64
	Fill        Color
	BorderWidth float64
	Start       bool
	Placeholder bool
}

// SceneEdge is a positioned, coloured edge.
type SceneEdge struct {
	From, To string
	X1, Y1   float64
	X2, Y2   float64
	Color    Color
	Distance int  // hop distance of the target
	Upward   bool // target placed above source
	Self     bool
}

// Title returns the figure title for a start tag.
func Title(start string) string {
	return "IFC File Connections Graph - Starting Tag: " + start
}

// NodeLabel returns the two-line label of n.
func NodeLabel(n refgraph.Node) string {
	return fmt.Sprintf("%s\n%s", n.Tag, n.Label())
}

// NewScene lays the trace out on a canvas of the configured size.
//
// Layout coordinates are scaled independently on each axis to fill the area
// below the title. An edge uses the upward colour when its target sits
// higher than its source in pos, the downward colour otherwise; its alpha
// fades with the target's hop distance.
func NewScene(trace *refgraph.Trace, pos layout.Positions, opts Options) *Scene {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.MinAlpha <= 0 {
		opts.MinAlpha = MinAlpha
	}
	p := opts.Palette

	s := &Scene{
		Width:      opts.Width,
		Height:     opts.Height,
		Title:      Title(trace.Start),
		Start:      trace.Start,
		Background: Opaque(p.Background),
		Border:     Opaque(p.Border),
		Text:       Opaque(p.Text),
		NodeRadius: DefaultNodeRadius,
		EdgeWidth:  DefaultEdgeWidth,
	}

	project := projector(pos, float64(opts.Width), float64(opts.Height))
	pixel := make(map[string][2]float64, len(pos))

	for _, n := range trace.Graph.Nodes() {
		x, y := project(pos[n.Tag])
		pixel[n.Tag] = [2]float64{x, y}

		border := NodeBorderWidth
		if n.Tag == trace.Start {
			border = StartBorderWidth
		}
		s.Nodes = append(s.Nodes, SceneNode{
			Tag:         n.Tag,
			Entity:      n.Entity,
			Label:       NodeLabel(n),
			X:           x,
			Y:           y,
			Fill:        Opaque(p.Node),
			BorderWidth: border,
			Start:       n.Tag == trace.Start,
			Placeholder: n.Placeholder,
		})
	}

	maxDist := trace.MaxDistance()
	for _, e := range trace.Graph.Edges() {
		from, to := pixel[e.From], pixel[e.To]
		dist := trace.Distances[e.To]
		up := pos.Above(e.To, e.From)

		base := p.Downward
		if up {
			base = p.Upward
		}
		s.Edges = append(s.Edges, SceneEdge{
			From:     e.From,
			To:       e.To,
			X1:       from[0],
			Y1:       from[1],
			X2:       to[0],
			Y2:       to[1],
			Color:    Opaque(base).WithAlpha(FadeAlpha(dist, maxDist, opts.MinAlpha)),
			Distance: dist,
			Upward:   up,
			Self:     e.From == e.To,
		})
	}
	return s
}

// projector maps layout space into the plot area of a canvas.
func projector(pos layout.Positions, width, height float64) func(layout.Point) (float64, float64) {
	box := pos.Bounds()
	left, right := DefaultMargin, width-DefaultMargin
	top, bottom := DefaultMargin+DefaultTitleHeight, height-DefaultMargin

	return func(pt layout.Point) (float64, float64) {
		x := (left + right) / 2
		if w := box.Width(); w > 0 {
			x = left + (pt.X-box.Min.X)/w*(right-left)
		}
		y := (top + bottom) / 2
		if h := box.Height(); h > 0 {
			y = top + (box.Max.Y-pt.Y)/h*(bottom-top)
		}
		return x, y
	}
}
