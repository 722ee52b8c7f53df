// Package canvas rasterises a [render.Scene] to PNG with fogleman/gg.
package canvas

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/matzehuels/ifcgraph/pkg/fonts"
	"github.com/matzehuels/ifcgraph/pkg/render"
)

const (
	labelSize  = 8.0
	titleSize  = 16.0
	arrowSize  = 10.0
	arrowWidth = 0.45 // half-width of the arrow head relative to its length
	lineHeight = 1.15
)

// Option configures PNG rendering.
type Option func(*renderer)

type renderer struct {
	scale float64
}

// WithScale renders at a multiple of the scene size (default 1.0).
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG draws the scene and returns PNG bytes.
func RenderPNG(s *render.Scene, opts ...Option) ([]byte, error) {
	r := renderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(int(float64(s.Width)*r.scale), int(float64(s.Height)*r.scale))
	dc.Scale(r.scale, r.scale)

	dc.SetColor(s.Background.NRGBA())
	dc.Clear()

	if err := drawTitle(dc, s); err != nil {
		return nil, err
	}
	for _, e := range s.Edges {
		drawEdge(dc, s, e)
	}
	for _, n := range s.Nodes {
		drawNode(dc, s, n)
	}
	if err := drawLabels(dc, s); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTitle(dc *gg.Context, s *render.Scene) error {
	face, err := fonts.BoldFace(titleSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(s.Text.NRGBA())
	dc.DrawStringAnchored(s.Title, float64(s.Width)/2, render.DefaultMargin/2+titleSize/2, 0.5, 0.5)
	return nil
}

func drawEdge(dc *gg.Context, s *render.Scene, e render.SceneEdge) {
	dc.SetColor(e.Color.NRGBA())
	dc.SetLineWidth(s.EdgeWidth)
	r := s.NodeRadius

	if e.Self {
		// Loop above the node, ending in an arrow back into it.
		lr := r * 0.8
		cx, cy := e.X1, e.Y1-r-lr*0.6
		dc.DrawArc(cx, cy, lr, 0, 2*math.Pi)
		dc.Stroke()
		drawArrowHead(dc, e.X1+lr*0.5, cy+lr, e.X1+r*0.3, e.Y1-r)
		return
	}

	dx, dy := e.X2-e.X1, e.Y2-e.Y1
	length := math.Hypot(dx, dy)
	if length <= 2*r {
		return
	}
	ux, uy := dx/length, dy/length
	x1, y1 := e.X1+ux*r, e.Y1+uy*r
	x2, y2 := e.X2-ux*r, e.Y2-uy*r

	dc.DrawLine(x1, y1, x2-ux*arrowSize*0.8, y2-uy*arrowSize*0.8)
	dc.Stroke()
	drawArrowHead(dc, x1, y1, x2, y2)
}

// drawArrowHead fills a triangle pointing at (tx, ty) from the direction of
// (fx, fy) with the current colour.
func drawArrowHead(dc *gg.Context, fx, fy, tx, ty float64) {
	dx, dy := tx-fx, ty-fy
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	bx, by := tx-ux*arrowSize, ty-uy*arrowSize
	px, py := -uy*arrowSize*arrowWidth, ux*arrowSize*arrowWidth

	dc.MoveTo(tx, ty)
	dc.LineTo(bx+px, by+py)
	dc.LineTo(bx-px, by-py)
	dc.ClosePath()
	dc.Fill()
}

func drawNode(dc *gg.Context, s *render.Scene, n render.SceneNode) {
	dc.DrawCircle(n.X, n.Y, s.NodeRadius)
	dc.SetColor(n.Fill.NRGBA())
	dc.FillPreserve()

	dc.SetColor(s.Border.NRGBA())
	dc.SetLineWidth(n.BorderWidth)
	if n.Placeholder {
		dc.SetDash(4, 3)
	}
	dc.Stroke()
	dc.SetDash()
}

func drawLabels(dc *gg.Context, s *render.Scene) error {
	face, err := fonts.Face(labelSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(s.Text.NRGBA())

	for _, n := range s.Nodes {
		lines := strings.Split(n.Label, "\n")
		step := labelSize * lineHeight
		y := n.Y - step*float64(len(lines)-1)/2
		for _, line := range lines {
			dc.DrawStringAnchored(line, n.X, y, 0.5, 0.35)
			y += step
		}
	}
	return nil
}
