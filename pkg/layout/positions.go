package layout

import "math"

// Point is a position in layout space. Y grows upwards.
type Point struct {
	X, Y float64
}

// Positions maps node tags to layout coordinates.
type Positions map[string]Point

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Bounds returns the bounding box of all positions.
// It returns the zero Rect when p is empty.
func (p Positions) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, pt := range p {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	return r
}

// Above reports whether the node to is placed higher than from.
func (p Positions) Above(to, from string) bool {
	return p[to].Y > p[from].Y
}
