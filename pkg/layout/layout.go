package layout

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/layout"

	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// Defaults for [Options].
const (
	DefaultSeed       = uint64(42)
	DefaultIterations = 120
	DefaultRepulsion  = 1.0
	DefaultRate       = 0.05
	DefaultTheta      = 0.2
)

// Options configures the force-directed layout.
// Zero fields take their Default* value, except Seed where zero is a valid
// seed; use [DefaultOptions] to start from the defaults.
type Options struct {
	Seed       uint64
	Iterations int
	Repulsion  float64
	Rate       float64
	Theta      float64
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Seed:       DefaultSeed,
		Iterations: DefaultIterations,
		Repulsion:  DefaultRepulsion,
		Rate:       DefaultRate,
		Theta:      DefaultTheta,
	}
}

func (o Options) withDefaults() Options {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Repulsion <= 0 {
		o.Repulsion = DefaultRepulsion
	}
	if o.Rate <= 0 {
		o.Rate = DefaultRate
	}
	if o.Theta <= 0 {
		o.Theta = DefaultTheta
	}
	return o
}

// Compute places the nodes of g in the plane with the Eades spring
// embedder. Edge direction, duplicate edges and self references do not
// affect the result. The same graph and options always produce the same
// positions.
func Compute(g *refgraph.Graph, opts Options) Positions {
	opts = opts.withDefaults()
	pg := newPhysGraph(g)
	pos := make(Positions, len(pg.tags))

	switch len(pg.tags) {
	case 0:
		return pos
	case 1:
		pos[pg.tags[0]] = Point{}
		return pos
	}

	eades := layout.EadesR2{
		Updates:   opts.Iterations,
		Repulsion: opts.Repulsion,
		Rate:      opts.Rate,
		Theta:     opts.Theta,
		Src:       rand.NewPCG(opts.Seed, opts.Seed),
	}
	optimizer := layout.NewOptimizerR2(pg, eades.Update)
	for optimizer.Update() {
	}

	for id, tag := range pg.tags {
		c := optimizer.Coord2(int64(id))
		if !finite(c.X) || !finite(c.Y) {
			return Circle(g)
		}
		pos[tag] = Point{X: c.X, Y: c.Y}
	}
	return pos
}

// Circle places the nodes of g evenly on the unit circle in insertion
// order, starting at the top.
func Circle(g *refgraph.Graph) Positions {
	tags := g.Tags()
	pos := make(Positions, len(tags))
	if len(tags) == 1 {
		pos[tags[0]] = Point{}
		return pos
	}
	for i, tag := range tags {
		angle := math.Pi/2 - 2*math.Pi*float64(i)/float64(len(tags))
		pos[tag] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return pos
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
