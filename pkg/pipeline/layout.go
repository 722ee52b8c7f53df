package pipeline

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// ComputeLayout positions the nodes of a trace.
func ComputeLayout(t *refgraph.Trace, opts Options) layout.Positions {
	return layout.Compute(t.Graph, opts.LayoutOptions())
}

func marshalPositions(pos layout.Positions) ([]byte, error) {
	return json.Marshal(pos)
}

// unmarshalPositions decodes cached positions and checks they cover every
// node of t.
func unmarshalPositions(data []byte, t *refgraph.Trace) (layout.Positions, error) {
	var pos layout.Positions
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, err
	}
	for _, tag := range t.Graph.Tags() {
		p, ok := pos[tag]
		if !ok {
			return nil, fmt.Errorf("no position for %s", tag)
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return nil, fmt.Errorf("invalid position for %s", tag)
		}
	}
	return pos, nil
}
