package refgraph

// ReachOptions configures [Graph.Reach].
type ReachOptions struct {
	// MaxDepth stops expansion at nodes this many hops from the start.
	// Such nodes are still included. Zero means unlimited.
	MaxDepth int
}

// Trace is the part of a graph reachable from a start tag.
type Trace struct {
	Start string

	// Graph holds the reached nodes in discovery order and every edge
	// traversed from an expanded node, including edges back to nodes that
	// were already visited.
	Graph *Graph

	// Distances maps each reached tag to its BFS hop count from Start.
	Distances map[string]int
}

// MaxDistance returns the largest hop count in the trace.
func (t *Trace) MaxDistance() int {
	longest := 0
	for _, d := range t.Distances {
		longest = max(longest, d)
	}
	return longest
}

// Reach walks the graph breadth-first from start along edge direction.
//
// Every outgoing edge of an expanded node is recorded in order. A target is
// enqueued with distance+1 the first time it is seen, so distances are BFS
// first-arrival hop counts. Targets without a record are added to the trace
// as placeholder nodes and are never expanded.
//
// Reach returns [ErrUnknownStart] if start is not a node.
func (g *Graph) Reach(start string, opts ReachOptions) (*Trace, error) {
	first, ok := g.nodes[start]
	if !ok {
		return nil, ErrUnknownStart
	}

	sub := New()
	_ = sub.SetNode(*first)
	dist := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		d := dist[current]
		if opts.MaxDepth > 0 && d >= opts.MaxDepth {
			continue
		}

		for _, e := range g.Outgoing(current) {
			// current is always in sub, so the edge is accepted.
			_ = sub.AddEdge(e)
			if _, seen := dist[e.To]; seen {
				continue
			}
			dist[e.To] = d + 1
			queue = append(queue, e.To)

			n, ok := g.nodes[e.To]
			if !ok {
				_ = sub.SetNode(Node{Tag: e.To, Placeholder: true})
				continue
			}
			_ = sub.SetNode(*n)
		}
	}

	return &Trace{Start: start, Graph: sub, Distances: dist}, nil
}
