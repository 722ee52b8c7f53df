package layout

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// physGraph is the undirected, simple view of a reference graph that the
// spring embedder works on. Node IDs are insertion indices and every
// iterator yields nodes in ascending ID order, which keeps the embedder's
// use of its random source reproducible.
type physGraph struct {
	tags      []string
	adjacency [][]int64
}

var _ graph.Graph = (*physGraph)(nil)

func newPhysGraph(g *refgraph.Graph) *physGraph {
	tags := g.Tags()
	ids := make(map[string]int64, len(tags))
	for i, tag := range tags {
		ids[tag] = int64(i)
	}

	adjacency := make([][]int64, len(tags))
	for _, e := range g.Edges() {
		u, uok := ids[e.From]
		v, vok := ids[e.To]
		if !uok || !vok || u == v {
			continue
		}
		if !slices.Contains(adjacency[u], v) {
			adjacency[u] = append(adjacency[u], v)
			adjacency[v] = append(adjacency[v], u)
		}
	}
	for _, adj := range adjacency {
		slices.Sort(adj)
	}
	return &physGraph{tags: tags, adjacency: adjacency}
}

func (g *physGraph) has(id int64) bool { return id >= 0 && id < int64(len(g.tags)) }

func (g *physGraph) Node(id int64) graph.Node {
	if !g.has(id) {
		return nil
	}
	return simple.Node(id)
}

func (g *physGraph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(g.tags))
	for i := range g.tags {
		nodes[i] = simple.Node(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *physGraph) From(id int64) graph.Nodes {
	if !g.has(id) {
		return graph.Empty
	}
	adj := g.adjacency[id]
	nodes := make([]graph.Node, len(adj))
	for i, v := range adj {
		nodes[i] = simple.Node(v)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *physGraph) HasEdgeBetween(xid, yid int64) bool {
	return g.has(xid) && g.has(yid) && slices.Contains(g.adjacency[xid], yid)
}

func (g *physGraph) Edge(uid, vid int64) graph.Edge {
	if !g.HasEdgeBetween(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}
