package refgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidTag is returned by [Graph.SetNode] when the tag is empty.
	ErrInvalidTag = errors.New("tag must not be empty")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the source
	// tag has not been added as a node. Targets are not checked: a record
	// may reference a tag that is never defined.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownStart is returned by [Graph.Reach] when the start tag is not
	// a node of the graph.
	ErrUnknownStart = errors.New("start tag not found")
)

// Node is a record of the source file, identified by its tag.
type Node struct {
	Tag    string // "#<digits>"
	Entity string // entity type name, e.g. IFCWALL

	// Placeholder marks a node synthesized for a referenced tag that has no
	// record of its own. Placeholders have an empty Entity.
	Placeholder bool
}

// Label returns the entity type, or "?" for placeholders.
func (n Node) Label() string {
	if n.Placeholder {
		return "?"
	}
	return n.Entity
}

// Edge means "record From references tag To".
type Edge struct {
	From string
	To   string
}

// Graph is a directed reference graph.
//
// Nodes keep their first insertion order so that iteration, layout and
// export are deterministic. Edges keep discovery order and duplicates.
// The zero value is not usable; use [New].
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]int // tag -> indices into edges
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]int),
	}
}

// SetNode adds n or replaces the node with the same tag (last write wins).
// A replaced node keeps its original position in the iteration order.
func (g *Graph) SetNode(n Node) error {
	if n.Tag == "" {
		return ErrInvalidTag
	}
	if existing, ok := g.nodes[n.Tag]; ok {
		*existing = n
		return nil
	}
	node := n
	g.nodes[n.Tag] = &node
	g.order = append(g.order, n.Tag)
	return nil
}

// AddEdge appends a directed edge. The source must already be a node.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	g.outgoing[e.From] = append(g.outgoing[e.From], len(g.edges))
	g.edges = append(g.edges, e)
	return nil
}

// Has reports whether tag is a node.
func (g *Graph) Has(tag string) bool {
	_, ok := g.nodes[tag]
	return ok
}

// Node returns the node for tag.
func (g *Graph) Node(tag string) (Node, bool) {
	n, ok := g.nodes[tag]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	for i, tag := range g.order {
		out[i] = *g.nodes[tag]
	}
	return out
}

// Tags returns all node tags in insertion order.
func (g *Graph) Tags() []string { return slices.Clone(g.order) }

// Edges returns all edges in discovery order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Outgoing returns the edges whose source is tag, in discovery order.
func (g *Graph) Outgoing(tag string) []Edge {
	idx := g.outgoing[tag]
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = g.edges[j]
	}
	return out
}

// Entities returns the tag -> entity type mapping.
// Placeholder nodes map to the empty string.
func (g *Graph) Entities() map[string]string {
	out := make(map[string]string, len(g.nodes))
	for tag, n := range g.nodes {
		out[tag] = n.Entity
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, duplicates included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Dangling returns the distinct edge targets that are not nodes, in order of
// first reference.
func (g *Graph) Dangling() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range g.edges {
		if g.Has(e.To) || seen[e.To] {
			continue
		}
		seen[e.To] = true
		out = append(out, e.To)
	}
	return out
}
