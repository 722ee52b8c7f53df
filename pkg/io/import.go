package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// ReadJSON decodes a graph written by [WriteJSON].
//
// Nodes are added in document order and edges appended in order, so a
// round trip preserves iteration order and duplicate edges. Edge targets
// need not be nodes. ReadJSON returns an error for malformed JSON, an empty
// tag, or an edge whose source is not a node. It does not close r.
func ReadJSON(r io.Reader) (*refgraph.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := refgraph.New()
	for _, n := range data.Nodes {
		if err := g.SetNode(refgraph.Node{Tag: n.Tag, Entity: n.Entity, Placeholder: n.Placeholder}); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.Tag, err)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(refgraph.Edge{From: e.From, To: e.To}); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
func ImportJSON(path string) (*refgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
