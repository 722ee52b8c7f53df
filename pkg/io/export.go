package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// Format names a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
}

type graph struct {
	Nodes []node `json:"nodes" yaml:"nodes"`
	Edges []edge `json:"edges" yaml:"edges"`
}

type node struct {
	Tag         string `json:"tag" yaml:"tag"`
	Entity      string `json:"entity,omitempty" yaml:"entity,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

type edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type trace struct {
	Start       string      `json:"start" yaml:"start"`
	MaxDistance int         `json:"max_distance" yaml:"max_distance"`
	Nodes       []traceNode `json:"nodes" yaml:"nodes"`
	Edges       []edge      `json:"edges" yaml:"edges"`
}

type traceNode struct {
	node     `yaml:",inline"`
	Distance int      `json:"distance" yaml:"distance"`
	X        *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y        *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

func toGraph(g *refgraph.Graph) graph {
	out := graph{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, node{Tag: n.Tag, Entity: n.Entity, Placeholder: n.Placeholder})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To})
	}
	return out
}

func toTrace(t *refgraph.Trace, pos layout.Positions) trace {
	g := toGraph(t.Graph)
	out := trace{
		Start:       t.Start,
		MaxDistance: t.MaxDistance(),
		Nodes:       make([]traceNode, len(g.Nodes)),
		Edges:       g.Edges,
	}
	for i, n := range g.Nodes {
		tn := traceNode{node: n, Distance: t.Distances[n.Tag]}
		if p, ok := pos[n.Tag]; ok {
			tn.X, tn.Y = &p.X, &p.Y
		}
		out.Nodes[i] = tn
	}
	return out
}

func encode(v any, f Format, w io.Writer) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", f)
}

// WriteJSON encodes a graph as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *refgraph.Graph, w io.Writer) error {
	return encode(toGraph(g), FormatJSON, w)
}

// WriteYAML encodes a graph as YAML and writes it to w.
func WriteYAML(g *refgraph.Graph, w io.Writer) error {
	return encode(toGraph(g), FormatYAML, w)
}

// WriteGraph encodes a graph in format f.
func WriteGraph(g *refgraph.Graph, f Format, w io.Writer) error {
	return encode(toGraph(g), f, w)
}

// WriteTrace encodes a trace with per-node hop distances in format f.
// Layout coordinates are included for nodes present in pos; pos may be nil.
func WriteTrace(t *refgraph.Trace, pos layout.Positions, f Format, w io.Writer) error {
	return encode(toTrace(t, pos), f, w)
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *refgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
