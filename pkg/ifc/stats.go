package ifc

import (
	"cmp"
	"slices"

	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// EntityCount is the number of records of one entity type.
type EntityCount struct {
	Entity string
	Count  int
}

// Stats summarizes a parsed graph.
type Stats struct {
	Records    int
	References int
	Dangling   int
	Entities   []EntityCount // most frequent first, ties by name
}

// Summarize computes [Stats] for g. Placeholder nodes are not counted.
func Summarize(g *refgraph.Graph) Stats {
	counts := make(map[string]int)
	records := 0
	for _, n := range g.Nodes() {
		if n.Placeholder {
			continue
		}
		records++
		counts[n.Entity]++
	}

	entities := make([]EntityCount, 0, len(counts))
	for e, c := range counts {
		entities = append(entities, EntityCount{Entity: e, Count: c})
	}
	slices.SortFunc(entities, func(a, b EntityCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Entity, b.Entity)
	})

	return Stats{
		Records:    records,
		References: g.EdgeCount(),
		Dangling:   len(g.Dangling()),
		Entities:   entities,
	}
}
