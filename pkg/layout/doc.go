// Package layout computes 2D positions for reference graphs.
//
// [Compute] runs gonum's Eades spring embedder over an undirected, simple
// view of the graph. Initial positions come from a PCG source seeded with
// [Options.Seed] and nodes are visited in the graph's insertion order, so a
// given graph and seed always yield the same [Positions].
//
//	pos := layout.Compute(trace.Graph, layout.DefaultOptions())
//	box := pos.Bounds()
//
// Coordinates are unitless with Y pointing up; renderers scale them to
// their canvas.
package layout
