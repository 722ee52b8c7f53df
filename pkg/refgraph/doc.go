// Package refgraph models the reference graph of an IFC file and extracts
// the part of it reachable from a chosen record.
//
// # Model
//
// A [Graph] holds one [Node] per record (keyed by its "#<digits>" tag) and
// one [Edge] per reference found in a record's arguments. Edges keep the
// order in which they were found, duplicates included. The source of an edge
// must be a node; the target may be a tag that no record defines.
//
// # Reachability
//
// [Graph.Reach] performs a breadth-first walk along edge direction and
// returns a [Trace]: the reached nodes, every edge followed from an expanded
// node, and the hop distance of each reached tag:
//
//	trace, err := g.Reach("#24", refgraph.ReachOptions{})
//	if errors.Is(err, refgraph.ErrUnknownStart) {
//	    // the tag is not a record of the file
//	}
//	fmt.Println(trace.Distances["#24"]) // 0
//
// Referenced tags without a record are kept in the trace as placeholder
// nodes so that every traced edge has two endpoints.
package refgraph
