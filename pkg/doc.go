// Package pkg provides the core libraries for ifcgraph reference graph
// visualization.
//
// # Overview
//
// ifcgraph reads an IFC (STEP physical file) model, follows the "#N"
// references from one starting entity and draws everything it can reach,
// fading nodes as they get further from the start. The pkg directory is
// organized into these areas:
//
//  1. [ifc] - Parsing IFC text into a reference graph
//  2. [refgraph] - The reference graph and breadth-first reachability
//  3. [layout] - Seeded force-directed node placement
//  4. [render] - Scenes, palettes and the PNG/DOT/SVG renderers
//  5. [pipeline] - Orchestration (parse → trace → layout → render)
//
// # Architecture
//
// The typical data flow through ifcgraph:
//
//	IFC file
//	   ↓
//	[ifc] package (records → nodes and edges)
//	   ↓
//	[refgraph] package (Reach from a tag → Trace with hop distances)
//	   ↓
//	[layout] package (positions)
//	   ↓
//	[render] package (Scene → PNG, DOT or SVG)
//
// # Quick Start
//
//	g, _ := ifc.ParseFile("model.ifc")
//	trace, _ := g.Reach("#24", refgraph.ReachOptions{})
//	pos := layout.Compute(trace.Graph, layout.DefaultOptions())
//	scene := render.NewScene(trace, pos, render.DefaultOptions())
//	png, _ := canvas.RenderPNG(scene)
//
// # Supporting Packages
//
// [cache] - Content-addressed file cache for parsed graphs, layouts and
// rendered artifacts.
//
// [io] - JSON and YAML export of graphs and traces.
//
// [errors] - Coded errors shared by the CLI and the libraries.
//
// [observability] - Hooks for pipeline and cache events.
//
// [fonts] - Embedded label fonts.
//
// [buildinfo] - Version information and cache scoping.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/refgraph/... # Specific package
//	go test -run Example       # Examples only
//
// [ifc]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/ifc
// [refgraph]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/refgraph
// [layout]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/observability
// [fonts]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ifcgraph/pkg/buildinfo
package pkg
