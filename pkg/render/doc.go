// Package render turns a traced reference graph into a drawing.
//
// Rendering happens in two steps. [NewScene] combines a
// [refgraph.Trace] with layout positions into a [Scene]: pixel coordinates,
// two-line node labels, border widths and per-edge colours. A backend then
// rasterises the scene:
//
//   - render/canvas draws it directly with fogleman/gg
//   - render/nodelink emits Graphviz DOT and renders it with go-graphviz
//
// # Colours
//
// Edges pointing up in the layout use [Palette.Upward] (orange by default),
// all others [Palette.Downward] (light green). Both fade with the hop
// distance of the edge target, see [Alpha]:
//
//	render.Alpha(0, 4) // 1.0
//	render.Alpha(2, 4) // 0.5
//	render.Alpha(4, 4) // 0.3, the floor
//
// The start node gets a thick border; nodes for undefined tags are drawn
// dashed.
package render
