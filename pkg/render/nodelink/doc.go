// Package nodelink renders a [render.Scene] through Graphviz.
//
// # Overview
//
// The scene is written as DOT for the neato engine with every node pinned
// to its scene position, so the drawing matches the canvas backend while
// Graphviz handles shapes, arrowheads and text.
//
// # Usage
//
//	dot := nodelink.ToDOT(scene)
//	png, err := nodelink.RenderPNG(ctx, dot)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools (`neato -n2 -Tpdf`).
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
