package pipeline

import (
	"bytes"
	"context"
	"fmt"

	ifcio "github.com/matzehuels/ifcgraph/pkg/io"
	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
	"github.com/matzehuels/ifcgraph/pkg/render"
	"github.com/matzehuels/ifcgraph/pkg/render/canvas"
	"github.com/matzehuels/ifcgraph/pkg/render/nodelink"
)

// Render produces the output for opts.Format.
//
// PNG is drawn by the canvas or graphviz backend according to opts.Renderer;
// SVG and DOT always go through graphviz. JSON and YAML export the trace with
// distances and positions.
func Render(ctx context.Context, t *refgraph.Trace, pos layout.Positions, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatJSON:
		return exportTrace(t, pos, ifcio.FormatJSON)
	case FormatYAML:
		return exportTrace(t, pos, ifcio.FormatYAML)
	}

	scene := render.NewScene(t, pos, opts.SceneOptions())

	var data []byte
	var err error
	switch {
	case opts.Format == FormatDOT:
		data = []byte(nodelink.ToDOT(scene))
	case opts.Format == FormatSVG:
		data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(scene))
	case opts.Format == FormatPNG && opts.Renderer == RendererGraphviz:
		data, err = nodelink.RenderPNG(ctx, nodelink.ToDOT(scene))
	case opts.Format == FormatPNG:
		data, err = canvas.RenderPNG(scene)
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	return data, nil
}

func exportTrace(t *refgraph.Trace, pos layout.Positions, f ifcio.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := ifcio.WriteTrace(t, pos, f, &buf); err != nil {
		return nil, fmt.Errorf("export %s: %w", f, err)
	}
	return buf.Bytes(), nil
}
