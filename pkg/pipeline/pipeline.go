// Package pipeline runs the parse → trace → layout → render pipeline for
// ifcgraph.
//
// The CLI's interactive driver and its batch commands both go through a
// [Runner] so that caching and logging behave the same on every path.
//
// # Stages
//
//  1. Parse: read an IFC file into a reference graph (cached by content hash)
//  2. Trace: breadth-first reachability from the start tag
//  3. Layout: seeded force-directed positions (cached)
//  4. Render: PNG, SVG, DOT, JSON or YAML output (cached)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    File: "model.ifc",
//	    Tag:  "#24",
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("model_24.png", result.Artifact, 0644)
//
// Run individual stages when the model is reused, as the interactive driver
// does between the file and tag prompts:
//
//	model, err := runner.Parse(ctx, opts)
//	trace, err := runner.Trace(ctx, model, opts)
//	pos, err := runner.Layout(ctx, model, trace, opts)
//	png, err := runner.Render(ctx, model, trace, pos, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ifcgraph/pkg/cache"
	"github.com/matzehuels/ifcgraph/pkg/errors"
	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
	"github.com/matzehuels/ifcgraph/pkg/render"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer backends for image formats.
const (
	RendererCanvas   = "canvas"
	RendererGraphviz = "graphviz"
)

const (
	DefaultFormat   = FormatPNG
	DefaultRenderer = RendererCanvas
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
	FormatYAML: true,
}

// ValidRenderers is the set of supported renderer backends.
var ValidRenderers = map[string]bool{
	RendererCanvas:   true,
	RendererGraphviz: true,
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Parse options
	File    string
	Refresh bool // ignore cached entries (results are still stored)

	// Trace options
	Tag      string // "#24"; "24" is accepted and normalized
	MaxDepth int    // 0 = unlimited

	// Layout options
	Seed       uint64
	Iterations int

	// Render options
	Format   string
	Renderer string
	Width    int
	Height   int
	Palette  *render.Palette // nil = render.DefaultPalette()
	MinAlpha float64

	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Model     *Model
	Trace     *refgraph.Trace
	Positions layout.Positions
	Artifact  []byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int // records in the file
	EdgeCount   int // references in the file
	TraceNodes  int
	TraceEdges  int
	MaxDistance int
	ParseTime   time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool
	LayoutHit bool
	RenderHit bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, dot, json, yaml)", format)
	}
	return nil
}

// ValidateRenderer checks that a renderer is valid.
func ValidateRenderer(renderer string) error {
	if !ValidRenderers[renderer] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid renderer: %q (must be one of: canvas, graphviz)", renderer)
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForTrace(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.File == "" {
		return errors.New(errors.ErrCodeInvalidFile, "file is required")
	}
	o.setLogger()
	return nil
}

// ValidateForTrace checks trace options.
func (o *Options) ValidateForTrace() error {
	if o.Tag == "" {
		return errors.New(errors.ErrCodeInvalidInput, "start tag is required")
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max depth must not be negative, got %d", o.MaxDepth)
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation. A zero seed
// is replaced by [layout.DefaultSeed].
func (o *Options) SetLayoutDefaults() {
	if o.Seed == 0 {
		o.Seed = layout.DefaultSeed
	}
	if o.Iterations <= 0 {
		o.Iterations = layout.DefaultIterations
	}
	o.setLogger()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Renderer == "" {
		o.Renderer = DefaultRenderer
	}
	if o.Width == 0 {
		o.Width = render.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = render.DefaultHeight
	}
	if o.MinAlpha == 0 {
		o.MinAlpha = render.MinAlpha
	}
	if o.Palette == nil {
		p := render.DefaultPalette()
		o.Palette = &p
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := ValidateRenderer(o.Renderer); err != nil {
		return err
	}
	if o.Format == FormatSVG && o.Renderer != RendererGraphviz {
		return errors.New(errors.ErrCodeUnsupported, "svg output requires the graphviz renderer")
	}
	if o.MinAlpha < 0 || o.MinAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "min alpha must be within [0, 1], got %v", o.MinAlpha)
	}
	return errors.ValidateImageSize(o.Width, o.Height)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutOptions returns the layout engine options.
func (o *Options) LayoutOptions() layout.Options {
	lo := layout.DefaultOptions()
	lo.Seed = o.Seed
	lo.Iterations = o.Iterations
	return lo
}

// SceneOptions returns the scene options.
func (o *Options) SceneOptions() render.Options {
	so := render.DefaultOptions()
	so.Width, so.Height = o.Width, o.Height
	so.MinAlpha = o.MinAlpha
	if o.Palette != nil {
		so.Palette = *o.Palette
	}
	return so
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(start string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Start:      start,
		MaxDepth:   o.MaxDepth,
		Seed:       o.Seed,
		Iterations: o.Iterations,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(start string) cache.ArtifactKeyOpts {
	so := o.SceneOptions()
	p := so.Palette
	return cache.ArtifactKeyOpts{
		Layout:   o.LayoutKeyOpts(start),
		Format:   o.Format,
		Renderer: o.Renderer,
		Width:    so.Width,
		Height:   so.Height,
		Colors: []string{
			p.Upward.Hex(), p.Downward.Hex(), p.Node.Hex(),
			p.Border.Hex(), p.Text.Hex(), p.Background.Hex(),
		},
		MinAlpha: so.MinAlpha,
	}
}
