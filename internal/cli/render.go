package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ifcgraph/pkg/errors"
	"github.com/matzehuels/ifcgraph/pkg/ifc"
	"github.com/matzehuels/ifcgraph/pkg/pipeline"
)

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
// Zero values fall back to the configuration file.
type renderOpts struct {
	output   string // output file path, "-" for stdout
	tag      string // starting tag, "24" or "#24"
	format   string // png, svg, dot, json, yaml
	renderer string // canvas, graphviz
	depth    int    // maximum hop distance, 0 = unlimited
	seed     uint64 // layout seed
	width    int    // image width in pixels
	height   int    // image height in pixels
	refresh  bool   // ignore cached results
}

// renderCommand creates the render command for drawing one trace without
// prompts.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.DefaultFormat}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the references reachable from one tag",
		Long: `Draw the records reachable from --tag as an image.

The default output name is <file>_<tag>.<format> next to the input file.
Formats dot, json and yaml describe the same trace as text; svg needs the
graphviz renderer.`,
		Example: `  ifcgraph render model.ifc --tag 24
  ifcgraph render model.ifc --tag 24 --renderer graphviz --format svg -o wall.svg
  ifcgraph render model.ifc --tag 24 --format json -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default <file>_<tag>.<format>)")
	cmd.Flags().StringVarP(&opts.tag, "tag", "t", "", "starting tag number (e.g. 24)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png, svg, dot, json, yaml")
	cmd.Flags().StringVar(&opts.renderer, "renderer", "", "image renderer: canvas, graphviz (default from config)")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "maximum hop distance from the tag (0 = unlimited)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "layout seed (default from config)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height in pixels (default from config)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	_ = cmd.MarkFlagRequired("tag")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{pipeline.FormatPNG, pipeline.FormatSVG, pipeline.FormatDOT, pipeline.FormatJSON, pipeline.FormatYAML},
		cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("renderer", cobra.FixedCompletions(
		[]string{pipeline.RendererCanvas, pipeline.RendererGraphviz},
		cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// renderOptions merges the configuration with the flags that were set.
func (c *CLI) renderOptions(cmd *cobra.Command, file string, ro *renderOpts) (pipeline.Options, error) {
	opts, err := c.baseOptions()
	if err != nil {
		return opts, err
	}
	opts.File = file
	opts.Tag = ro.tag
	opts.MaxDepth = ro.depth
	opts.Format = strings.ToLower(ro.format)
	opts.Refresh = ro.refresh

	if flagChanged(cmd, "renderer") {
		opts.Renderer = ro.renderer
	}
	if flagChanged(cmd, "seed") {
		opts.Seed = ro.seed
	}
	if flagChanged(cmd, "width") {
		opts.Width = ro.width
	}
	if flagChanged(cmd, "height") {
		opts.Height = ro.height
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// runRender executes the pipeline and writes the artifact.
func (c *CLI) runRender(cmd *cobra.Command, file string, ro *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := c.renderOptions(cmd, file, ro)
	if err != nil {
		return err
	}

	output := ro.output
	if output == "" {
		output = suggestedName(file, ifc.NormalizeTag(opts.Tag), opts.Format)
	}
	if output != stdoutPath {
		if err := errors.ValidateOutputPath(output); err != nil {
			return err
		}
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger, "rendered")
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if output == stdoutPath {
		_, err := c.Out.Write(result.Artifact)
		return err
	}
	if err := writeArtifact(output, result.Artifact); err != nil {
		return err
	}
	prog.done("start", result.Trace.Start, "format", opts.Format, "bytes", len(result.Artifact))

	cached := result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	printSuccess(c.Console, "Rendered %s from %s", result.Trace.Start, filepath.Base(file))
	printStats(c.Console, result.Stats.TraceNodes, result.Stats.TraceEdges, result.Stats.MaxDistance, cached)
	printFile(c.Console, output)
	return nil
}

// writeArtifact writes data to path.
func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFile, err, "write %s", path)
	}
	return nil
}

// createOutput opens path for writing, or returns w for "-".
func createOutput(path string, w io.Writer) (io.Writer, func() error, error) {
	if path == stdoutPath {
		return w, func() error { return nil }, nil
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}
