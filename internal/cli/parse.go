package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ifcgraph/pkg/ifc"
	ifcio "github.com/matzehuels/ifcgraph/pkg/io"
	"github.com/matzehuels/ifcgraph/pkg/pipeline"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output  string // export path, "-" for stdout, empty for stats only
	format  string // json or yaml
	top     int    // entity types listed
	refresh bool   // ignore the cached graph
}

// parseCommand creates the parse command, which reports what a file contains
// and optionally exports the whole reference graph.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{format: string(ifcio.FormatJSON), top: 10}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Summarize an IFC file and export its reference graph",
		Example: `  ifcgraph parse model.ifc
  ifcgraph parse model.ifc -o model.json
  ifcgraph parse model.ifc --format yaml -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export the graph to a file, - for stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "export format: json, yaml")
	cmd.Flags().IntVar(&opts.top, "top", opts.top, "number of entity types to list")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore the cached graph")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{string(ifcio.FormatJSON), string(ifcio.FormatYAML)},
		cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, file string, po *parseOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format, err := ifcio.ParseFormat(po.format)
	if err != nil {
		return err
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger, "parsed")
	model, hit, err := runner.ParseWithCacheInfo(ctx, pipeline.Options{File: file, Refresh: po.refresh, Logger: logger})
	if err != nil {
		return err
	}
	prog.done("file", filepath.Base(file), "records", model.Graph.NodeCount(), "cached", hit)

	if po.output != "" {
		w, closeOutput, err := createOutput(po.output, c.Out)
		if err != nil {
			return err
		}
		if err := ifcio.WriteGraph(model.Graph, format, w); err != nil {
			_ = closeOutput()
			return fmt.Errorf("export graph: %w", err)
		}
		if err := closeOutput(); err != nil {
			return err
		}
	}
	if po.output == stdoutPath {
		return nil
	}

	printSummary(c.Console, filepath.Base(file), ifc.Summarize(model.Graph), po.top, hit)
	if po.output != "" {
		printFile(c.Console, po.output)
	}
	return nil
}

// printSummary prints the record statistics of a file.
func printSummary(w io.Writer, name string, s ifc.Stats, top int, cached bool) {
	state := iconFresh
	if cached {
		state = iconCached
	}
	printSuccess(w, "Parsed %s %s", name, StyleDim.Render("("+state+")"))
	printKeyValue(w, "records", humanize.Comma(int64(s.Records)))
	printKeyValue(w, "references", humanize.Comma(int64(s.References)))
	printKeyValue(w, "dangling", humanize.Comma(int64(s.Dangling)))

	if len(s.Entities) == 0 {
		return
	}
	fmt.Fprintln(w)
	for i, e := range s.Entities {
		if i == top {
			printDetail(w, "… %d more entity types", len(s.Entities)-top)
			break
		}
		printKeyValue(w, StyleHighlight.Render(humanize.Comma(int64(e.Count))), e.Entity)
	}
	fmt.Fprintln(w)
	printNextStep(w, "Draw a record", fmt.Sprintf("%s render %s --tag <n>", appName, name))
}
