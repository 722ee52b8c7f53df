package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ifcgraph/pkg/errors"
	"github.com/matzehuels/ifcgraph/pkg/ifc"
	"github.com/matzehuels/ifcgraph/pkg/pipeline"
)

// Console messages of the interactive session.
const (
	msgInvalidFile = "Invalid file selected. Please select a valid IFC file."
	msgUnknownTag  = "The tag does not exist in the file. Please try again."
)

// runInteractive runs one prompt-driven session. A file given on the
// command line skips the picker.
func (c *CLI) runInteractive(ctx context.Context, file string, open bool) error {
	runner, err := c.newRunner()
	if err != nil {
		return err
	}
	defer runner.Close()

	opts, err := c.baseOptions()
	if err != nil {
		return err
	}
	opts.Format = pipeline.FormatPNG

	s := &session{
		runner:  runner,
		prompt:  c.newPrompter(c.In, c.Out),
		console: c.Console,
		logger:  c.Logger,
		opts:    opts,
		open:    open,
		view:    c.view,
	}
	return s.run(ctx, file)
}

// session holds the state of one interactive run. The prompter is created
// once and reused for every question.
type session struct {
	runner  *pipeline.Runner
	prompt  prompter
	console io.Writer
	logger  *log.Logger
	opts    pipeline.Options
	open    bool
	view    func(path string) error
}

// run asks for a file and a tag, renders the trace and saves it.
// Bad selections print a message and end the session without an error.
func (s *session) run(ctx context.Context, file string) error {
	if file == "" {
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		path, ok, err := s.prompt.PickFile(ctx, dir)
		if err != nil {
			return err
		}
		if !ok {
			printWarning(s.console, msgInvalidFile)
			return nil
		}
		file = path
	}
	if !ifc.HasIFCExtension(file) {
		printWarning(s.console, msgInvalidFile)
		return nil
	}

	opts := s.opts
	opts.File = file

	var (
		model    *pipeline.Model
		parseHit bool
	)
	err := withSpinner(ctx, s.console, "Parsing "+filepath.Base(file), func() (err error) {
		model, parseHit, err = s.runner.ParseWithCacheInfo(ctx, opts)
		return err
	})
	if errors.IsSelection(err) {
		s.logger.Debug("file rejected", "file", file, "err", err)
		printWarning(s.console, msgInvalidFile)
		return nil
	}
	if err != nil {
		return err
	}
	printSuccess(s.console, "Parsed %s", filepath.Base(file))
	printDetail(s.console, "%d records, %d references", model.Graph.NodeCount(), model.Graph.EdgeCount())
	if parseHit {
		s.logger.Debug("parse cache hit", "file", file)
	}

	// A cancelled prompt counts as an empty tag, which never exists.
	tag, _, err := s.prompt.AskTag(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(tag) == "" {
		printWarning(s.console, msgUnknownTag)
		return nil
	}
	opts.Tag = tag

	trace, err := s.runner.Trace(ctx, model, opts)
	if errors.IsLookup(err) {
		printWarning(s.console, msgUnknownTag)
		return nil
	}
	if err != nil {
		return err
	}

	var (
		png                  []byte
		layoutHit, renderHit bool
	)
	err = withSpinner(ctx, s.console, "Drawing "+trace.Start, func() error {
		pos, hit, err := s.runner.LayoutWithCacheInfo(ctx, model, trace, opts)
		if err != nil {
			return fmt.Errorf("layout: %w", err)
		}
		layoutHit = hit
		png, renderHit, err = s.runner.RenderWithCacheInfo(ctx, model, trace, pos, opts)
		return err
	})
	if err != nil {
		return err
	}
	printStats(s.console, trace.Graph.NodeCount(), trace.Graph.EdgeCount(), trace.MaxDistance(), layoutHit && renderHit)

	target, ok, err := s.prompt.AskSavePath(ctx, suggestedName(file, trace.Start, pipeline.FormatPNG))
	if err != nil {
		return err
	}
	target = strings.TrimSpace(target)

	var shown string
	if ok && target != "" {
		target = withPNGExtension(target)
		if err := errors.ValidateOutputPath(target); err != nil {
			return err
		}
		if err := os.WriteFile(target, png, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFile, err, "write %s", target)
		}
		fmt.Fprintf(s.console, "Graph saved to %s\n", target)
		shown = target
	}

	if !s.open {
		return nil
	}
	if shown == "" {
		tmp, err := writeTemp(png)
		if err != nil {
			s.logger.Warn("could not prepare preview", "err", err)
			return nil
		}
		shown = tmp
	}
	if err := s.view(shown); err != nil {
		s.logger.Warn("could not open viewer", "file", shown, "err", err)
	}
	return nil
}

// suggestedName returns "<dir>/<name>_<n>.<ext>" for file "<dir>/<name>.ifc"
// and tag "#<n>".
func suggestedName(file, tag, ext string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	name := fmt.Sprintf("%s_%s.%s", base, strings.TrimPrefix(tag, "#"), ext)
	return filepath.Join(filepath.Dir(file), name)
}

// withPNGExtension appends ".png" to a path without an extension.
func withPNGExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + "." + pipeline.FormatPNG
	}
	return path
}

// writeTemp stores an unsaved image so the viewer can show it.
func writeTemp(png []byte) (string, error) {
	f, err := os.CreateTemp("", appName+"-*.png")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(png); err != nil {
		return "", err
	}
	return f.Name(), nil
}
