// Package cli implements the ifcgraph command-line interface.
//
// Running ifcgraph without a subcommand starts the interactive session: a
// file picker, a prompt for the starting tag and a save-as prompt, each a
// small bubbletea program. The render and parse subcommands run the same
// pipeline without prompts, for scripts.
//
// # Commands
//
//   - render: Draw the trace of one tag as PNG, SVG, DOT, JSON or YAML
//   - parse: Print record statistics and export the full reference graph
//   - cache: Manage the parse/layout/render cache
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log; console messages for
// the user go to stdout. --verbose (-v) adds debug lines for every pipeline
// stage and cache lookup.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ifcgraph/pkg/observability"
)

// newLogger returns a logger writing to w with "HH:MM:SS.cc" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command stage.
type progress struct {
	logger *log.Logger
	msg    string
	start  time.Time
}

func newProgress(l *log.Logger, msg string) *progress {
	return &progress{logger: l, msg: msg, start: time.Now()}
}

// done logs the stage message with keyvals and the elapsed time, e.g.
// "parsed file=wall.ifc records=5 took=3ms".
func (p *progress) done(keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(p.msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks turns pipeline and cache events into debug lines.
type logHooks struct {
	logger *log.Logger
}

// registerHooks routes observability events to the CLI logger.
func (c *CLI) registerHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnParseStart(_ context.Context, file string) {
	h.logger.Debug("parse started", "file", file)
}

func (h logHooks) OnParseComplete(_ context.Context, file string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "file", file, "err", err)
		return
	}
	h.logger.Debug("parse finished", "file", file, "records", records, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnTraceComplete(_ context.Context, start string, nodes, maxDistance int, err error) {
	if err != nil {
		h.logger.Debug("trace failed", "start", start, "err", err)
		return
	}
	h.logger.Debug("trace finished", "start", start, "nodes", nodes, "max_distance", maxDistance)
}

func (h logHooks) OnLayoutStart(_ context.Context, nodes int) {
	h.logger.Debug("layout started", "nodes", nodes)
}

func (h logHooks) OnLayoutComplete(_ context.Context, nodes int, d time.Duration, err error) {
	h.logger.Debug("layout finished", "nodes", nodes, "took", d.Round(time.Millisecond), "err", err)
}

func (h logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render started", "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render finished", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, stage string) {
	h.logger.Debug("cache hit", "stage", stage)
}

func (h logHooks) OnCacheMiss(_ context.Context, stage string) {
	h.logger.Debug("cache miss", "stage", stage)
}

func (h logHooks) OnCacheSet(_ context.Context, stage string, size int) {
	h.logger.Debug("cache write", "stage", stage, "bytes", size)
}
