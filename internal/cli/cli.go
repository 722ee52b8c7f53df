package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ifcgraph/internal/config"
	"github.com/matzehuels/ifcgraph/pkg/buildinfo"
	"github.com/matzehuels/ifcgraph/pkg/cache"
	"github.com/matzehuels/ifcgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "ifcgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Console receives human readable output. Diagnostics go to Logger.
	Console io.Writer

	// In and Out carry the interactive prompts.
	In  io.Reader
	Out io.Writer

	configPath string
	noCache    bool
	verbose    bool
	cfg        *config.Config

	// newPrompter and view are swapped out in tests.
	newPrompter func(in io.Reader, out io.Writer) prompter
	view        func(path string) error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		Console:     os.Stdout,
		In:          os.Stdin,
		Out:         os.Stdout,
		newPrompter: newTeaPrompter,
		view:        openInViewer,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// settings returns the loaded configuration, or the defaults before
// PersistentPreRunE has run.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	cfg := c.settings()
	store, err := newCache(c.noCache || !cfg.Cache.Enabled)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	if ttl, err := cfg.CacheTTL(); err == nil {
		runner.TTL = ttl
	}
	return runner, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// baseOptions returns pipeline options filled from the configuration.
// Command flags are applied on top.
func (c *CLI) baseOptions() (pipeline.Options, error) {
	cfg := c.settings()
	palette, err := cfg.Palette()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Seed:       cfg.Layout.Seed,
		Iterations: cfg.Layout.Iterations,
		Renderer:   cfg.Render.Renderer,
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		Palette:    &palette,
		MinAlpha:   cfg.Render.MinAlpha,
		Logger:     c.Logger,
	}, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/ifcgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// flagChanged reports whether the named flag was set on the command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
