// Package config loads the ifcgraph TOML configuration file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/ifcgraph/pkg/errors"
	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/render"
)

// Config holds ifcgraph configuration.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Render  RenderConfig  `toml:"render"`
	Display DisplayConfig `toml:"display"`
	Cache   CacheConfig   `toml:"cache"`
}

// LayoutConfig controls the force-directed layout.
type LayoutConfig struct {
	Seed       uint64 `toml:"seed"`
	Iterations int    `toml:"iterations"`
}

// RenderConfig controls image output.
type RenderConfig struct {
	Renderer      string  `toml:"renderer"` // "canvas", "graphviz"
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	UpwardColor   string  `toml:"upward_color"`
	DownwardColor string  `toml:"downward_color"`
	NodeColor     string  `toml:"node_color"`
	MinAlpha      float64 `toml:"min_alpha"`
}

// DisplayConfig controls what happens after an image is produced.
type DisplayConfig struct {
	Open bool `toml:"open"` // open with the system viewer
}

// CacheConfig controls the parse cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	TTL     string `toml:"ttl"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{Seed: layout.DefaultSeed, Iterations: layout.DefaultIterations},
		Render: RenderConfig{
			Renderer:      "canvas",
			Width:         render.DefaultWidth,
			Height:        render.DefaultHeight,
			UpwardColor:   "#ffa500",
			DownwardColor: "#90ee90",
			NodeColor:     "#add8e6",
			MinAlpha:      render.MinAlpha,
		},
		Display: DisplayConfig{Open: true},
		Cache:   CacheConfig{Enabled: true, TTL: "168h"},
	}
}

// ConfigDir returns the ifcgraph config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ifcgraph")
}

// DefaultPath returns the path of the config file.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path, or at [DefaultPath] when path is
// empty. A missing file yields the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, or to [DefaultPath] when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// EnsureExists writes the defaults to path unless a file is already there.
// It reports whether it created the file.
func EnsureExists(path string) (bool, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	return true, Save(Default(), path)
}

// Validate reports the first invalid value as an INVALID_CONFIG error.
func (c *Config) Validate() error {
	if c.Layout.Iterations <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.iterations must be positive, got %d", c.Layout.Iterations)
	}
	switch c.Render.Renderer {
	case "canvas", "graphviz":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "render.renderer must be canvas or graphviz, got %q", c.Render.Renderer)
	}
	if err := errors.ValidateImageSize(c.Render.Width, c.Render.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render size")
	}
	if c.Render.MinAlpha < 0 || c.Render.MinAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.min_alpha must be within [0, 1], got %v", c.Render.MinAlpha)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// Palette returns the render palette with the configured colours.
func (c *Config) Palette() (render.Palette, error) {
	p := render.DefaultPalette()
	for _, field := range []struct {
		key   string
		value string
		dst   *colorful.Color
	}{
		{"render.upward_color", c.Render.UpwardColor, &p.Upward},
		{"render.downward_color", c.Render.DownwardColor, &p.Downward},
		{"render.node_color", c.Render.NodeColor, &p.Node},
	} {
		if field.value == "" {
			continue
		}
		col, err := render.ParseColor(field.value)
		if err != nil {
			return render.Palette{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", field.key)
		}
		*field.dst = col
	}
	return p, nil
}

// CacheTTL returns the parsed cache.ttl. An empty value means no expiry.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.ttl")
	}
	if d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return d, nil
}
