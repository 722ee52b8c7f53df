package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/ifcgraph/pkg/errors"
	"github.com/matzehuels/ifcgraph/pkg/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Layout.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Layout.Seed)
	}
	if cfg.Render.Renderer != "canvas" {
		t.Errorf("expected renderer canvas, got %q", cfg.Render.Renderer)
	}
	if cfg.Render.Width != 1200 || cfg.Render.Height != 800 {
		t.Errorf("expected 1200x800, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if !cfg.Display.Open {
		t.Error("default display.open should be true")
	}
	if !cfg.Cache.Enabled {
		t.Error("default cache should be enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	p, err := cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p != render.DefaultPalette() {
		t.Error("default colours should match the default palette")
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	if dir := ConfigDir(); dir != "/tmp/test-xdg/ifcgraph" {
		t.Errorf("expected /tmp/test-xdg/ifcgraph, got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "ifcgraph")
	if dir := ConfigDir(); dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Iterations != Default().Layout.Iterations {
		t.Error("missing file should yield defaults")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.Layout.Seed = 7
	cfg.Render.Renderer = "graphviz"
	cfg.Display.Open = false

	if err := Save(cfg, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "ifcgraph", "config.toml")); err != nil {
		t.Fatalf("config not written to default path: %v", err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Layout.Seed != 7 {
		t.Errorf("expected seed 7, got %d", loaded.Layout.Seed)
	}
	if loaded.Render.Renderer != "graphviz" {
		t.Errorf("expected graphviz, got %q", loaded.Render.Renderer)
	}
	if loaded.Display.Open {
		t.Error("expected display.open false after load")
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
upward_color = "red"
width = 640

[cache]
ttl = "1h"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Width != 640 || cfg.Render.Height != 800 {
		t.Errorf("size = %dx%d, want 640x800", cfg.Render.Width, cfg.Render.Height)
	}
	p, _ := cfg.Palette()
	if p.Upward.Hex() != "#ff0000" {
		t.Errorf("upward = %s, want #ff0000", p.Upward.Hex())
	}
	if p.Downward != render.DefaultPalette().Downward {
		t.Error("unset colour should keep its default")
	}
	if ttl, _ := cfg.CacheTTL(); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[render\nwidth = 1"},
		{"unknown key", "[render]\nstyle = \"handdrawn\""},
		{"renderer", "[render]\nrenderer = \"cairo\""},
		{"width", "[render]\nwidth = 0"},
		{"alpha", "[render]\nmin_alpha = 1.5"},
		{"colour", "[render]\nnode_color = \"#zzzzzz\""},
		{"iterations", "[layout]\niterations = -1"},
		{"ttl", "[cache]\nttl = \"soon\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestEnsureExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	created, err := EnsureExists(path)
	if err != nil || !created {
		t.Fatalf("EnsureExists() = %v, %v; want created", created, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file should exist: %v", err)
	}

	// Existing files are left alone.
	if err := os.WriteFile(path, []byte("[layout]\nseed = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if created, err := EnsureExists(path); err != nil || created {
		t.Fatalf("EnsureExists() = %v, %v; want existing file kept", created, err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layout.Seed != 1 {
		t.Errorf("EnsureExists overwrote the file: seed = %d", cfg.Layout.Seed)
	}
}
