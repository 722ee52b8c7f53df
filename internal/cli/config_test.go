package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/ifcgraph/internal/config"
)

func TestConfigInit(t *testing.T) {
	tc := newTestCLI(t, &fakePrompter{})
	path := filepath.Join(t.TempDir(), "ifcgraph.toml")

	if err := tc.run(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(tc.console.String(), "Created config") {
		t.Errorf("console = %q", tc.console.String())
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Render.Width != config.Default().Render.Width {
		t.Errorf("width = %d, want default", cfg.Render.Width)
	}

	if err := os.WriteFile(path, []byte("[layout]\nseed = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tc.console.Reset()
	if err := tc.run(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(tc.console.String(), "already exists") {
		t.Errorf("console = %q", tc.console.String())
	}

	if err := tc.run(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Fatalf("forced init: %v", err)
	}
	if cfg, _ := config.Load(path); cfg.Layout.Seed != config.Default().Layout.Seed {
		t.Errorf("--force should restore the default seed, got %d", cfg.Layout.Seed)
	}
}

func TestConfigShowAndPath(t *testing.T) {
	tc := newTestCLI(t, &fakePrompter{})
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render]\nrenderer = \"graphviz\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := tc.run(t, "--config", path, "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}
	out := tc.out.String()
	for _, want := range []string{"[render]", `renderer = "graphviz"`, "[cache]"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}

	tc.out.Reset()
	if err := tc.run(t, "config", "path"); err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got := strings.TrimSpace(tc.out.String()); got != config.DefaultPath() {
		t.Errorf("config path = %q, want %q", got, config.DefaultPath())
	}
}
