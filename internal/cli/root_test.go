package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/ifcgraph/pkg/errors"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"render", "parse", "cache", "config", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing subcommand %q in %v", want, names)
		}
	}
	if root.Name() != appName {
		t.Errorf("Name() = %q, want %q", root.Name(), appName)
	}
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	tc := newTestCLI(t, &fakePrompter{})
	if err := tc.run(t, "a.ifc", "b.ifc"); err == nil {
		t.Error("two files should be rejected")
	}
}

func TestRootCommandInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[render]\nrenderer = \"ascii\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := &fakePrompter{}
	tc := newTestCLI(t, p)
	err := tc.run(t, "--config", cfgPath)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("error = %v, want INVALID_CONFIG", err)
	}
	if len(p.asked) != 0 {
		t.Errorf("no prompt should run with a bad config, asked %v", p.asked)
	}
}

func TestRootCommandDisplayConfig(t *testing.T) {
	model := writeModel(t, wallIFC)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[display]\nopen = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tc := newTestCLI(t, &fakePrompter{tag: "1", tagOK: true})
	if err := tc.run(t, "--config", cfgPath, model); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tc.viewed) != 0 {
		t.Errorf("display.open = false should not open a viewer, viewed %v", tc.viewed)
	}

	// The flag wins over the config.
	tc = newTestCLI(t, &fakePrompter{tag: "1", tagOK: true})
	if err := tc.run(t, "--config", cfgPath, "--open", model); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tc.viewed) != 1 {
		t.Fatalf("--open should open a viewer, viewed %v", tc.viewed)
	}
	os.Remove(tc.viewed[0])
}

func TestCompletionCommand(t *testing.T) {
	tc := newTestCLI(t, &fakePrompter{})
	if err := tc.run(t, "completion", "bash"); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(tc.out.String(), appName) {
		t.Error("bash completion should mention the program name")
	}
}

func TestRootCommandVerbose(t *testing.T) {
	tc := newTestCLI(t, &fakePrompter{})
	if err := tc.run(t, "-v", "cache", "path"); err != nil {
		t.Fatal(err)
	}
	if tc.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", tc.Logger.GetLevel())
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    []string
		notWant string
	}{
		{"coded", errors.New(errors.ErrCodeTagNotFound, "tag #99 does not exist"), []string{"tag #99 does not exist", "code TAG_NOT_FOUND"}, "TAG_NOT_FOUND: tag"},
		{"plain", fmt.Errorf("layout: boom"), []string{"layout: boom"}, "code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ReportError(&buf, tt.err)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			if strings.Contains(out, tt.notWant) {
				t.Errorf("output %q should not contain %q", out, tt.notWant)
			}
		})
	}
}
