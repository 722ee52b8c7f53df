package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wallIFC = `ISO-10303-21;
DATA;
#1= IFCWALL('guid',#2,#3);
#2= IFCCARTESIANPOINT((0.,0.,0.));
#3= IFCPOLYLINE((#2,#4));
#4= IFCCARTESIANPOINT((1.,0.,0.));
#5= IFCBUILDING(#1);
ENDSEC;
END-ISO-10303-21;
`

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// fakePrompter answers prompts from fixed values and records the questions.
type fakePrompter struct {
	file   string
	fileOK bool
	tag    string
	tagOK  bool
	save   string
	saveOK bool

	pickedIn  string
	suggested string
	asked     []string
}

func (p *fakePrompter) PickFile(ctx context.Context, dir string) (string, bool, error) {
	p.asked = append(p.asked, "file")
	p.pickedIn = dir
	return p.file, p.fileOK, nil
}

func (p *fakePrompter) AskTag(ctx context.Context) (string, bool, error) {
	p.asked = append(p.asked, "tag")
	return p.tag, p.tagOK, nil
}

func (p *fakePrompter) AskSavePath(ctx context.Context, suggested string) (string, bool, error) {
	p.asked = append(p.asked, "save")
	p.suggested = suggested
	return p.save, p.saveOK, nil
}

// testCLI is a CLI wired to buffers, a fake prompter and a recording viewer.
type testCLI struct {
	*CLI
	console *bytes.Buffer
	out     *bytes.Buffer
	prompt  *fakePrompter
	viewed  []string
}

func newTestCLI(t *testing.T, p *fakePrompter) *testCLI {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tc := &testCLI{
		CLI:     New(io.Discard, LogInfo),
		console: &bytes.Buffer{},
		out:     &bytes.Buffer{},
		prompt:  p,
	}
	tc.Console = tc.console
	tc.Out = tc.out
	tc.In = strings.NewReader("")
	tc.newPrompter = func(io.Reader, io.Writer) prompter { return p }
	tc.view = func(path string) error {
		tc.viewed = append(tc.viewed, path)
		return nil
	}
	return tc
}

func (tc *testCLI) run(t *testing.T, args ...string) error {
	t.Helper()
	root := tc.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wall.ifc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInteractiveRejectedSelections(t *testing.T) {
	model := writeModel(t, wallIFC)
	notes := filepath.Join(filepath.Dir(model), "notes.txt")
	if err := os.WriteFile(notes, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		args      []string
		prompt    fakePrompter
		wantMsg   string
		wantAsked []string
	}{
		{
			name:      "picker cancelled",
			prompt:    fakePrompter{},
			wantMsg:   msgInvalidFile,
			wantAsked: []string{"file"},
		},
		{
			name:      "picked a non ifc file",
			prompt:    fakePrompter{file: notes, fileOK: true},
			wantMsg:   msgInvalidFile,
			wantAsked: []string{"file"},
		},
		{
			name:    "argument is not an ifc file",
			args:    []string{notes},
			wantMsg: msgInvalidFile,
		},
		{
			name:    "argument does not exist",
			args:    []string{filepath.Join(t.TempDir(), "missing.ifc")},
			wantMsg: msgInvalidFile,
		},
		{
			name:      "unknown tag",
			args:      []string{model},
			prompt:    fakePrompter{tag: "99", tagOK: true},
			wantMsg:   msgUnknownTag,
			wantAsked: []string{"tag"},
		},
		{
			name:      "tag prompt cancelled",
			args:      []string{model},
			prompt:    fakePrompter{},
			wantMsg:   msgUnknownTag,
			wantAsked: []string{"tag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.prompt
			tc := newTestCLI(t, &p)
			if err := tc.run(t, tt.args...); err != nil {
				t.Fatalf("run: %v", err)
			}
			if !strings.Contains(tc.console.String(), tt.wantMsg) {
				t.Errorf("console = %q, want %q", tc.console.String(), tt.wantMsg)
			}
			if strings.Join(p.asked, ",") != strings.Join(tt.wantAsked, ",") {
				t.Errorf("asked = %v, want %v", p.asked, tt.wantAsked)
			}
			if len(tc.viewed) != 0 {
				t.Errorf("viewer opened %v", tc.viewed)
			}
		})
	}
}

func TestInteractiveSave(t *testing.T) {
	model := writeModel(t, wallIFC)
	dir := filepath.Dir(model)

	p := &fakePrompter{
		file:   model,
		fileOK: true,
		tag:    "1",
		tagOK:  true,
		save:   filepath.Join(dir, "wall graph"),
		saveOK: true,
	}
	tc := newTestCLI(t, p)
	if err := tc.run(t); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := strings.Join(p.asked, ","); got != "file,tag,save" {
		t.Errorf("asked = %s", got)
	}
	if want := filepath.Join(dir, "wall_1.png"); p.suggested != want {
		t.Errorf("suggested = %q, want %q", p.suggested, want)
	}

	saved := filepath.Join(dir, "wall graph.png")
	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("read saved image: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("saved file is not a PNG")
	}
	if !strings.Contains(tc.console.String(), "Graph saved to "+saved) {
		t.Errorf("console = %q", tc.console.String())
	}
	if len(tc.viewed) != 1 || tc.viewed[0] != saved {
		t.Errorf("viewed = %v, want [%s]", tc.viewed, saved)
	}
}

func TestInteractiveSaveCancelled(t *testing.T) {
	model := writeModel(t, wallIFC)
	p := &fakePrompter{tag: "#3", tagOK: true}
	tc := newTestCLI(t, p)

	if err := tc.run(t, model); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(tc.console.String(), "Graph saved") {
		t.Error("nothing should be saved")
	}
	if len(tc.viewed) != 1 {
		t.Fatalf("viewed = %v, want a preview", tc.viewed)
	}
	preview := tc.viewed[0]
	t.Cleanup(func() { os.Remove(preview) })

	data, err := os.ReadFile(preview)
	if err != nil {
		t.Fatalf("read preview: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("preview is not a PNG")
	}
}

func TestInteractiveNoOpen(t *testing.T) {
	model := writeModel(t, wallIFC)
	p := &fakePrompter{tag: "2", tagOK: true}
	tc := newTestCLI(t, p)

	if err := tc.run(t, "--open=false", model); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(tc.viewed) != 0 {
		t.Errorf("viewed = %v, want none", tc.viewed)
	}
}

func TestSuggestedName(t *testing.T) {
	tests := []struct {
		file, tag, ext string
		want           string
	}{
		{"model.ifc", "#24", "png", "model_24.png"},
		{filepath.Join("a", "b", "house.IFC"), "#7", "svg", filepath.Join("a", "b", "house_7.svg")},
		{"plain", "#1", "json", "plain_1.json"},
	}
	for _, tt := range tests {
		if got := suggestedName(tt.file, tt.tag, tt.ext); got != tt.want {
			t.Errorf("suggestedName(%q, %q, %q) = %q, want %q", tt.file, tt.tag, tt.ext, got, tt.want)
		}
	}
}

func TestWithPNGExtension(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"graph", "graph.png"},
		{"graph.png", "graph.png"},
		{"graph.jpeg", "graph.jpeg"},
		{filepath.Join("out.d", "graph"), filepath.Join("out.d", "graph.png")},
	}
	for _, tt := range tests {
		if got := withPNGExtension(tt.in); got != tt.want {
			t.Errorf("withPNGExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
