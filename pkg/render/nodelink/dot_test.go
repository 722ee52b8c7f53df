package nodelink

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
	"github.com/matzehuels/ifcgraph/pkg/render"
)

func testScene(t *testing.T) *render.Scene {
	t.Helper()
	g := refgraph.New()
	_ = g.SetNode(refgraph.Node{Tag: "#1", Entity: "IFCWALL"})
	_ = g.SetNode(refgraph.Node{Tag: "#2", Entity: "IFCPOINT"})
	_ = g.AddEdge(refgraph.Edge{From: "#1", To: "#2"})
	_ = g.AddEdge(refgraph.Edge{From: "#2", To: "#7"})

	trace, err := g.Reach("#1", refgraph.ReachOptions{})
	if err != nil {
		t.Fatal(err)
	}
	pos := layout.Positions{
		"#1": {X: 0, Y: 0},
		"#2": {X: 1, Y: 1},
		"#7": {X: 2, Y: 0},
	}
	return render.NewScene(trace, pos, render.DefaultOptions())
}

func TestToDOT(t *testing.T) {
	s := testScene(t)
	dot := ToDOT(s)

	tests := []struct {
		name string
		want string
	}{
		{"engine", "layout=neato;"},
		{"title", `label="IFC File Connections Graph - Starting Tag: #1";`},
		{"start label", `"#1" [label="#1\nIFCWALL"`},
		{"placeholder label", `"#7" [label="#7\n?"`},
		{"start border", "penwidth=3"},
		{"thin border", "penwidth=0.5"},
		{"placeholder dashed", `style="filled,dashed"`},
		{"node fill", `fillcolor="#add8e6ff"`},
		{"upward edge", `"#1" -> "#2" [color="#ffa50080"]`},
		{"faded downward edge", `"#2" -> "#7" [color="#90ee904d"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(dot, tt.want) {
				t.Errorf("DOT missing %q:\n%s", tt.want, dot)
			}
		})
	}
}

func TestToDOTPinsPositions(t *testing.T) {
	s := testScene(t)
	dot := ToDOT(s)

	for _, n := range s.Nodes {
		want := `pos="` + ftoa(n.X) + "," + ftoa(float64(s.Height)-n.Y) + `!"`
		if !strings.Contains(dot, want) {
			t.Errorf("node %s: DOT missing %s", n.Tag, want)
		}
	}
	if strings.Count(dot, "pos=") != len(s.Nodes) {
		t.Errorf("pos count = %d, want %d", strings.Count(dot, "pos="), len(s.Nodes))
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	if !strings.Contains(got, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", got)
	}
	if strings.Contains(got, "pt") {
		t.Errorf("point units left in root element: %s", got)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox must be returned unchanged")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(context.Background(), ToDOT(testScene(t)))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG(context.Background(), ToDOT(testScene(t)))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}
