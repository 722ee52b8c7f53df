package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

func chain(t *testing.T, n int) *refgraph.Graph {
	t.Helper()
	g := refgraph.New()
	for i := 1; i <= n; i++ {
		_ = g.SetNode(refgraph.Node{Tag: fmt.Sprintf("#%d", i), Entity: "IFCPOINT"})
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(refgraph.Edge{From: fmt.Sprintf("#%d", i), To: fmt.Sprintf("#%d", i+1)}); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestComputeDeterministic(t *testing.T) {
	g := chain(t, 8)
	_ = g.AddEdge(refgraph.Edge{From: "#1", To: "#5"})
	_ = g.AddEdge(refgraph.Edge{From: "#1", To: "#5"})
	_ = g.AddEdge(refgraph.Edge{From: "#3", To: "#3"})

	a := Compute(g, DefaultOptions())
	b := Compute(g, DefaultOptions())

	if len(a) != g.NodeCount() {
		t.Fatalf("len(positions) = %d, want %d", len(a), g.NodeCount())
	}
	for tag, p := range a {
		if b[tag] != p {
			t.Errorf("position of %s differs between runs: %v vs %v", tag, p, b[tag])
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Errorf("position of %s is NaN", tag)
		}
	}
}

func TestComputeSeedChangesLayout(t *testing.T) {
	g := chain(t, 6)

	opts := DefaultOptions()
	a := Compute(g, opts)
	opts.Seed = 7
	b := Compute(g, opts)

	same := true
	for tag := range a {
		if a[tag] != b[tag] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestComputeSmallGraphs(t *testing.T) {
	if pos := Compute(refgraph.New(), DefaultOptions()); len(pos) != 0 {
		t.Errorf("empty graph: got %d positions", len(pos))
	}

	g := refgraph.New()
	_ = g.SetNode(refgraph.Node{Tag: "#5", Entity: "IFCPOINT"})
	_ = g.AddEdge(refgraph.Edge{From: "#5", To: "#5"})
	pos := Compute(g, DefaultOptions())
	if p, ok := pos["#5"]; !ok || p != (Point{}) {
		t.Errorf("single node position = %v, %v; want origin", p, ok)
	}
}

func TestComputeIncludesPlaceholders(t *testing.T) {
	g := refgraph.New()
	_ = g.SetNode(refgraph.Node{Tag: "#1", Entity: "IFCWALL"})
	_ = g.SetNode(refgraph.Node{Tag: "#9", Placeholder: true})
	_ = g.AddEdge(refgraph.Edge{From: "#1", To: "#9"})

	pos := Compute(g, DefaultOptions())
	if _, ok := pos["#9"]; !ok {
		t.Error("placeholder node has no position")
	}
	if pos["#1"] == pos["#9"] {
		t.Error("connected nodes placed on the same point")
	}
}

func TestCircle(t *testing.T) {
	pos := Circle(chain(t, 4))
	top := pos["#1"]
	if math.Abs(top.X) > 1e-9 || math.Abs(top.Y-1) > 1e-9 {
		t.Errorf("first node = %v, want (0, 1)", top)
	}
	for tag, p := range pos {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-1) > 1e-9 {
			t.Errorf("%s radius = %v, want 1", tag, r)
		}
	}
}

func TestBoundsAndAbove(t *testing.T) {
	pos := Positions{
		"#1": {X: -1, Y: 2},
		"#2": {X: 3, Y: -4},
	}
	b := pos.Bounds()
	if b.Min != (Point{X: -1, Y: -4}) || b.Max != (Point{X: 3, Y: 2}) {
		t.Errorf("Bounds() = %+v", b)
	}
	if b.Width() != 4 || b.Height() != 6 {
		t.Errorf("Width/Height = %v/%v, want 4/6", b.Width(), b.Height())
	}
	if !pos.Above("#1", "#2") || pos.Above("#2", "#1") {
		t.Error("Above() wrong for #1 over #2")
	}
	if (Positions{}).Bounds() != (Rect{}) {
		t.Error("empty Bounds() should be zero")
	}
}

func TestPhysGraph(t *testing.T) {
	g := chain(t, 3)
	_ = g.AddEdge(refgraph.Edge{From: "#2", To: "#1"})
	_ = g.AddEdge(refgraph.Edge{From: "#1", To: "#404"})

	pg := newPhysGraph(g)
	if !pg.HasEdgeBetween(0, 1) || !pg.HasEdgeBetween(1, 0) {
		t.Error("expected undirected edge between #1 and #2")
	}
	if got := len(pg.adjacency[0]); got != 1 {
		t.Errorf("#1 neighbours = %d, want 1 (duplicates and dangling dropped)", got)
	}
	if pg.Edge(0, 2) != nil {
		t.Error("unexpected edge between #1 and #3")
	}
	if pg.Node(99) != nil {
		t.Error("Node(99) should be nil")
	}
	if n := pg.Nodes().Len(); n != 3 {
		t.Errorf("Nodes().Len() = %d, want 3", n)
	}
}
