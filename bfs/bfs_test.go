package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/katalvlaran/friendrec/bfs"
	"github.com/katalvlaran/friendrec/digraph"
)

// chain builds the directed path v0 → v1 → ... → vN.
func chain(n int) *digraph.Graph {
	g := digraph.New()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := digraph.New()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := digraph.New()
	g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := digraph.New()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if res.Candidates() != nil && len(res.Candidates()) != 0 {
		t.Errorf("Candidates = %v; want empty", res.Candidates())
	}
}

// TestBFS_DirectedChain checks depths along a directed path and that
// edges are never followed backwards.
func TestBFS_DirectedChain(t *testing.T) {
	g := chain(3) // v0 → v1 → v2 → v3

	res, err := bfs.BFS(g, "v0")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v0", "v1", "v2", "v3"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for i := 0; i <= 3; i++ {
		id := "v" + strconv.Itoa(i)
		if got := res.Depth[id]; got != i {
			t.Errorf("Depth[%s] = %d; want %d", id, got, i)
		}
	}

	// From the middle: upstream vertices stay unreached.
	res, err = bfs.BFS(g, "v2")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v2", "v3"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order from v2 = %v; want %v", res.Order, want)
	}
	for _, id := range []string{"v0", "v1"} {
		if _, ok := res.Depth[id]; ok {
			t.Errorf("Depth[%s] present; upstream vertex must keep the infinite sentinel (absent)", id)
		}
		if res.Color[id] != bfs.Unvisited {
			t.Errorf("Color[%s] = %v; want Unvisited", id, res.Color[id])
		}
	}
}

// TestBFS_MaxDepth verifies the depth ceiling: vertices at exactly the
// limit are recorded but not expanded, and the limit bounds depths, not
// loop steps.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(3) // v0 → v1 → v2 → v3

	// depth = 1: only the direct neighbor
	if res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"v0", "v1"}) {
		t.Errorf("MaxDepth=1: got %v; want [v0 v1]", res.Order)
	}
	// depth = 2: v2 is recorded but its neighbor v3 is not
	res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if want := []string{"v0", "v1", "v2"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=2: got %v; want %v", res.Order, want)
	}
	if want := []string{"v1", "v2"}; !reflect.DeepEqual(res.Candidates(), want) {
		t.Errorf("MaxDepth=2 candidates: got %v; want %v", res.Candidates(), want)
	}
	// depth = 0: explicit no limit
	if res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(0)); len(res.Order) != 4 {
		t.Errorf("MaxDepth=0: got %v; want full traversal", res.Order)
	}
	// depth > graph size: same full traversal
	if res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(10)); len(res.Order) != 4 {
		t.Errorf("MaxDepth=10: got %v; want full traversal", res.Order)
	}
}

// TestBFS_DepthLimitedExactness asserts the depth-limited result is
// exactly the vertex set with 1 ≤ depth ≤ k, each once, source excluded.
func TestBFS_DepthLimitedExactness(t *testing.T) {
	// Diamond with a tail: A → {B, C} → D → E
	g := digraph.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")
	g.AddEdge("D", "E")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	// D reachable twice, discovered once.
	if want := []string{"B", "C", "D"}; !reflect.DeepEqual(res.Candidates(), want) {
		t.Errorf("candidates = %v; want %v", res.Candidates(), want)
	}
	for id, wantDepth := range map[string]int{"A": 0, "B": 1, "C": 1, "D": 2} {
		if got := res.Depth[id]; got != wantDepth {
			t.Errorf("Depth[%s] = %d; want %d", id, got, wantDepth)
		}
	}
	if _, ok := res.Depth["E"]; ok {
		t.Error("E beyond the depth ceiling must stay undiscovered")
	}
}

// TestBFS_Colors checks that every reached vertex ends Finished and that
// re-discovery is impossible in a cycle.
func TestBFS_Colors(t *testing.T) {
	g := digraph.New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A") // cycle
	g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v (each vertex discovered exactly once)", res.Order, want)
	}
	for _, id := range res.Order {
		if res.Color[id] != bfs.Finished {
			t.Errorf("Color[%s] = %v; want Finished after traversal", id, res.Color[id])
		}
	}
}

// TestBFS_SelfLoop ensures a self-loop does not re-enqueue the source.
func TestBFS_SelfLoop(t *testing.T) {
	g := digraph.New()
	g.AddEdge("A", "A")
	g.AddEdge("A", "B")
	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("self-loop: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisit asserts the hook fires in discovery order with depths,
// and that a hook error aborts the traversal.
func TestBFS_OnVisit(t *testing.T) {
	g := chain(2) // v0 → v1 → v2

	var seen []string
	_, err := bfs.BFS(g, "v0", bfs.WithOnVisit(func(id string, d int) error {
		seen = append(seen, id+"@"+strconv.Itoa(d))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v0@0", "v1@1", "v2@2"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("OnVisit sequence = %v; want %v", seen, want)
	}

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "v0", bfs.WithOnVisit(func(id string, d int) error {
		if id == "v1" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit abort: want wrapped boom, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := chain(2)
	res, _ := bfs.BFS(g, "v0")
	if path, _ := res.PathTo("v2"); !reflect.DeepEqual(path, []string{"v0", "v1", "v2"}) {
		t.Errorf("PathTo v2: got %v; want [v0 v1 v2]", path)
	}
	if path, _ := res.PathTo("v0"); !reflect.DeepEqual(path, []string{"v0"}) {
		t.Errorf("PathTo start: got %v; want [v0]", path)
	}
	if _, err := res.PathTo("ghost"); err == nil {
		t.Error("PathTo unreachable: expected error, got nil")
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_IndependentRuns ensures two runs over the same graph never
// observe each other's state: each call gets a fresh Result.
func TestBFS_IndependentRuns(t *testing.T) {
	g := chain(3)
	first, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	second, err := bfs.BFS(g, "v0")
	if err != nil {
		t.Fatal(err)
	}
	// The unlimited run reaches v3; the limited run's maps must not have grown.
	if _, ok := second.Depth["v3"]; !ok {
		t.Error("unlimited run should reach v3")
	}
	if _, ok := first.Depth["v3"]; ok {
		t.Error("earlier limited run leaked state from a later traversal")
	}
}
