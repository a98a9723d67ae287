package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/arvessen/hoplite/core"
)

func mustGraph(t *testing.T, cap int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(cap, opts...)
	if err != nil {
		t.Fatalf("NewGraph(%d) error: %v", cap, err)
	}

	return g
}

func arcsOf(t *testing.T, g *core.Graph, k core.NodeKey) []core.Arc {
	t.Helper()
	id, ok := g.Lookup(k)
	if !ok {
		t.Fatalf("key %v never resolved", k)
	}
	arcs, err := g.Arcs(id)
	if err != nil {
		t.Fatalf("Arcs(%d) error: %v", id, err)
	}

	return arcs
}

// TestNewGraph_BadCapacity verifies fail-fast on non-positive capacity.
func TestNewGraph_BadCapacity(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := core.NewGraph(n); !errors.Is(err, core.ErrBadCapacity) {
			t.Errorf("NewGraph(%d) error = %v; want ErrBadCapacity", n, err)
		}
	}
}

// TestAddEdge_Directed verifies arc asymmetry on a directed graph.
func TestAddEdge_Directed(t *testing.T) {
	g := mustGraph(t, 5)
	if err := g.AddEdge(core.Int(0), core.Int(1), 5); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}

	uArcs := arcsOf(t, g, core.Int(0))
	vid, _ := g.Lookup(core.Int(1))
	if want := []core.Arc{{To: vid, Weight: 5}}; !reflect.DeepEqual(uArcs, want) {
		t.Errorf("arcs(0) = %v; want %v", uArcs, want)
	}
	if got := arcsOf(t, g, core.Int(1)); len(got) != 0 {
		t.Errorf("arcs(1) = %v; want empty (directed)", got)
	}
	if g.HasArc(core.Int(1), core.Int(0)) {
		t.Error("HasArc(1,0) = true on directed graph")
	}
}

// TestAddEdge_Undirected verifies the mirror arc carries the same weight.
func TestAddEdge_Undirected(t *testing.T) {
	g := mustGraph(t, 5, core.WithDirected(false))
	if err := g.AddEdge(core.Int(0), core.Int(1), 3); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}

	uid, _ := g.Lookup(core.Int(0))
	vid, _ := g.Lookup(core.Int(1))
	if got, want := arcsOf(t, g, core.Int(0)), []core.Arc{{To: vid, Weight: 3}}; !reflect.DeepEqual(got, want) {
		t.Errorf("arcs(0) = %v; want %v", got, want)
	}
	if got, want := arcsOf(t, g, core.Int(1)), []core.Arc{{To: uid, Weight: 3}}; !reflect.DeepEqual(got, want) {
		t.Errorf("arcs(1) = %v; want %v", got, want)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d; want 1 (mirror counts once)", g.EdgeCount())
	}
}

// TestAddEdge_ParallelArcs verifies duplicates append rather than collapse.
func TestAddEdge_ParallelArcs(t *testing.T) {
	g := mustGraph(t, 3)
	for i := 0; i < 2; i++ {
		if err := g.AddEdge(core.Int(0), core.Int(1), 7); err != nil {
			t.Fatalf("AddEdge #%d error: %v", i, err)
		}
	}
	if got := arcsOf(t, g, core.Int(0)); len(got) != 2 {
		t.Errorf("arcs(0) has %d entries; want 2 parallel arcs", len(got))
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d; want 2", g.EdgeCount())
	}
}

// TestAddEdge_InsertionOrder verifies adjacency preserves insertion order.
func TestAddEdge_InsertionOrder(t *testing.T) {
	g := mustGraph(t, 5)
	order := []core.NodeKey{core.Int(3), core.Int(1), core.Int(4)}
	for _, v := range order {
		if err := g.AddEdge(core.Int(0), v, 0); err != nil {
			t.Fatalf("AddEdge error: %v", err)
		}
	}
	arcs := arcsOf(t, g, core.Int(0))
	for i, v := range order {
		want, _ := g.Lookup(v)
		if arcs[i].To != want {
			t.Errorf("arcs[%d].To = %d; want id of %v (%d)", i, arcs[i].To, v, want)
		}
	}
}

// TestAddEdge_TupleKeys verifies tuple-keyed endpoints resolve like ints.
func TestAddEdge_TupleKeys(t *testing.T) {
	g := mustGraph(t, 10)
	if err := g.AddEdge(core.Pair(0, 0), core.Pair(1, 1), 7); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}
	vid, _ := g.Lookup(core.Pair(1, 1))
	if got, want := arcsOf(t, g, core.Pair(0, 0)), []core.Arc{{To: vid, Weight: 7}}; !reflect.DeepEqual(got, want) {
		t.Errorf("arcs = %v; want %v", got, want)
	}
}

// TestAddEdge_CapacityExceeded verifies the all-or-nothing capacity check.
func TestAddEdge_CapacityExceeded(t *testing.T) {
	g := mustGraph(t, 2)
	if err := g.AddEdge(core.Int(0), core.Int(1), 0); err != nil {
		t.Fatalf("AddEdge within capacity error: %v", err)
	}
	err := g.AddEdge(core.Int(0), core.Int(2), 0)
	if !errors.Is(err, core.ErrCapacityExceeded) {
		t.Fatalf("AddEdge over capacity error = %v; want ErrCapacityExceeded", err)
	}
	// The rejected endpoint must not have been allocated.
	if _, ok := g.Lookup(core.Int(2)); ok {
		t.Error("rejected endpoint was allocated an id")
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d after rejection; want 2", g.NodeCount())
	}
}

// TestAddEdge_BothEndpointsOverCapacity rejects when two new ids would
// be needed but only one slot remains.
func TestAddEdge_BothEndpointsOverCapacity(t *testing.T) {
	g := mustGraph(t, 3)
	if err := g.AddEdge(core.Int(0), core.Int(1), 0); err != nil {
		t.Fatalf("setup AddEdge error: %v", err)
	}
	if err := g.AddEdge(core.Int(7), core.Int(8), 0); !errors.Is(err, core.ErrCapacityExceeded) {
		t.Errorf("error = %v; want ErrCapacityExceeded", err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d; want 2 (no partial allocation)", g.NodeCount())
	}
}

// TestAddEdge_SelfLoopUndirected verifies the loop is mirrored like the
// source semantics: two arcs u→u.
func TestAddEdge_SelfLoopUndirected(t *testing.T) {
	g := mustGraph(t, 1, core.WithDirected(false))
	if err := g.AddEdge(core.Int(0), core.Int(0), 0); err != nil {
		t.Fatalf("AddEdge loop error: %v", err)
	}
	if got := arcsOf(t, g, core.Int(0)); len(got) != 2 {
		t.Errorf("self-loop arcs = %d; want 2 (mirrored)", len(got))
	}
}

// TestAddEdge_InvalidKey verifies zero-value keys are rejected unstored.
func TestAddEdge_InvalidKey(t *testing.T) {
	g := mustGraph(t, 2)
	if err := g.AddEdge(core.NodeKey{}, core.Int(1), 0); !errors.Is(err, core.ErrInvalidNodeKey) {
		t.Errorf("error = %v; want ErrInvalidNodeKey", err)
	}
	if err := g.AddEdge(core.Int(0), core.NodeKey{}, 0); !errors.Is(err, core.ErrInvalidNodeKey) {
		t.Errorf("error = %v; want ErrInvalidNodeKey", err)
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d after invalid edges; want 0", g.NodeCount())
	}
}

// TestGraph_ResolveCapacity verifies Resolve itself honors capacity.
func TestGraph_ResolveCapacity(t *testing.T) {
	g := mustGraph(t, 1)
	if _, err := g.Resolve(core.Int(0)); err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	// Memoized hit still succeeds at full capacity.
	if _, err := g.Resolve(core.Int(0)); err != nil {
		t.Errorf("repeat Resolve error: %v", err)
	}
	if _, err := g.Resolve(core.Int(1)); !errors.Is(err, core.ErrCapacityExceeded) {
		t.Errorf("Resolve over capacity error = %v; want ErrCapacityExceeded", err)
	}
}

// TestGraph_ArcsOutOfRange verifies the id bounds check.
func TestGraph_ArcsOutOfRange(t *testing.T) {
	g := mustGraph(t, 2)
	for _, id := range []int{-1, 2, 100} {
		if _, err := g.Arcs(id); !errors.Is(err, core.ErrIDOutOfRange) {
			t.Errorf("Arcs(%d) error = %v; want ErrIDOutOfRange", id, err)
		}
	}
}

// TestGraph_Accessors covers the remaining trivial getters.
func TestGraph_Accessors(t *testing.T) {
	g := mustGraph(t, 4, core.WithDirected(false))
	if g.Directed() {
		t.Error("Directed() = true; want false")
	}
	if g.Capacity() != 4 {
		t.Errorf("Capacity() = %d; want 4", g.Capacity())
	}
	d := mustGraph(t, 4)
	if !d.Directed() {
		t.Error("default Directed() = false; want true")
	}
}
