package orient_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/orient"
)

func mustGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0.5}}, []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSet_RejectsNonEndpoint(t *testing.T) {
	g := mustGraph(t)
	o := orient.New(g)
	if err := o.Set(0, 5); !errors.Is(err, orient.ErrNotEndpoint) {
		t.Fatalf("expected ErrNotEndpoint, got %v", err)
	}
}

func TestMakespan_Incomplete(t *testing.T) {
	g := mustGraph(t)
	o := orient.New(g)
	if _, err := o.Makespan(); !errors.Is(err, orient.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}

func TestMakespan_S1(t *testing.T) {
	g := mustGraph(t)
	o := orient.New(g)
	if err := o.Set(0, 1); err != nil {
		t.Fatal(err)
	}
	ms, err := o.Makespan()
	if err != nil {
		t.Fatal(err)
	}
	if ms != 0.5 {
		t.Errorf("Makespan = %v; want 0.5", ms)
	}
	l0, _ := o.Load(0)
	if l0 != 0 {
		t.Errorf("Load(0) = %v; want 0", l0)
	}
}
