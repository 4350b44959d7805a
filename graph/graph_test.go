package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gbalance/graph"
)

func TestNew_Valid(t *testing.T) {
	g, err := graph.New(3,
		[]graph.EdgeInput{{U: 0, V: 1, Weight: 0.6}, {U: 1, V: 2, Weight: 0.4}},
		[]float64{0.1, 0.2, 0.1},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumVertices() != 3 || g.NumEdges() != 2 {
		t.Fatalf("NumVertices/NumEdges = %d/%d; want 3/2", g.NumVertices(), g.NumEdges())
	}
	if got := g.Degree(1); got != 2 {
		t.Errorf("Degree(1) = %d; want 2", got)
	}
	if got := g.OtherEndpoint(0, 0); got != 1 {
		t.Errorf("OtherEndpoint(0,0) = %d; want 1", got)
	}
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 0, Weight: 0.5}}, []float64{0, 0})
	if !errors.Is(err, graph.ErrSelfLoop) {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
}

func TestNew_RejectsOutOfRangeEndpoint(t *testing.T) {
	_, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 5, Weight: 0.5}}, []float64{0, 0})
	if !errors.Is(err, graph.ErrVertexOutOfRange) {
		t.Fatalf("expected ErrVertexOutOfRange, got %v", err)
	}
}

func TestNew_RejectsNonPositiveWeight(t *testing.T) {
	_, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0}}, []float64{0, 0})
	if !errors.Is(err, graph.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestNew_RejectsNegativeLoad(t *testing.T) {
	_, err := graph.New(1, nil, []float64{-1})
	if !errors.Is(err, graph.ErrNegativeLoad) {
		t.Fatalf("expected ErrNegativeLoad, got %v", err)
	}
}

func TestIncidentLoadUpperBound(t *testing.T) {
	g, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0.5}}, []float64{0.1, 0.2})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.IncidentLoadUpperBound(0); got != 0.6 {
		t.Errorf("IncidentLoadUpperBound(0) = %v; want 0.6", got)
	}
}
