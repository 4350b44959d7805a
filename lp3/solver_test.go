package lp3_test

import (
	"testing"

	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/lp3"
)

// fixedSolver returns a canned raw solution regardless of the Problem,
// standing in for a real LP backend in unit tests of Solve's plumbing.
type fixedSolver struct {
	raw []float64
	err error
}

func (f fixedSolver) Solve(*lp3.Problem) ([]float64, error) { return f.raw, f.err }

func TestSolve_ConvertsRawToAssignment(t *testing.T) {
	g, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0.5}}, []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	cfg := gbconfig.New()
	solver := fixedSolver{raw: []float64{0.3, 0.7}}

	a, err := lp3.Solve(g, cfg, 1.0, solver)
	if err != nil {
		t.Fatal(err)
	}
	x0, _ := a.Get(0, 0)
	if x0 != 0.3 {
		t.Errorf("x_e0 = %v; want 0.3", x0)
	}
}

func TestSolve_PropagatesInfeasible(t *testing.T) {
	g, err := graph.New(2, []graph.EdgeInput{{U: 0, V: 1, Weight: 0.5}}, []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	solver := fixedSolver{err: lp3.ErrInfeasible}

	_, err = lp3.Solve(g, gbconfig.New(), 1.0, solver)
	if err != lp3.ErrInfeasible {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}
