package lp3

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// GonumSimplexSolver is the shipped Solver backend: it converts a Problem's
// general-form constraints (Gx<=h, Ax=b, x>=0) to the standard equality form
// gonum's simplex implementation expects via lp.Convert, then calls
// lp.Simplex with an all-zero objective — LP3 is solved for feasibility
// only (spec.md §4.D), so any objective works and the zero vector is the
// cheapest one to hand the solver.
//
// Tol is the simplex feasibility tolerance passed straight to lp.Simplex;
// zero selects gonum's own default.
type GonumSimplexSolver struct {
	Tol float64
}

// Solve implements Solver.
func (s GonumSimplexSolver) Solve(p *Problem) ([]float64, error) {
	numVars := p.NumVars()
	c := make([]float64, numVars) // feasibility only: zero objective

	g := denseOrNil(p.GIneq, numVars)
	a := denseOrNil(p.AEq, numVars)

	newC, newA, newB, err := lp.Convert(c, g, p.HIneq, a, p.BEq)
	if err != nil {
		return nil, &SolverError{Backend: "gonum/lp.Convert", Err: err}
	}

	_, x, err := lp.Simplex(newC, newA, newB, s.Tol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, ErrInfeasible
		}
		return nil, &SolverError{Backend: "gonum/lp.Simplex", Err: err}
	}

	// lp.Simplex's solution vector carries the standard-form variables
	// (original columns first, then the slack/surplus columns lp.Convert
	// introduced); only the first numVars entries are ours.
	out := append([]float64(nil), x[:numVars]...)

	// Defensive re-check of the edge constraint: Simplex's own tolerance
	// governs feasibility, but a caller-visible SolverError is cheaper to
	// debug than a downstream InvariantViolation three layers away.
	for i, row := range p.AEq {
		got := floats.Dot(row, out)
		if !floats.EqualWithinAbs(got, p.BEq[i], 1e-6) {
			return nil, &SolverError{Backend: "gonum", Err: errEdgeResidual(i, got, p.BEq[i])}
		}
	}

	return out, nil
}

func denseOrNil(rows [][]float64, numVars int) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}
	m := mat.NewDense(len(rows), numVars, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}

type edgeResidualError struct {
	row       int
	got, want float64
}

func (e *edgeResidualError) Error() string {
	return "edge constraint residual too large"
}

func errEdgeResidual(row int, got, want float64) error {
	return &edgeResidualError{row: row, got: got, want: want}
}
