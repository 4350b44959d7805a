package lp3

import (
	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
)

// Solver is the narrow external-collaborator interface spec.md §6 requires:
// given a Problem, return a feasible variable vector, or ErrInfeasible, or a
// *SolverError. The core (lp3.Solve, round.Round, gbalance.*) only ever talks
// to this interface; GonumSimplexSolver is the one concrete backend shipped,
// but any LP engine can be adapted behind it.
type Solver interface {
	// Solve returns x, aligned with Problem.Vars, satisfying AEq*x=BEq,
	// GIneq*x<=HIneq, x>=0 within the solver's own tolerance. On failure it
	// returns ErrInfeasible (no such x exists) or a *SolverError (the
	// backend itself broke: numerical failure, iteration limit, ...).
	Solve(p *Problem) ([]float64, error)
}

// Solve builds LP3 for g at target T and dispatches to solver, converting a
// successful raw solution into a frac.Assignment via frac.FromRaw (applying
// the clamp/renormalize/snap numerical policy). It is the component-D
// adapter lp_balance (package gbalance) calls directly.
func Solve(g *graph.Graph, cfg gbconfig.Config, targetT float64, solver Solver) (*frac.Assignment, error) {
	problem := BuildLP3(g, cfg.BigThreshold, targetT)

	raw, err := solver.Solve(problem)
	if err != nil {
		return nil, err
	}

	// raw is aligned with problem.Vars (2 per edge: U then V); frac.FromRaw
	// wants one value per edge interpreted as x_{e,U}, which is exactly
	// raw[2*e].
	perEdge := make([]float64, g.NumEdges())
	for e := 0; e < g.NumEdges(); e++ {
		perEdge[e] = raw[2*e]
	}

	return frac.FromRaw(g, cfg, perEdge)
}
