package gbalance

import (
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/lp3"
	"github.com/katalvlaran/gbalance/orient"
	"github.com/katalvlaran/gbalance/round"
)

// LPBalance solves LP3 on g at target T=1 and, on success, rounds the result
// with Round. It is the direct composition spec.md §4.H names: "solve LP3
// at target T=1; on infeasible, return no orientation; on success, run
// Round and return the resulting orientation."
//
// Use Decision to solve at an arbitrary target T, and Optimize to
// binary-search for the best T.
func LPBalance(g *graph.Graph, solver lp3.Solver, cfg gbconfig.Config) (*orient.Orientation, error) {
	return Decision(g, 1.0, solver, cfg)
}

// Decision scales g's weights and dedicated loads by 1/T, solves LP3, and
// rounds the result. It returns ErrNoOrientation if LP3 is infeasible at T,
// or, without calling the solver, if some vertex with an incident edge has a
// dedicated load plus lightest incident weight above T — a recoverable
// outcome — or propagates a
// *lp3.SolverError / *round.InvariantViolation unchanged, since those are
// not recoverable by retrying at a different T.
//
// The scale is applied once, up front, via graph.Scale: LP3, the fractional
// assignment, and the Round/Rotate/Cycle pipeline all then operate on the
// T=1-normalized instance, so cfg.BigThreshold/LeafThreshold (fixed by the
// algorithm for that normalized instance) stay meaningful regardless of T.
// The returned orientation is built over the original, unscaled g, so its
// Load/Makespan report actual load, not the scaled one.
//
// On success, the returned orientation's makespan is guaranteed <=
// cfg.ApproxRatio * T (1.75*T with the default config) whenever LP3 is
// feasible at T, by Theorem 3.1.
func Decision(g *graph.Graph, targetT float64, solver lp3.Solver, cfg gbconfig.Config) (*orient.Orientation, error) {
	for v := 0; v < g.NumVertices(); v++ {
		if g.Degree(v) > 0 && g.Dedicated(v)+g.MinIncidentWeight(v) > targetT {
			return nil, ErrNoOrientation
		}
	}

	scaled, err := graph.Scale(g, targetT)
	if err != nil {
		return nil, err
	}

	x, err := lp3.Solve(scaled, cfg, 1.0, solver)
	if err != nil {
		if err == lp3.ErrInfeasible {
			return nil, ErrNoOrientation
		}
		return nil, err
	}

	gamma := orient.New(g)
	if err := round.Round(x, scaled, gamma, round.Options{Config: cfg}); err != nil {
		return nil, err
	}

	return gamma, nil
}
