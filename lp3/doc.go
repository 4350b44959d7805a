// Package lp3 builds and solves the LP3 relaxation: edge-sum-to-1,
// per-vertex Load <= 1 and per-vertex big-edge Star <= 1, for variables
// x_ev indexed by (edge, endpoint).
//
// The package is split in two halves on purpose:
//
//   - Problem (types.go, build.go) is a plain data structure — a variable
//     table plus dense equality/inequality matrices — with no dependency on
//     any particular solver. BuildLP3 constructs it from a graph.Graph and a
//     target makespan T by scaling weights and dedicated loads by 1/T, per
//     spec.md §4.D's contract.
//   - Solver (solver.go) is the narrow interface the core depends on; the
//     core never imports a concrete LP library, only this interface.
//     GonumSimplexSolver (gonumsolver.go) is the one shipped implementation,
//     adapting Problem to gonum.org/v1/gonum/optimize/convex/lp.
//
// Solve ties the two together and returns a frac.Assignment (already
// clamped/renormalized/snapped per the numerical policy) or a distinguished
// Infeasible/SolverError outcome.
package lp3
