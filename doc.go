// Package gbalance implements the Ebenlendr-Krcal-Sgall 1.75-approximation
// for Graph Balancing: orient every edge of a weighted multigraph (with
// per-vertex dedicated loads) toward one endpoint, minimizing the maximum
// vertex load, by solving the LP3 relaxation and rounding it with Round.
//
// The package layout mirrors the algorithm's own decomposition:
//
//	graph/     — the flat, integer-indexed multigraph model (component A)
//	orient/    — the output orientation and load/makespan arithmetic (B)
//	frac/      — the packed fractional LP assignment (C)
//	lp3/       — the LP3 constraint system and solver adapter (D)
//	rotate/    — the cycle-rotation primitive (E)
//	cycle/     — the big-edge-preferring cycle finder (F)
//	round/     — the leaf/tree/rotate integralization state machine (G)
//	gbconfig/  — the shared numeric tunables (eps, thresholds, ratio)
//
// This root package is component H: LPBalance solves LP3 once and rounds
// it; Decision scales a graph to a target makespan and calls LPBalance;
// Optimize binary-searches Decision for the smallest feasible target.
//
//	g, _ := graph.New(numVertices, edges, dedicated)
//	result, err := gbalance.Optimize(g, lp3.GonumSimplexSolver{}, gbconfig.New())
//
// The command-line surface, instance generators and the concrete LP solver
// engine are treated as external collaborators (spec.md §1) and are out of
// scope for this module; lp3.Solver is the seam a caller plugs one in at.
package gbalance
