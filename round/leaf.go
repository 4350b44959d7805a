package round

import (
	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/orient"
)

// findLeaf returns the smallest-indexed vertex with exactly one incident
// fractional edge (a leaf of G_x), and that edge's index. ok is false if no
// such vertex exists.
func findLeaf(a *frac.Assignment, g *graph.Graph) (v, e int, ok bool) {
	for v = 0; v < g.NumVertices(); v++ {
		inc := a.IncidentFractional(v)
		if len(inc) == 1 {
			return v, inc[0], true
		}
	}
	return 0, 0, false
}

// applyLeaf dispatches R1a/R1b for leaf v's unique fractional edge e, per
// spec.md §4.G. u is e's other endpoint.
func applyLeaf(a *frac.Assignment, g *graph.Graph, gamma *orient.Orientation, cfg gbconfig.Config, v, e int) error {
	u := g.OtherEndpoint(e, v)
	xu, err := a.Get(e, u)
	if err != nil {
		return &InvariantViolation{Reason: "leaf edge endpoint lookup failed"}
	}
	alpha := xu * g.Weight(e)

	r1a := alpha < cfg.LeafThreshold-cfg.Eps
	onBoundary := alpha <= cfg.LeafThreshold+cfg.Eps && alpha >= cfg.LeafThreshold-cfg.Eps
	if onBoundary {
		r1a = cfg.LeafTieBreak
	}

	if r1a {
		return applyR1a(a, gamma, e, u, v)
	}
	return applyR1b(a, g, gamma, cfg, v)
}

// applyR1a orients e toward leaf v: x_ev := 1, x_eu := 0, gamma(e) = v.
func applyR1a(a *frac.Assignment, gamma *orient.Orientation, e, u, v int) error {
	if err := a.Set(e, v, 1); err != nil {
		return &InvariantViolation{Reason: "R1a: failed to set leaf edge to 1"}
	}
	if err := gamma.Set(e, v); err != nil {
		return &InvariantViolation{Reason: "R1a: gamma.Set rejected a valid endpoint"}
	}
	_ = u // u's companion value is fixed to 0 by the edge-constraint invariant in frac.Set
	return nil
}
