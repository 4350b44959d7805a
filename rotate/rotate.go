package rotate

import (
	"math"

	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
)

// Rotate applies the cycle-update primitive of spec.md §4.E to a in place.
// cycle must be well-formed: consecutive steps chain head-to-tail and close
// (last step's head is the first step's tail), every edge must currently be
// in the fractional support E_x, and Tail must be an actual endpoint of
// Edge. Any violation is reported as an *InvariantViolation — a fatal bug
// signal, not a recoverable error, per spec.md §7.
//
// On success, every edge constraint is preserved exactly (by construction:
// Set always keeps the companion endpoint at 1-value), non-negativity is
// preserved, and at least one cycle edge leaves E_x.
func Rotate(a *frac.Assignment, g *graph.Graph, cfg gbconfig.Config, cycle []CycleStep) error {
	if len(cycle) < 2 {
		return &InvariantViolation{Reason: "cycle too short", Step: 0}
	}

	heads := make([]int, len(cycle))
	for i, step := range cycle {
		if !g.HasEndpoint(step.Edge, step.Tail) {
			return &InvariantViolation{Reason: "tail is not an endpoint of edge", Step: i}
		}
		heads[i] = g.OtherEndpoint(step.Edge, step.Tail)
	}
	for i, step := range cycle {
		next := cycle[(i+1)%len(cycle)]
		if heads[i] != next.Tail {
			return &InvariantViolation{Reason: "cycle does not close: head != next tail", Step: i}
		}
		if a.IsIntegral(step.Edge) {
			return &InvariantViolation{Reason: "edge is not in the fractional support", Step: i}
		}
	}

	// delta = min_i x_{e_i,tail_i} * p_{e_i}.
	delta := math.Inf(1)
	for i, step := range cycle {
		xTail, err := a.Get(step.Edge, step.Tail)
		if err != nil {
			return &InvariantViolation{Reason: "tail is not an endpoint of edge", Step: i}
		}
		contribution := xTail * g.Weight(step.Edge)
		if contribution < delta {
			delta = contribution
		}
	}
	if delta <= 0 {
		return &InvariantViolation{Reason: "delta <= 0: no strictly fractional tail found", Step: 0}
	}

	for i, step := range cycle {
		weight := g.Weight(step.Edge)
		shift := delta / weight

		xTail, err := a.Get(step.Edge, step.Tail)
		if err != nil {
			return &InvariantViolation{Reason: "tail lookup failed mid-rotation", Step: i}
		}
		newTail := xTail - shift
		if newTail < -cfg.Eps {
			return &InvariantViolation{Reason: "rotation would drive a variable negative", Step: i}
		}
		if newTail < 0 {
			newTail = 0
		}
		if err := a.Set(step.Edge, step.Tail, newTail); err != nil {
			return &InvariantViolation{Reason: "set failed mid-rotation", Step: i}
		}
	}

	return nil
}
