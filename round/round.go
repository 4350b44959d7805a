package round

import (
	"github.com/katalvlaran/gbalance/cycle"
	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/orient"
	"github.com/katalvlaran/gbalance/rotate"
)

// StepKind names which transition rule a macro-step applied, for the
// optional OnStep observer hook.
type StepKind int

const (
	StepLeafAssign StepKind = iota // R1a
	StepTreeAssign                 // R1b
	StepRotate                     // R2
)

// Stats is passed to OnStep after each macro-step: the number of edges
// remaining in E_x and which vertex/edge triggered the step, mirroring the
// teacher's BFSOptions.OnVisit observer-hook idiom (algorithms.BFSOptions)
// rather than a logging dependency.
type Stats struct {
	Kind           StepKind
	RemainingFrac  int
	TriggerVertex  int
	TriggerEdge    int
}

// Options configures one Round invocation.
type Options struct {
	Config gbconfig.Config
	// OnStep, if non-nil, is invoked after each macro-step completes.
	OnStep func(Stats)
}

// Round runs the leaf/tree/rotate state machine on (a, g) until E_x is
// empty, committing every decided edge into gamma as it is decided. It
// returns an *InvariantViolation if the LP3 structural invariant is
// violated (no leaf and no cycle in a non-empty E_x), or if it runs past
// |E| macro-steps without terminating (the termination bound of spec.md §8
// property 7 — reaching it is itself proof of a caller bug, since each
// macro-step strictly shrinks E_x).
//
// gamma must be fresh (or already consistent with a's currently-integral
// edges); Round first commits every edge that is integral in a but not yet
// set in gamma, covering edges LP3 decided outright with no leaf/rotate step
// ever touching them.
func Round(a *frac.Assignment, g *graph.Graph, gamma *orient.Orientation, opts Options) error {
	if err := commitDecided(a, g, gamma); err != nil {
		return err
	}

	maxSteps := g.NumEdges()
	for step := 0; step < maxSteps; step++ {
		remaining := len(a.SupportEdges())
		if remaining == 0 {
			return nil
		}

		if v, e, ok := findLeaf(a, g); ok {
			u := g.OtherEndpoint(e, v)
			xu, err := a.Get(e, u)
			if err != nil {
				return &InvariantViolation{Reason: "leaf edge lookup failed"}
			}
			alpha := xu * g.Weight(e)
			cfg := opts.Config
			kind := StepLeafAssign
			if err := applyLeaf(a, g, gamma, cfg, v, e); err != nil {
				return err
			}
			r1a := alpha < cfg.LeafThreshold-cfg.Eps
			if alpha <= cfg.LeafThreshold+cfg.Eps && alpha >= cfg.LeafThreshold-cfg.Eps {
				r1a = cfg.LeafTieBreak
			}
			if !r1a {
				kind = StepTreeAssign
			}
			report(opts.OnStep, Stats{Kind: kind, RemainingFrac: len(a.SupportEdges()), TriggerVertex: v, TriggerEdge: e})
			continue
		}

		c, ok := cycle.Find(a, g)
		if !ok {
			return &InvariantViolation{Reason: "no leaf and no cycle in a non-empty fractional support: LP3 invariant violated"}
		}
		if err := rotate.Rotate(a, g, opts.Config, c); err != nil {
			return err
		}
		if err := commitNewlyDecided(a, g, gamma, c); err != nil {
			return err
		}
		report(opts.OnStep, Stats{Kind: StepRotate, RemainingFrac: len(a.SupportEdges()), TriggerEdge: c[0].Edge})
	}

	if len(a.SupportEdges()) != 0 {
		return &InvariantViolation{Reason: "Round exceeded |E| macro-steps without terminating"}
	}
	return nil
}

func report(onStep func(Stats), s Stats) {
	if onStep != nil {
		onStep(s)
	}
}

// commitDecided assigns gamma for every edge that is already integral in a
// but not yet set in gamma (edges LP3 decided outright).
func commitDecided(a *frac.Assignment, g *graph.Graph, gamma *orient.Orientation) error {
	for e := 0; e < g.NumEdges(); e++ {
		if _, already := gamma.Get(e); already {
			continue
		}
		if owner, ok := a.IntegralOwner(e); ok {
			if err := gamma.Set(e, owner); err != nil {
				return &InvariantViolation{Reason: "commitDecided: gamma.Set rejected a valid endpoint"}
			}
		}
	}
	return nil
}

// commitNewlyDecided assigns gamma for any cycle edges that Rotate drove to
// integral.
func commitNewlyDecided(a *frac.Assignment, g *graph.Graph, gamma *orient.Orientation, c []rotate.CycleStep) error {
	for _, st := range c {
		if _, already := gamma.Get(st.Edge); already {
			continue
		}
		if owner, ok := a.IntegralOwner(st.Edge); ok {
			if err := gamma.Set(st.Edge, owner); err != nil {
				return &InvariantViolation{Reason: "commitNewlyDecided: gamma.Set rejected a valid endpoint"}
			}
		}
	}
	return nil
}
