package frac

import (
	"math"

	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
)

// Assignment is the packed fractional assignment x over a Graph's edges.
// value[e] always holds x_{e,uSmall(e)}; uSmall(e) = min(g.Edge(e).U,
// g.Edge(e).V).
type Assignment struct {
	g     *graph.Graph
	cfg   gbconfig.Config
	value []float64
}

// New allocates an Assignment with every edge split evenly (x = 0.5 on both
// endpoints). Callers normally overwrite this with FromRaw once the LP
// solver returns a solution; the even split is a convenient zero value for
// tests that build small fractional instances by hand.
func New(g *graph.Graph, cfg gbconfig.Config) *Assignment {
	value := make([]float64, g.NumEdges())
	for i := range value {
		value[i] = 0.5
	}
	return &Assignment{g: g, cfg: cfg, value: value}
}

// FromRaw builds an Assignment from a raw per-(edge,endpoint) solver output,
// applying the numerical policy of spec.md §4.D: clamp each value into
// [0,1], rescale the pair to sum to exactly 1, then snap values within Eps
// of 0 or 1 to exactly 0 or 1 so the fractional support E_x is well defined.
//
// raw[e] is interpreted as x_{e, g.Edge(e).U} (the value for the
// construction-order first endpoint); the companion is 1-raw[e] before
// clamping. Returns ErrRawLength if raw's length does not match g's edge
// count.
func FromRaw(g *graph.Graph, cfg gbconfig.Config, raw []float64) (*Assignment, error) {
	if len(raw) != g.NumEdges() {
		return nil, ErrRawLength
	}
	a := &Assignment{g: g, cfg: cfg, value: make([]float64, g.NumEdges())}
	for e := range raw {
		xU := clamp01(raw[e])
		xV := clamp01(1 - raw[e])
		if sum := xU + xV; sum > 0 {
			xU, xV = xU/sum, xV/sum
		} else {
			xU, xV = 0.5, 0.5
		}
		xU = snap(xU, cfg.Eps)
		xV = snap(xV, cfg.Eps)

		edge := g.Edge(e)
		if edge.U <= edge.V {
			a.value[e] = xU // uSmall == edge.U
		} else {
			a.value[e] = xV // uSmall == edge.V
		}
	}
	return a, nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func snap(x, eps float64) float64 {
	if math.Abs(x) < eps {
		return 0
	}
	if math.Abs(1-x) < eps {
		return 1
	}
	return x
}
