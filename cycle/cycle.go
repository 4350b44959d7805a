package cycle

import (
	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/rotate"
)

type step struct {
	edge, tail, head int
}

// Find walks the fractional support graph G_x starting from the
// smallest-indexed vertex with a fractional incident edge, and returns the
// first directed cycle it closes, as a []rotate.CycleStep ready to hand to
// rotate.Rotate. ok is false if E_x is empty (nothing to rotate).
func Find(a *frac.Assignment, g *graph.Graph) ([]rotate.CycleStep, bool) {
	start := -1
	for v := 0; v < g.NumVertices(); v++ {
		if len(a.IncidentFractional(v)) > 0 {
			start = v
			break
		}
	}
	if start == -1 {
		return nil, false
	}

	visitedAt := map[int]int{start: 0}
	path := make([]step, 0, g.NumEdges())

	current := start
	cameFrom := -1

	for len(path) <= g.NumEdges() {
		next, ok := pickNext(a, g, current, cameFrom)
		if !ok {
			return nil, false // no onward edge: caller's leaf-free precondition was violated
		}

		head := g.OtherEndpoint(next, current)
		path = append(path, step{edge: next, tail: current, head: head})

		if startPos, seen := visitedAt[head]; seen {
			return extractCycle(path, startPos), true
		}
		visitedAt[head] = len(path)
		current = head
		cameFrom = next
	}

	return nil, false
}

// pickNext chooses the next edge to walk from current, excluding the edge
// just arrived on (exclude), preferring a big fractional edge, with ties
// (and the small/big choice itself) broken by smallest edge index.
func pickNext(a *frac.Assignment, g *graph.Graph, current, exclude int) (int, bool) {
	best := -1
	bestBig := false
	for _, e := range a.IncidentFractional(current) {
		if e == exclude {
			continue
		}
		big := a.IsBig(e)
		switch {
		case best == -1:
			best, bestBig = e, big
		case big && !bestBig:
			best, bestBig = e, big
		case big == bestBig && e < best:
			best = e
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// extractCycle returns the suffix of path starting at startPos, the segment
// that actually closes the cycle (a vertex revisit may happen after a
// non-cyclic prefix the walk had to traverse to get there).
func extractCycle(path []step, startPos int) []rotate.CycleStep {
	out := make([]rotate.CycleStep, 0, len(path)-startPos)
	for _, st := range path[startPos:] {
		out = append(out, rotate.CycleStep{Edge: st.edge, Tail: st.tail})
	}
	return out
}
