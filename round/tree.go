package round

import (
	"sort"

	"github.com/katalvlaran/gbalance/frac"
	"github.com/katalvlaran/gbalance/gbconfig"
	"github.com/katalvlaran/gbalance/graph"
	"github.com/katalvlaran/gbalance/orient"
)

// applyR1b reorients the connected component of G_B,x containing leaf v's
// big edge, away from v: a deterministic BFS (children visited in
// ascending vertex-id order, per spec.md §5/§9) discovers each edge from
// parent to child and decides it toward the child.
func applyR1b(a *frac.Assignment, g *graph.Graph, gamma *orient.Orientation, cfg gbconfig.Config, v int) error {
	visited := map[int]bool{v: true}
	queue := []int{v}

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		children := bigNeighbors(a, g, parent, visited)
		for _, ch := range children {
			if err := a.Set(ch.edge, ch.vertex, 1); err != nil {
				return &InvariantViolation{Reason: "R1b: failed to orient tree edge"}
			}
			if err := gamma.Set(ch.edge, ch.vertex); err != nil {
				return &InvariantViolation{Reason: "R1b: gamma.Set rejected a valid endpoint"}
			}
			visited[ch.vertex] = true
			queue = append(queue, ch.vertex)
		}
	}
	return nil
}

type neighborEdge struct {
	vertex, edge int
}

// bigNeighbors returns parent's not-yet-visited big-fractional neighbors,
// sorted by vertex id (ties by edge index), matching the deterministic BFS
// order spec.md §9 mandates.
func bigNeighbors(a *frac.Assignment, g *graph.Graph, parent int, visited map[int]bool) []neighborEdge {
	var out []neighborEdge
	for _, e := range a.IncidentBigFractional(parent) {
		child := g.OtherEndpoint(e, parent)
		if visited[child] {
			continue
		}
		out = append(out, neighborEdge{vertex: child, edge: e})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].vertex != out[j].vertex {
			return out[i].vertex < out[j].vertex
		}
		return out[i].edge < out[j].edge
	})
	return out
}
