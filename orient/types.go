package orient

import "github.com/katalvlaran/gbalance/graph"

const unset = -1

// Orientation is the partial-then-total map gamma: E -> V. New allocates one
// slice of length NumEdges, so Set/Get are O(1).
type Orientation struct {
	g     *graph.Graph
	gamma []int // gamma[e] == unset until decided, else the chosen endpoint
}

// New returns an empty Orientation over g, with every edge unset.
func New(g *graph.Graph) *Orientation {
	gamma := make([]int, g.NumEdges())
	for i := range gamma {
		gamma[i] = unset
	}
	return &Orientation{g: g, gamma: gamma}
}

// Set assigns edge e to vertex v. It returns ErrNotEndpoint if v is not one
// of e's two endpoints; re-assigning an already-set edge is allowed and
// overwrites the earlier choice (the Round driver never needs this).
func (o *Orientation) Set(e, v int) error {
	if !o.g.HasEndpoint(e, v) {
		return ErrNotEndpoint
	}
	o.gamma[e] = v
	return nil
}

// Get returns the vertex edge e is currently assigned to, and whether it has
// been assigned at all.
func (o *Orientation) Get(e int) (v int, ok bool) {
	v = o.gamma[e]
	return v, v != unset
}

// IsTotal reports whether every edge has been assigned.
func (o *Orientation) IsTotal() bool {
	for _, v := range o.gamma {
		if v == unset {
			return false
		}
	}
	return true
}
