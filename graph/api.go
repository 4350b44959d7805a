package graph

import (
	"fmt"
	"math"
)

// EdgeInput is a caller-facing edge record consumed by New, before incidence
// lists exist.
type EdgeInput struct {
	U, V   int
	Weight float64
}

// New validates and constructs a Graph from numVertices, an edge list and a
// per-vertex dedicated-load vector. It fails fast (returns ErrInvalidInput
// wrapped errors) rather than silently accepting a malformed instance, the
// way core.NewGraph's AddEdge/AddVertex validate eagerly.
//
// Validation, in order:
//   - len(dedicated) must equal numVertices, and every q_v must be finite and >= 0.
//   - every edge's U and V must lie in [0, numVertices).
//   - no edge may be a self-loop (U == V): spec.md marks self-loops as an
//     open question the paper does not address, so they are rejected rather
//     than silently treated as degree-2 contributions.
//   - every edge weight must be finite and > 0.
//
// Complexity: O(|V| + |E|).
func New(numVertices int, edges []EdgeInput, dedicated []float64) (*Graph, error) {
	if len(dedicated) != numVertices {
		return nil, fmt.Errorf("%w: len(dedicated)=%d, want numVertices=%d", ErrInvalidInput, len(dedicated), numVertices)
	}
	for v, q := range dedicated {
		if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
			return nil, &EdgeError{EdgeIdx: -1, U: v, Weight: q, Err: ErrNegativeLoad}
		}
	}

	g := &Graph{
		numVertices: numVertices,
		edges:       make([]Edge, len(edges)),
		dedicated:   append([]float64(nil), dedicated...),
		incident:    make([][]int, numVertices),
	}

	for i, in := range edges {
		if in.U < 0 || in.U >= numVertices || in.V < 0 || in.V >= numVertices {
			return nil, &EdgeError{EdgeIdx: i, U: in.U, V: in.V, Weight: in.Weight, Err: ErrVertexOutOfRange}
		}
		if in.U == in.V {
			return nil, &EdgeError{EdgeIdx: i, U: in.U, V: in.V, Weight: in.Weight, Err: ErrSelfLoop}
		}
		if math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) || in.Weight <= 0 {
			return nil, &EdgeError{EdgeIdx: i, U: in.U, V: in.V, Weight: in.Weight, Err: ErrNegativeWeight}
		}

		g.edges[i] = Edge{U: in.U, V: in.V, Weight: in.Weight}
		g.incident[in.U] = append(g.incident[in.U], i)
		g.incident[in.V] = append(g.incident[in.V], i)
	}

	return g, nil
}
