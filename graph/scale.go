package graph

// Scale returns a new Graph with the same topology as g but every edge
// weight and dedicated load divided by t. Decision and Optimize use this to
// normalize a graph to its T=1 instance before solving LP3 and rounding, per
// spec.md §4.D ("scale weights and dedicated loads by 1/T then solve the
// above"): every downstream consumer of weights — LP3's Star row, Round's
// leaf/tree split, Rotate's delta, Cycle's big-edge preference — must see
// the scaled instance, not just the LP3 Load row.
func Scale(g *Graph, t float64) (*Graph, error) {
	edges := make([]EdgeInput, g.NumEdges())
	for e, edge := range g.edges {
		edges[e] = EdgeInput{U: edge.U, V: edge.V, Weight: edge.Weight / t}
	}
	dedicated := make([]float64, g.numVertices)
	for v, q := range g.dedicated {
		dedicated[v] = q / t
	}
	return New(g.numVertices, edges, dedicated)
}
