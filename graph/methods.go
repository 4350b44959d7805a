package graph

// IncidentEdges returns the indices of edges touching vertex v, in
// ascending order (self-loops never occur, so each incident edge appears
// once per endpoint it actually has, twice only if v is both endpoints,
// which New forbids).
func (g *Graph) IncidentEdges(v int) []int {
	return g.incident[v]
}

// Degree returns len(IncidentEdges(v)).
func (g *Graph) Degree(v int) int {
	return len(g.incident[v])
}

// OtherEndpoint returns the endpoint of edge e that is not v. It panics if v
// is not an endpoint of e — the same "must be an endpoint" contract New's
// edge validation already establishes, so callers that only ever pass
// indices obtained from IncidentEdges never hit this path.
func (g *Graph) OtherEndpoint(e, v int) int {
	edge := g.edges[e]
	switch v {
	case edge.U:
		return edge.V
	case edge.V:
		return edge.U
	default:
		panic("graph: OtherEndpoint: v is not an endpoint of e")
	}
}

// HasEndpoint reports whether v is one of edge e's two endpoints.
func (g *Graph) HasEndpoint(e, v int) bool {
	edge := g.edges[e]
	return edge.U == v || edge.V == v
}
