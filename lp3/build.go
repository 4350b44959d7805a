package lp3

import "github.com/katalvlaran/gbalance/graph"

// BuildLP3 constructs the LP3 constraint system for g at target makespan T:
// weights and dedicated loads are scaled by 1/T (spec.md §4.D's contract),
// so the Load constraint reads q_v/T + sum x_ev*(p_e/T) <= 1.
//
// Variable layout: for edge e = {u, v} (u, v as stored on the Edge, not
// necessarily u < v), variable 2*e is x_eu and variable 2*e+1 is x_ev —
// VarIndex relies on this exact layout.
//
// Constraint rows:
//  1. AEq/BEq: one equality row per edge: x_eu + x_ev = 1.
//  2. GIneq/HIneq, vertex by vertex: first the Load row —
//     q_v/T + sum_{e incident v} x_ev*(p_e/T) <= 1 — then, only if v has an
//     incident edge with p_e/T > bigThreshold, its Star row —
//     sum_{e in E_B incident v} x_ev <= 1.
//
// The bound x_ev <= 1 is not emitted as a separate row: combined with
// x_eu + x_ev = 1 and x >= 0, it already holds (x_ev = 1 - x_eu <= 1).
func BuildLP3(g *graph.Graph, bigThreshold, targetT float64) *Problem {
	numEdges := g.NumEdges()
	numVertices := g.NumVertices()

	p := &Problem{
		Vars: make([]VarRef, 0, 2*numEdges),
		AEq:  make([][]float64, 0, numEdges),
		BEq:  make([]float64, 0, numEdges),
	}
	for e := 0; e < numEdges; e++ {
		edge := g.Edge(e)
		p.Vars = append(p.Vars, VarRef{Edge: e, Vertex: edge.U}, VarRef{Edge: e, Vertex: edge.V})
	}

	numVars := len(p.Vars)

	// 1. Edge equality rows.
	for e := 0; e < numEdges; e++ {
		row := make([]float64, numVars)
		row[2*e] = 1
		row[2*e+1] = 1
		p.AEq = append(p.AEq, row)
		p.BEq = append(p.BEq, 1)
	}

	// 2. Load inequality rows, 3. Star inequality rows.
	p.GIneq = make([][]float64, 0, 2*numVertices)
	p.HIneq = make([]float64, 0, 2*numVertices)

	for v := 0; v < numVertices; v++ {
		loadRow := make([]float64, numVars)
		starRow := make([]float64, numVars)
		hasStarTerm := false

		for _, e := range g.IncidentEdges(v) {
			idx, ok := p.VarIndex(e, v)
			if !ok {
				continue // unreachable: v is always an endpoint of its incident edges
			}
			weight := g.Weight(e) / targetT
			loadRow[idx] = weight
			if weight > bigThreshold {
				starRow[idx] = 1
				hasStarTerm = true
			}
		}

		p.GIneq = append(p.GIneq, loadRow)
		p.HIneq = append(p.HIneq, 1-g.Dedicated(v)/targetT)

		if hasStarTerm {
			p.GIneq = append(p.GIneq, starRow)
			p.HIneq = append(p.HIneq, 1)
		}
	}

	return p
}
