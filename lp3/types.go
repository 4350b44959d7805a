package lp3

// VarRef identifies one LP3 variable x_ev: the edge it belongs to and the
// endpoint it is the fraction "for".
type VarRef struct {
	Edge   int
	Vertex int
}

// Problem is the solver-agnostic LP3 constraint system: minimize (a zero
// objective — LP3 is solved for feasibility only, per spec.md §4.D) subject
// to:
//
//	AEq  * x == BEq   (edge constraints: x_eu + x_ev = 1)
//	GIneq * x <= HIneq (Load and Star constraints)
//	x >= 0             (x <= 1 follows from the edge constraint, see build.go)
//
// Row/column layout is dense ([][]float64) rather than a sparse format:
// instance sizes in this domain are bounded by |E| and |V| of a single
// scheduling instance, not by a sparse-matrix-scale workload, so the
// simplicity of a dense gonum/mat.Dense outweighs sparse bookkeeping.
type Problem struct {
	Vars []VarRef // Vars[i] is the (edge,vertex) pair variable i represents

	AEq [][]float64
	BEq []float64

	GIneq [][]float64
	HIneq []float64
}

// NumVars returns the number of LP3 variables (2 per edge).
func (p *Problem) NumVars() int { return len(p.Vars) }

// VarIndex returns the column index of x_ev, and whether it exists (v must
// be an endpoint of e).
func (p *Problem) VarIndex(e, v int) (int, bool) {
	// Variables are laid out two per edge in construction order: build.go
	// always appends (e, U) immediately followed by (e, V), so this is O(1)
	// rather than a linear scan of Vars.
	base := e * 2
	if base >= len(p.Vars) {
		return 0, false
	}
	if p.Vars[base].Vertex == v {
		return base, true
	}
	if p.Vars[base+1].Vertex == v {
		return base + 1, true
	}
	return 0, false
}
