// Package cycle implements the cycle finder of spec.md §4.F: given a
// fractional assignment whose big-support graph is a pseudoforest (the LP3
// structural invariant), locate a directed cycle in the fractional support
// E_x under a tail-selection convention consistent with rotate.Rotate (the
// tail of each edge is the endpoint whose variable decreases).
//
// The walk starts at an arbitrary vertex with an incident fractional edge
// and, at each step, prefers a big edge (E_B) over a small one, breaking
// ties by the smaller edge index — both choices fixed so repeated calls on
// identical input produce a bit-identical cycle (spec.md §5's determinism
// requirement). It never steps back across the edge it just arrived on,
// matching the "walk until a vertex repeats" termination argument: since
// every vertex in scope has degree >= 2 in G_x (Round only calls Find when
// no leaf exists), an unvisited onward edge always exists until a cycle
// closes.
package cycle
