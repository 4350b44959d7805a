// Package rotate implements the Rotate primitive of spec.md §4.E: given a
// directed cycle in the fractional support graph, shift delta = min_i
// x_{e_i,tail_i} * p_{e_i} of fractional weight around the cycle, driving at
// least one edge out of E_x while leaving every vertex's fractional load
// exactly unchanged (each vertex appears once as a tail and once as a head).
//
// A cycle is represented as a sequence of CycleStep{Edge, Tail} rather than
// bare vertices, because parallel edges are legal in this domain (spec.md
// §9's design note): two cycle steps can share the same (tail, head) pair
// through different edges.
package rotate
