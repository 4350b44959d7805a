// Package round implements the Round driver of spec.md §4.G: a state
// machine over the fractional assignment x and a partial orientation gamma
// that alternately applies leaf assignments (R1a), tree assignments (R1b)
// and cycle rotations (R2) until E_x is empty and gamma is total.
//
// Round never reasons about makespan directly; it trusts the four load
// invariants of Theorem 3.1 (the LP3 structural invariant that every
// connected component of the big-support graph is a tree or unicyclic) to
// hold as long as the leaf/tree/rotate rules below fire exactly as
// specified — in particular the 3/4 leaf/tree threshold and the
// big-edge-preferring cycle finder are not tunable in any way that would
// preserve correctness; gbconfig exposes them as named fields for
// documentation and testing, not because other values are valid.
package round
