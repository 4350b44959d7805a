// Package orient is the output side of the algorithm: a total map
// gamma: E -> V with gamma(e) in endpoints(e), plus the derived per-vertex
// load ell(v) = q_v + sum of p_e over edges oriented into v, and the
// makespan max_v ell(v).
//
// An Orientation starts with every edge unset and is filled in by round.Round,
// including for edges a rotation drives out of the fractional support
// (rotate and cycle themselves never touch it). Load and Makespan recompute from scratch in O(|E|);
// they are read-only reporting operations, not hot-path state, so there is
// no incremental bookkeeping to keep in sync.
package orient
