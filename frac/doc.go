// Package frac is the fractional assignment x produced by lp3 and mutated by
// rotate/round: for each edge e = {u, v}, two non-negative reals x_eu, x_ev
// with x_eu + x_ev = 1.
//
// Per spec.md's design notes, storage is packed to one float64 per edge: the
// value stored is always x_{e,uSmall} where uSmall = min(u, v); the
// companion x_{e,uBig} is derived as 1 - stored on read. This halves storage
// and makes the edge constraint hold by construction instead of by
// bookkeeping discipline. Clamp-and-renormalize (the LP-boundary numerical
// policy of spec.md §4.D/§7) happens once, at construction from a raw LP
// solution; Get/Set never need to re-normalize because the invariant is
// structural.
package frac
