// Package graph is the flat, integer-indexed multigraph model the rounding
// algorithm runs on: G = (V, E, p, q).
//
// Unlike the teacher's string-keyed, map-of-maps core.Graph, vertices and
// edges here are dense integer ranges ([0,NumVertices) and [0,NumEdges)):
// the algorithm addresses both by index throughout (cycle steps, incident
// lists, LP variable tables), so a flat vector representation with a
// precomputed incidence list avoids a map lookup on every inner-loop step.
// Edge identity is by index, not by endpoint pair, so parallel edges are
// first-class: two edges with identical endpoints are distinct, addressable
// elements of E.
//
// Graph is immutable after New returns; it may be freely shared read-only
// across goroutines (no locking is needed because nothing ever mutates it).
package graph
