package frac

import "errors"

// ErrNotEndpoint is returned by Get/Set when the given vertex is not an
// endpoint of the given edge.
var ErrNotEndpoint = errors.New("frac: vertex is not an endpoint of edge")

// ErrRawLength is returned by FromRaw when its raw slice's length does not
// equal the graph's edge count.
var ErrRawLength = errors.New("frac: len(raw) does not match graph edge count")
