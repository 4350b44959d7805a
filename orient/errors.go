package orient

import "errors"

// ErrNotEndpoint is returned by Set when the target vertex is not one of
// the edge's two endpoints.
var ErrNotEndpoint = errors.New("orient: vertex is not an endpoint of edge")

// ErrIncomplete is returned by Makespan/Load when a caller asks for a final
// answer before every edge has been oriented (gamma is not yet total).
var ErrIncomplete = errors.New("orient: orientation is not total (unset edges remain)")
