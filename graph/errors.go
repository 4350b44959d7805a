package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every input-validation failure
// raised by New. Callers can test for it with errors.Is regardless of which
// specific malformed field triggered it.
var ErrInvalidInput = errors.New("graph: invalid input")

// ErrVertexOutOfRange indicates an edge endpoint outside [0, NumVertices).
var ErrVertexOutOfRange = fmt.Errorf("%w: vertex index out of range", ErrInvalidInput)

// ErrSelfLoop indicates an edge whose two endpoints are identical. Self-loops
// are not addressed by the paper (spec.md Open Questions): rather than
// silently treating a loop as a degree-2 contribution, New rejects it.
var ErrSelfLoop = fmt.Errorf("%w: self-loop is not a valid edge", ErrInvalidInput)

// ErrNegativeWeight indicates an edge weight outside (0, +Inf).
var ErrNegativeWeight = fmt.Errorf("%w: edge weight must be positive and finite", ErrInvalidInput)

// ErrNegativeLoad indicates a dedicated load outside [0, +Inf).
var ErrNegativeLoad = fmt.Errorf("%w: dedicated load must be non-negative and finite", ErrInvalidInput)

// EdgeError reports which edge or vertex failed validation, the way the
// teacher's flow.EdgeError carries From/To/Cap for its own negative-capacity
// check.
type EdgeError struct {
	EdgeIdx int
	U, V    int
	Weight  float64
	Err     error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("graph: edge %d {%d,%d} weight=%g: %v", e.EdgeIdx, e.U, e.V, e.Weight, e.Err)
}

func (e *EdgeError) Unwrap() error { return e.Err }
