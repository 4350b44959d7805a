package rotate

import "fmt"

// InvariantViolation is the fatal error kind of spec.md §7: a cycle handed
// to Rotate was not well-formed (tail mismatch, an edge outside E_x, too
// short to be a cycle). It always indicates corrupt LP output or a bug in
// the caller (round/cycle), never a recoverable condition.
type InvariantViolation struct {
	Reason string
	Step   int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("rotate: invariant violation at step %d: %s", e.Step, e.Reason)
}
