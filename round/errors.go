package round

import "fmt"

// InvariantViolation is the fatal error kind of spec.md §7, raised when the
// state machine reaches a condition the LP3 structural invariant rules out:
// no leaf and no cycle in a non-empty E_x, or E_x still non-empty after |E|
// macro-steps. Either indicates the LP input did not actually satisfy LP3.
// It is also raised when a leaf or tree assignment cannot be written. Leaf
// and tree assignments are not checked against the Theorem 3.1 load bounds.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("round: invariant violation: %s", e.Reason)
}
