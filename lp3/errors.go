package lp3

import "errors"

// ErrInfeasible is the recoverable outcome: no x satisfies LP3 at the
// requested target T. Callers (lp_balance/decision) convert this into a
// "no orientation" result rather than propagating it as a hard failure.
var ErrInfeasible = errors.New("lp3: infeasible at target T")

// SolverError wraps a concrete LP backend failure (numerical breakdown,
// iteration limit, malformed problem) distinctly from ErrInfeasible, per
// spec.md §7: "Numerical failure (solver error) must surface distinctly from
// infeasibility so callers can retry with a different backend."
type SolverError struct {
	Backend string
	Err     error
}

func (e *SolverError) Error() string {
	return "lp3: solver error (" + e.Backend + "): " + e.Err.Error()
}

func (e *SolverError) Unwrap() error { return e.Err }
