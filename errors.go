package gbalance

import "errors"

// ErrNoOrientation is returned by LPBalance/Decision when LP3 is infeasible
// at the requested target: there is no orientation to return, but this is a
// recoverable outcome, not a fatal error (spec.md §7).
var ErrNoOrientation = errors.New("gbalance: no orientation (LP3 infeasible at target T)")
