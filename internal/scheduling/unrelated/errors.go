package unrelated

import (
	"fmt"
)

// Solver status codes reported in SolverInfo and LPSolveError.
const (
	StatusOptimal    = 0
	StatusInfeasible = 2
	StatusUnbounded  = 3
	StatusNumerical  = 4
)

// LPSolveError is returned when the LP relaxation cannot be solved to
// optimality.
type LPSolveError struct {
	Status  int
	Message string
	Err     error // Underlying solver error, may be nil
}

func (e *LPSolveError) Error() string {
	return fmt.Sprintf("lp relaxation failed (status %d): %s", e.Status, e.Message)
}

func (e *LPSolveError) Unwrap() error {
	return e.Err
}
