// Package unrelated schedules jobs on unrelated parallel machines: an LP
// relaxation, deterministic rounding, a single-move local search and a
// greedy baseline.
package unrelated

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/piwi3910/apsuite/internal/model"
)

const (
	lpMethod    = "gonum-simplex"
	lpTolerance = 1e-10
)

// SolverInfo describes one LP solve.
type SolverInfo struct {
	Success    bool          `json:"success"`
	Status     int           `json:"status"`
	Message    string        `json:"message"`
	Iterations int           `json:"iterations,omitempty"` // Not reported by the simplex backend, always 0
	Method     string        `json:"method"`
	Duration   time.Duration `json:"duration"`
}

// LPSolution is an optimal solution of the relaxation. X[i][j] is the
// fraction of job j assigned to machine i.
type LPSolution struct {
	T    float64     `json:"t"`
	X    [][]float64 `json:"x"`
	Info SolverInfo  `json:"info"`
}

// SolveLP solves the LP relaxation
//
//	minimize T
//	s.t. sum_i x[i][j] = 1            for every job j
//	     sum_j p[i][j] x[i][j] <= T   for every machine i
//	     x >= 0, T >= 0
//
// Each machine row gets a slack column to reach the equality form the
// simplex solver expects. Variables are ordered x[0][0..n-1], ...,
// x[m-1][0..n-1], T, s[0..m-1].
func SolveLP(inst model.UnrelatedInstance) (LPSolution, error) {
	inst, err := model.ValidateUnrelated(inst)
	if err != nil {
		return LPSolution{}, err
	}
	m, n := inst.Machines(), inst.Jobs()

	x := make([][]float64, m)
	for i := range x {
		x[i] = make([]float64, n)
	}
	if n == 0 {
		return LPSolution{
			X:    x,
			Info: SolverInfo{Success: true, Status: StatusOptimal, Message: "no jobs", Method: lpMethod},
		}, nil
	}

	numX := m * n
	tIdx := numX
	cols := numX + 1 + m
	rows := n + m

	c := make([]float64, cols)
	c[tIdx] = 1

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			a.Set(j, i*n+j, 1)
		}
		b[j] = 1
	}
	for i := 0; i < m; i++ {
		r := n + i
		for j := 0; j < n; j++ {
			a.Set(r, i*n+j, inst.P[i][j])
		}
		a.Set(r, tIdx, -1)
		a.Set(r, tIdx+1+i, 1)
	}

	start := time.Now()
	opt, sol, err := lp.Simplex(c, a, b, lpTolerance, nil)
	elapsed := time.Since(start)

	if err != nil {
		status := solverStatus(err)
		log.WithFields(log.Fields{
			"machines": m,
			"jobs":     n,
			"status":   status,
		}).WithError(err).Debug("LP relaxation failed")
		return LPSolution{}, &LPSolveError{Status: status, Message: err.Error(), Err: err}
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := sol[i*n+j]
			if v < 0 {
				v = 0
			}
			x[i][j] = v
		}
	}
	t := sol[tIdx]
	if t < 0 {
		t = 0
	}

	log.WithFields(log.Fields{
		"machines":  m,
		"jobs":      n,
		"objective": opt,
		"elapsed":   elapsed,
	}).Debug("LP relaxation solved")

	return LPSolution{
		T: t,
		X: x,
		Info: SolverInfo{
			Success:  true,
			Status:   StatusOptimal,
			Message:  "optimal solution found",
			Method:   lpMethod,
			Duration: elapsed,
		},
	}, nil
}

func solverStatus(err error) int {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return StatusUnbounded
	default:
		return StatusNumerical
	}
}
