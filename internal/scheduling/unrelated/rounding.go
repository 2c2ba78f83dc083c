package unrelated

import (
	"fmt"
	"math"

	"github.com/piwi3910/apsuite/internal/model"
)

// Round converts a fractional LP solution into an integral assignment.
// Jobs are visited in index order. Each goes to the machine with the
// largest fraction; fractions within model.Eps of the maximum tie, and ties
// go to the machine with the smallest resulting load (lowest index first).
func Round(x [][]float64, inst model.UnrelatedInstance) (model.Assignment, error) {
	inst, err := model.ValidateUnrelated(inst)
	if err != nil {
		return nil, err
	}
	m, n := inst.Machines(), inst.Jobs()
	if len(x) != m {
		return nil, fmt.Errorf("%w: fractional solution has %d rows, want %d", model.ErrInvalidInstance, len(x), m)
	}
	for i, row := range x {
		if len(row) != n {
			return nil, fmt.Errorf("%w: fractional solution row %d has %d columns, want %d", model.ErrInvalidInstance, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: x[%d][%d] must be numeric, got %v", model.ErrInvalidInstance, i, j, v)
			}
		}
	}

	loads := make([]float64, m)
	a := make(model.Assignment, n)
	for j := 0; j < n; j++ {
		top := math.Inf(-1)
		for i := 0; i < m; i++ {
			top = math.Max(top, x[i][j])
		}

		best := -1
		bestLoad := 0.0
		for i := 0; i < m; i++ {
			if math.Abs(x[i][j]-top) > model.Eps {
				continue
			}
			l := loads[i] + inst.P[i][j]
			if best < 0 || l < bestLoad {
				best, bestLoad = i, l
			}
		}

		a[j] = best
		loads[best] += inst.P[best][j]
	}
	return a, nil
}
