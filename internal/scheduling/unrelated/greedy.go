package unrelated

import (
	"fmt"
	"sort"

	"github.com/piwi3910/apsuite/internal/model"
)

// Greedy assigns jobs one at a time to the machine minimizing
// load + p[i][j], lowest index on ties. The order decides which jobs go
// first: input order, or non-increasing min_i / max_i processing time
// (stable, so equal keys keep index order).
func Greedy(inst model.UnrelatedInstance, order model.GreedyOrder) (model.Assignment, error) {
	inst, err := model.ValidateUnrelated(inst)
	if err != nil {
		return nil, err
	}
	m, n := inst.Machines(), inst.Jobs()

	jobs := make([]int, n)
	for j := range jobs {
		jobs[j] = j
	}

	var key func(j int) float64
	switch order {
	case model.GreedyAsIs:
	case model.GreedyMinProcDesc:
		key = inst.MinTime
	case model.GreedyMaxProcDesc:
		key = inst.MaxTime
	default:
		return nil, fmt.Errorf("%w: unknown greedy order %q", model.ErrInvalidSetting, order)
	}
	if key != nil {
		keys := make([]float64, n)
		for j := range keys {
			keys[j] = key(j)
		}
		sort.SliceStable(jobs, func(a, b int) bool {
			return keys[jobs[a]] > keys[jobs[b]]
		})
	}

	loads := make([]float64, m)
	a := make(model.Assignment, n)
	for _, j := range jobs {
		best := 0
		for i := 1; i < m; i++ {
			if loads[i]+inst.P[i][j] < loads[best]+inst.P[best][j] {
				best = i
			}
		}
		a[j] = best
		loads[best] += inst.P[best][j]
	}
	return a, nil
}
