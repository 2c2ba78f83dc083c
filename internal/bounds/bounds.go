// Package bounds computes lower bounds on the optimum of every problem
// family. Each bound validates its instance and returns 0 for an empty one.
package bounds

import (
	"math"

	"github.com/piwi3910/apsuite/internal/model"
	"github.com/piwi3910/apsuite/internal/scheduling/unrelated"
)

// ceilSlack rounds q up after removing a relative slack of model.Eps, so a
// quotient like 2.0000000000000004 counts as 2.
func ceilSlack(q float64) int {
	return int(math.Ceil(q - model.Eps*math.Max(1, math.Abs(q))))
}

// Volume returns ceil(sum(items) / capacity).
func Volume(items []float64, capacity float64) (int, error) {
	items, err := model.ValidateItems(items, capacity)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	var total float64
	for _, x := range items {
		total += x
	}
	return ceilSlack(total / capacity), nil
}

// HalfItem counts items strictly larger than capacity/2. No two of them
// can share a bin.
func HalfItem(items []float64, capacity float64) (int, error) {
	items, err := model.ValidateItems(items, capacity)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, x := range items {
		if x > capacity/2 {
			n++
		}
	}
	return n, nil
}

// Combined1D returns the larger of Volume and HalfItem.
func Combined1D(items []float64, capacity float64) (int, error) {
	v, err := Volume(items, capacity)
	if err != nil {
		return 0, err
	}
	h, err := HalfItem(items, capacity)
	if err != nil {
		return 0, err
	}
	return max(v, h), nil
}

// Area returns ceil(sum(w*h) / (W*H)).
func Area(rects []model.Rect, w, h float64) (int, error) {
	rects, err := model.ValidateRects(rects, w, h)
	if err != nil {
		return 0, err
	}
	if len(rects) == 0 {
		return 0, nil
	}
	var total float64
	for _, r := range rects {
		total += r.Area()
	}
	return ceilSlack(total / (w * h)), nil
}

// Identical returns max(sum(p)/m, max(p)).
func Identical(p []float64, m int) (float64, error) {
	p, err := model.ValidateJobs(p, m)
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	var total, longest float64
	for _, x := range p {
		total += x
		longest = math.Max(longest, x)
	}
	return math.Max(total/float64(m), longest), nil
}

// UnrelatedTrivial returns max(max_j min_i p, sum_j min_i p / m). Every job
// runs somewhere for at least its cheapest time.
func UnrelatedTrivial(inst model.UnrelatedInstance) (float64, error) {
	inst, err := model.ValidateUnrelated(inst)
	if err != nil {
		return 0, err
	}
	n := inst.Jobs()
	if n == 0 {
		return 0, nil
	}
	var total, longest float64
	for j := 0; j < n; j++ {
		c := inst.MinTime(j)
		total += c
		longest = math.Max(longest, c)
	}
	return math.Max(longest, total/float64(inst.Machines())), nil
}

// UnrelatedLP returns the optimal makespan T* of the LP relaxation.
func UnrelatedLP(inst model.UnrelatedInstance) (float64, error) {
	sol, err := unrelated.SolveLP(inst)
	if err != nil {
		return 0, err
	}
	return sol.T, nil
}
