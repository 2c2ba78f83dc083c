// Package packing1d implements online and offline heuristics for
// one-dimensional bin packing.
package packing1d

import (
	"sort"

	"github.com/piwi3910/apsuite/internal/model"
)

// fits reports whether an item of size x fits into rem remaining capacity.
func fits(rem, x float64) bool {
	return rem >= x-model.Eps
}

// FirstFit places each item, in input order, into the lowest-indexed bin
// with room for it, opening a new bin when none has.
func FirstFit(items []float64, capacity float64) (model.PackingResult, error) {
	items, err := model.ValidateItems(items, capacity)
	if err != nil {
		return model.PackingResult{}, err
	}
	return firstFit(items, capacity), nil
}

func firstFit(items []float64, capacity float64) model.PackingResult {
	var bins []model.Bin
	var remaining []float64

	for _, x := range items {
		placed := false
		for b := range bins {
			if fits(remaining[b], x) {
				bins[b] = append(bins[b], x)
				remaining[b] -= x
				placed = true
				break
			}
		}
		if !placed {
			bins = append(bins, model.Bin{x})
			remaining = append(remaining, capacity-x)
		}
	}
	return model.PackingResult{Bins: bins}
}

// BestFit places each item into the feasible bin with the least remaining
// capacity after placement. The earliest bin wins ties.
func BestFit(items []float64, capacity float64) (model.PackingResult, error) {
	items, err := model.ValidateItems(items, capacity)
	if err != nil {
		return model.PackingResult{}, err
	}
	return bestFit(items, capacity), nil
}

func bestFit(items []float64, capacity float64) model.PackingResult {
	var bins []model.Bin
	var remaining []float64

	for _, x := range items {
		best := bestBin(remaining, x)
		if best < 0 {
			bins = append(bins, model.Bin{x})
			remaining = append(remaining, capacity-x)
			continue
		}
		bins[best] = append(bins[best], x)
		remaining[best] -= x
	}
	return model.PackingResult{Bins: bins}
}

// bestBin returns the index of the tightest bin for x, or -1.
func bestBin(remaining []float64, x float64) int {
	best := -1
	bestAfter := 0.0
	for b, rem := range remaining {
		if !fits(rem, x) {
			continue
		}
		after := rem - x
		if best < 0 || after < bestAfter {
			best = b
			bestAfter = after
		}
	}
	return best
}

// FirstFitDecreasing sorts items in non-increasing order and runs First-Fit.
func FirstFitDecreasing(items []float64, capacity float64) (model.PackingResult, error) {
	items, err := model.ValidateItems(items, capacity)
	if err != nil {
		return model.PackingResult{}, err
	}
	sortDescending(items)
	return firstFit(items, capacity), nil
}

// BestFitDecreasing sorts items in non-increasing order and runs Best-Fit.
func BestFitDecreasing(items []float64, capacity float64) (model.PackingResult, error) {
	items, err := model.ValidateItems(items, capacity)
	if err != nil {
		return model.PackingResult{}, err
	}
	sortDescending(items)
	return bestFit(items, capacity), nil
}

func sortDescending(xs []float64) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i] > xs[j]
	})
}
