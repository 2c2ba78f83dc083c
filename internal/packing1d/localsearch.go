package packing1d

import (
	"fmt"

	"github.com/piwi3910/apsuite/internal/model"
)

// DefaultMaxRounds caps the number of bins EliminateBins tries to remove.
const DefaultMaxRounds = 50

// EliminateOptions tunes the bin-elimination local search.
type EliminateOptions struct {
	MaxRounds int // Zero means DefaultMaxRounds
}

func (o EliminateOptions) maxRounds() int {
	if o.MaxRounds <= 0 {
		return DefaultMaxRounds
	}
	return o.MaxRounds
}

// TryEliminateOneBin empties the least-loaded bin by moving its items,
// largest first, into the tightest of the other bins. The move is
// all-or-nothing: if any item cannot be placed the input is returned
// unchanged with ok=false. The input bins are never modified. bins must
// already be a feasible packing for capacity; EliminateBins checks that.
func TryEliminateOneBin(bins []model.Bin, capacity float64) ([]model.Bin, bool) {
	if len(bins) <= 1 {
		return bins, false
	}

	cand := 0
	candLoad := bins[0].Load()
	for i := 1; i < len(bins); i++ {
		if l := bins[i].Load(); l < candLoad {
			cand, candLoad = i, l
		}
	}

	moving := append([]float64(nil), bins[cand]...)
	sortDescending(moving)

	next := make([]model.Bin, 0, len(bins)-1)
	remaining := make([]float64, 0, len(bins)-1)
	for i, b := range bins {
		if i == cand {
			continue
		}
		next = append(next, append(model.Bin(nil), b...))
		remaining = append(remaining, capacity-b.Load())
	}

	for _, x := range moving {
		best := bestBin(remaining, x)
		if best < 0 {
			return bins, false
		}
		next[best] = append(next[best], x)
		remaining[best] -= x
	}
	return next, true
}

// EliminateBins repeatedly applies TryEliminateOneBin until it fails or
// MaxRounds eliminations have happened. When at least one bin was removed
// the items inside every bin are re-sorted in non-increasing order.
// Every item and every bin load must fit capacity.
func EliminateBins(result model.PackingResult, capacity float64, opts EliminateOptions) (model.PackingResult, error) {
	if err := validatePacking(result, capacity); err != nil {
		return model.PackingResult{}, err
	}
	bins := result.Clone().Bins
	improved := false

	for round := 0; round < opts.maxRounds(); round++ {
		next, ok := TryEliminateOneBin(bins, capacity)
		if !ok {
			break
		}
		bins = next
		improved = true
	}

	if improved {
		for _, b := range bins {
			sortDescending(b)
		}
	}
	return model.PackingResult{Bins: bins}, nil
}

func validatePacking(result model.PackingResult, capacity float64) error {
	var items []float64
	for _, b := range result.Bins {
		items = append(items, b...)
	}
	if _, err := model.ValidateItems(items, capacity); err != nil {
		return err
	}
	for i, b := range result.Bins {
		if l := b.Load(); l > capacity+model.Eps {
			return fmt.Errorf("%w: bin %d load %v exceeds capacity %v", model.ErrInvalidInstance, i, l, capacity)
		}
	}
	return nil
}

// FFDWithLocalSearch runs First-Fit Decreasing followed by EliminateBins.
func FFDWithLocalSearch(items []float64, capacity float64, opts EliminateOptions) (model.PackingResult, error) {
	base, err := FirstFitDecreasing(items, capacity)
	if err != nil {
		return model.PackingResult{}, err
	}
	return EliminateBins(base, capacity, opts)
}
