package packing1d

import (
	"github.com/piwi3910/apsuite/internal/model"
)

// HybridFFDBF runs FFD and Best-Fit on the same items and keeps the packing
// with fewer bins. FFD wins ties.
func HybridFFDBF(items []float64, capacity float64) (model.PackingResult, error) {
	items, err := model.ValidateItems(items, capacity)
	if err != nil {
		return model.PackingResult{}, err
	}

	sorted := append([]float64(nil), items...)
	sortDescending(sorted)
	ffd := firstFit(sorted, capacity)
	bf := bestFit(items, capacity)

	if bf.NumBins() < ffd.NumBins() {
		return bf, nil
	}
	return ffd, nil
}
