package packing2d

import (
	"github.com/piwi3910/apsuite/internal/model"
)

// BestOfTwo returns b if it uses strictly fewer bins than a, otherwise a.
func BestOfTwo(a, b model.Packing2DResult) model.Packing2DResult {
	if b.NumBins() < a.NumBins() {
		return b
	}
	return a
}

// Hybrid runs Shelf and Guillotine with their default options and keeps the
// packing with fewer bins, Shelf on ties.
func Hybrid(rects []model.Rect, w, h float64) (model.Packing2DResult, error) {
	shelf, err := Shelf(rects, w, h, DefaultShelfOptions())
	if err != nil {
		return model.Packing2DResult{}, err
	}
	guil, err := Guillotine(rects, w, h, DefaultGuillotineOptions())
	if err != nil {
		return model.Packing2DResult{}, err
	}
	return BestOfTwo(shelf, guil), nil
}
