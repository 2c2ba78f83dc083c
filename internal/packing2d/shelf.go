// Package packing2d packs axis-aligned rectangles into identical W x H bins
// without rotation.
package packing2d

import (
	"sort"

	"github.com/piwi3910/apsuite/internal/model"
)

// ShelfOptions configures Shelf.
type ShelfOptions struct {
	DecreasingHeight bool // Sort by non-increasing height before packing
}

// DefaultShelfOptions returns the options used by the SHELF engine.
func DefaultShelfOptions() ShelfOptions {
	return ShelfOptions{DecreasingHeight: true}
}

// Shelf packs rectangles left to right on horizontal shelves. A shelf is as
// tall as its tallest rectangle; a rectangle that does not fit beside the
// previous one starts a new shelf above, and one that does not fit above
// the last shelf starts a new bin.
func Shelf(rects []model.Rect, w, h float64, opts ShelfOptions) (model.Packing2DResult, error) {
	rects, err := model.ValidateRects(rects, w, h)
	if err != nil {
		return model.Packing2DResult{}, err
	}
	if opts.DecreasingHeight {
		sort.SliceStable(rects, func(i, j int) bool {
			return rects[i].H > rects[j].H
		})
	}

	var result model.Packing2DResult
	var cur model.Bin2D
	x, y, shelfH := 0.0, 0.0, 0.0

	for _, r := range rects {
		if x+r.W > w+model.Eps {
			y += shelfH
			x, shelfH = 0, 0
		}
		if y+r.H > h+model.Eps {
			result.Bins = append(result.Bins, cur)
			cur = model.Bin2D{}
			x, y, shelfH = 0, 0, 0
		}

		cur.Placements = append(cur.Placements, model.Placement{Rect: r, X: x, Y: y})
		x += r.W
		if r.H > shelfH {
			shelfH = r.H
		}
	}
	if len(cur.Placements) > 0 {
		result.Bins = append(result.Bins, cur)
	}
	return result, nil
}
