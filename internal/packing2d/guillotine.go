package packing2d

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/apsuite/internal/model"
)

// GuillotineOptions configures Guillotine.
type GuillotineOptions struct {
	Order model.GuillotineOrder
	Score model.GuillotineScore
}

// DefaultGuillotineOptions returns the options used by the GUILLOTINE engine.
func DefaultGuillotineOptions() GuillotineOptions {
	return GuillotineOptions{Order: model.OrderDecreasingArea, Score: model.ScoreBestAreaFit}
}

// guillotinePacker tracks the free rectangles of one open bin.
type guillotinePacker struct {
	freeRects []rect
	score     model.GuillotineScore
}

type rect struct {
	x, y, w, h float64
}

func newGuillotinePacker(width, height float64, score model.GuillotineScore) *guillotinePacker {
	return &guillotinePacker{
		freeRects: []rect{{0, 0, width, height}},
		score:     score,
	}
}

// insert places a w x h rectangle in the free rectangle with the lowest
// score, the first one winning ties. It returns false when nothing fits.
func (gp *guillotinePacker) insert(w, h float64) (bool, float64, float64) {
	bestIdx := -1
	bestScore := 0.0

	for i, r := range gp.freeRects {
		if w > r.w+model.Eps || h > r.h+model.Eps {
			continue
		}
		s := gp.fitScore(r, w, h)
		if bestIdx < 0 || s < bestScore {
			bestIdx = i
			bestScore = s
		}
	}
	if bestIdx < 0 {
		return false, 0, 0
	}

	chosen := gp.freeRects[bestIdx]
	gp.freeRects = append(gp.freeRects[:bestIdx], gp.freeRects[bestIdx+1:]...)
	gp.freeRects = append(gp.freeRects, splitGuillotine(chosen, w, h)...)
	gp.freeRects = pruneContained(gp.freeRects)

	return true, chosen.x, chosen.y
}

func (gp *guillotinePacker) fitScore(r rect, w, h float64) float64 {
	if gp.score == model.ScoreBestShortSide {
		return math.Min(r.w-w, r.h-h)
	}
	return r.w*r.h - w*h
}

// splitGuillotine places w x h at the bottom-left corner of fr and returns
// the leftover pieces: the strip to the right (as tall as the placed
// rectangle) and the strip above (full width of fr).
func splitGuillotine(fr rect, w, h float64) []rect {
	var out []rect
	if rw := fr.w - w; rw > model.Eps {
		out = append(out, rect{x: fr.x + w, y: fr.y, w: rw, h: h})
	}
	if th := fr.h - h; th > model.Eps {
		out = append(out, rect{x: fr.x, y: fr.y + h, w: fr.w, h: th})
	}
	return out
}

// pruneContained removes any rect that is contained within another. Of two
// identical rects only the first is kept.
func pruneContained(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j || !containsRect(b, a) {
				continue
			}
			// a and b contain each other only when they coincide.
			if j > i && containsRect(a, b) {
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

// containsRect returns true if outer contains inner within model.Eps.
func containsRect(outer, inner rect) bool {
	return inner.x >= outer.x-model.Eps && inner.y >= outer.y-model.Eps &&
		inner.x+inner.w <= outer.x+outer.w+model.Eps &&
		inner.y+inner.h <= outer.y+outer.h+model.Eps
}

// Guillotine packs rectangles with a free-rectangle guillotine heuristic.
// Rectangles are sorted by the configured order and placed into the best
// scoring free rectangle of the open bin. When none fits, the bin is closed
// and the rectangle starts a fresh bin at the origin.
func Guillotine(rects []model.Rect, w, h float64, opts GuillotineOptions) (model.Packing2DResult, error) {
	rects, err := model.ValidateRects(rects, w, h)
	if err != nil {
		return model.Packing2DResult{}, err
	}
	if !opts.Score.Valid() {
		return model.Packing2DResult{}, fmt.Errorf("%w: unknown guillotine score %q", model.ErrInvalidSetting, opts.Score)
	}

	switch opts.Order {
	case model.OrderInput:
	case model.OrderDecreasingArea:
		sort.SliceStable(rects, func(i, j int) bool {
			return rects[i].Area() > rects[j].Area()
		})
	case model.OrderDecreasingMaxSide:
		sort.SliceStable(rects, func(i, j int) bool {
			return math.Max(rects[i].W, rects[i].H) > math.Max(rects[j].W, rects[j].H)
		})
	default:
		return model.Packing2DResult{}, fmt.Errorf("%w: unknown guillotine order %q", model.ErrInvalidSetting, opts.Order)
	}

	var result model.Packing2DResult
	var cur model.Bin2D
	packer := newGuillotinePacker(w, h, opts.Score)

	for _, r := range rects {
		ok, x, y := packer.insert(r.W, r.H)
		if !ok {
			if len(cur.Placements) > 0 {
				result.Bins = append(result.Bins, cur)
			}
			cur = model.Bin2D{}
			packer = newGuillotinePacker(w, h, opts.Score)
			// Validation guarantees r fits an empty bin.
			_, x, y = packer.insert(r.W, r.H)
		}
		cur.Placements = append(cur.Placements, model.Placement{Rect: r, X: x, Y: y})
	}
	if len(cur.Placements) > 0 {
		result.Bins = append(result.Bins, cur)
	}
	return result, nil
}
