// Package engine dispatches problem instances to the configured heuristic
// and runs side-by-side comparisons of every heuristic of a family.
package engine

import (
	"fmt"

	"github.com/piwi3910/apsuite/internal/model"
	"github.com/piwi3910/apsuite/internal/packing1d"
	"github.com/piwi3910/apsuite/internal/packing2d"
	"github.com/piwi3910/apsuite/internal/scheduling/identical"
	"github.com/piwi3910/apsuite/internal/scheduling/unrelated"
)

// Optimizer runs the engines selected by its settings.
type Optimizer struct {
	Settings model.Settings
}

// New returns an Optimizer bound to settings. The settings are validated
// lazily, on each call.
func New(settings model.Settings) *Optimizer {
	return &Optimizer{Settings: settings}
}

// Pack1D packs items with the configured 1D algorithm.
func (o *Optimizer) Pack1D(items []float64, capacity float64) (model.PackingResult, error) {
	return o.pack1D(o.Settings.Packing1D.Algorithm, items, capacity)
}

func (o *Optimizer) pack1D(alg model.Algorithm1D, items []float64, capacity float64) (model.PackingResult, error) {
	switch alg {
	case model.AlgorithmFirstFit:
		return packing1d.FirstFit(items, capacity)
	case model.AlgorithmBestFit:
		return packing1d.BestFit(items, capacity)
	case model.AlgorithmFirstFitDecr:
		return packing1d.FirstFitDecreasing(items, capacity)
	case model.AlgorithmBestFitDecr:
		return packing1d.BestFitDecreasing(items, capacity)
	case model.AlgorithmFirstFitDecrLocal:
		return packing1d.FFDWithLocalSearch(items, capacity, packing1d.EliminateOptions{
			MaxRounds: o.Settings.Packing1D.MaxRounds,
		})
	case model.AlgorithmHybridFFDBF:
		return packing1d.HybridFFDBF(items, capacity)
	}
	return model.PackingResult{}, fmt.Errorf("%w: unknown 1D algorithm %q", model.ErrInvalidSetting, alg)
}

// Pack2D packs rectangles with the configured 2D algorithm. Shelf and
// guillotine options come from the settings, including inside the hybrid.
func (o *Optimizer) Pack2D(rects []model.Rect, w, h float64) (model.Packing2DResult, error) {
	return o.pack2D(o.Settings.Packing2D.Algorithm, rects, w, h)
}

func (o *Optimizer) pack2D(alg model.Algorithm2D, rects []model.Rect, w, h float64) (model.Packing2DResult, error) {
	s := o.Settings.Packing2D
	shelfOpts := packing2d.ShelfOptions{DecreasingHeight: s.DecreasingHeight}
	guilOpts := packing2d.GuillotineOptions{Order: s.Order, Score: s.Score}

	switch alg {
	case model.AlgorithmShelf:
		return packing2d.Shelf(rects, w, h, shelfOpts)
	case model.AlgorithmGuillotine:
		return packing2d.Guillotine(rects, w, h, guilOpts)
	case model.AlgorithmHybrid2D:
		shelf, err := packing2d.Shelf(rects, w, h, shelfOpts)
		if err != nil {
			return model.Packing2DResult{}, err
		}
		guil, err := packing2d.Guillotine(rects, w, h, guilOpts)
		if err != nil {
			return model.Packing2DResult{}, err
		}
		return packing2d.BestOfTwo(shelf, guil), nil
	}
	return model.Packing2DResult{}, fmt.Errorf("%w: unknown 2D algorithm %q", model.ErrInvalidSetting, alg)
}

// ScheduleIdentical schedules jobs on m identical machines.
func (o *Optimizer) ScheduleIdentical(p []float64, m int) (model.Schedule, error) {
	return o.scheduleIdentical(o.Settings.Identical.Algorithm, p, m)
}

func (o *Optimizer) scheduleIdentical(alg model.AlgorithmIdentical, p []float64, m int) (model.Schedule, error) {
	switch alg {
	case model.AlgorithmList:
		return identical.ListScheduling(p, m)
	case model.AlgorithmLPT:
		return identical.LPT(p, m)
	}
	return model.Schedule{}, fmt.Errorf("%w: unknown identical-machines algorithm %q", model.ErrInvalidSetting, alg)
}

// ScheduleUnrelated schedules an unrelated-machines instance.
func (o *Optimizer) ScheduleUnrelated(inst model.UnrelatedInstance) (unrelated.Result, error) {
	return o.scheduleUnrelated(o.Settings.Unrelated.Algorithm, inst)
}

func (o *Optimizer) scheduleUnrelated(alg model.AlgorithmUnrelated, inst model.UnrelatedInstance) (unrelated.Result, error) {
	s := o.Settings.Unrelated
	switch alg {
	case model.AlgorithmGreedy:
		return unrelated.GreedyBaseline(inst, s.GreedyOrder)
	case model.AlgorithmLPRound:
		return unrelated.LPRounding(inst, unrelated.Options{})
	case model.AlgorithmLPRoundSearch:
		return unrelated.LPRounding(inst, unrelated.Options{
			LocalSearch: true,
			LocalSearchOptions: unrelated.LocalSearchOptions{
				MaxPasses: s.LocalSearchPasses,
				TimeLimit: s.LocalSearchTimeLimit,
			},
		})
	}
	return unrelated.Result{}, fmt.Errorf("%w: unknown unrelated-machines algorithm %q", model.ErrInvalidSetting, alg)
}
