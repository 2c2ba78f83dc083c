package unrelated

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/piwi3910/apsuite/internal/model"
)

// Options configures LPRounding.
type Options struct {
	LocalSearch        bool
	LocalSearchOptions LocalSearchOptions
}

// Info carries diagnostics of one pipeline run. LP-related fields are
// empty for the greedy baseline.
type Info struct {
	LPObjective   float64           `json:"lp_objective"`
	RatioVsLP     *float64          `json:"ratio_vs_lp"` // nil when T* = 0
	GapVsLP       *float64          `json:"gap_vs_lp"`   // nil when T* = 0
	LP            *SolverInfo       `json:"lp,omitempty"`
	RoundDuration time.Duration     `json:"round_duration"`
	LocalSearch   *LocalSearchStats `json:"local_search,omitempty"`
	Order         model.GreedyOrder `json:"order,omitempty"`
	TotalDuration time.Duration     `json:"total_duration"`
}

// Result is the outcome of an unrelated-machines engine.
type Result struct {
	Algorithm  model.AlgorithmUnrelated `json:"algorithm"`
	Makespan   float64                  `json:"makespan"`
	Assignment model.Assignment         `json:"assignment"`
	Info       Info                     `json:"info"`
}

// LPRounding solves the LP relaxation, rounds it and optionally runs the
// single-move local search on the rounded assignment.
func LPRounding(inst model.UnrelatedInstance, opts Options) (Result, error) {
	inst, err := model.ValidateUnrelated(inst)
	if err != nil {
		return Result{}, err
	}

	sol, err := SolveLP(inst)
	if err != nil {
		return Result{}, err
	}

	roundStart := time.Now()
	a, err := Round(sol.X, inst)
	if err != nil {
		return Result{}, err
	}
	roundDur := time.Since(roundStart)

	res := Result{
		Algorithm: model.AlgorithmLPRound,
		Info: Info{
			LPObjective:   sol.T,
			LP:            &sol.Info,
			RoundDuration: roundDur,
		},
	}
	total := sol.Info.Duration + roundDur

	if opts.LocalSearch {
		improved, stats, err := ImproveSingleMoves(a, inst, opts.LocalSearchOptions)
		if err != nil {
			return Result{}, err
		}
		a = improved
		res.Algorithm = model.AlgorithmLPRoundSearch
		res.Info.LocalSearch = &stats
		total += stats.Duration
	}

	res.Assignment = a
	res.Makespan = a.Makespan(inst)
	res.Info.TotalDuration = total
	if sol.T > 0 {
		ratio := res.Makespan / sol.T
		gap := (res.Makespan - sol.T) / sol.T
		res.Info.RatioVsLP = &ratio
		res.Info.GapVsLP = &gap
	}

	log.WithFields(log.Fields{
		"algorithm": res.Algorithm,
		"makespan":  res.Makespan,
		"lp":        sol.T,
	}).Debug("LP rounding finished")

	return res, nil
}

// GreedyBaseline runs Greedy and packages it as a Result.
func GreedyBaseline(inst model.UnrelatedInstance, order model.GreedyOrder) (Result, error) {
	start := time.Now()
	a, err := Greedy(inst, order)
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	return Result{
		Algorithm:  model.AlgorithmGreedy,
		Makespan:   a.Makespan(inst),
		Assignment: a,
		Info: Info{
			Order:         order,
			TotalDuration: elapsed,
		},
	}, nil
}
