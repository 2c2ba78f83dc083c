package unrelated

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/piwi3910/apsuite/internal/model"
)

// Local search defaults.
const (
	DefaultMaxPasses = 2
	DefaultTimeLimit = 10 * time.Millisecond
)

// Reasons a local search stopped.
const (
	StopConverged = "converged"
	StopMaxPasses = "max_passes"
	StopTimeLimit = "time_limit"
)

// LocalSearchOptions bounds the single-move local search. Zero values
// select the defaults.
type LocalSearchOptions struct {
	MaxPasses int
	TimeLimit time.Duration
}

func (o LocalSearchOptions) withDefaults() LocalSearchOptions {
	if o.MaxPasses <= 0 {
		o.MaxPasses = DefaultMaxPasses
	}
	if o.TimeLimit <= 0 {
		o.TimeLimit = DefaultTimeLimit
	}
	return o
}

// LocalSearchStats reports what a local search run did.
type LocalSearchStats struct {
	Passes    int           `json:"passes"`
	Moves     int           `json:"moves"`
	Stopped   string        `json:"stopped"`
	TimeLimit time.Duration `json:"time_limit"`
	Duration  time.Duration `json:"duration"`
}

// ImproveSingleMoves moves jobs off the critical machine while doing so
// strictly reduces the makespan. Each pass fixes the critical machine (the
// lowest-indexed one with maximal load) and visits its jobs in index order;
// each job goes to the destination with the smallest resulting makespan if
// that beats the current makespan by more than model.Eps. The deadline is
// checked before every pass and every job. The returned assignment never
// has a larger makespan than the input.
func ImproveSingleMoves(a model.Assignment, inst model.UnrelatedInstance, opts LocalSearchOptions) (model.Assignment, LocalSearchStats, error) {
	inst, err := model.ValidateUnrelated(inst)
	if err != nil {
		return nil, LocalSearchStats{}, err
	}
	if err := checkAssignment(a, inst); err != nil {
		return nil, LocalSearchStats{}, err
	}
	opts = opts.withDefaults()

	m := inst.Machines()
	out := a.Clone()
	loads := out.Loads(inst)
	stats := LocalSearchStats{Stopped: StopMaxPasses, TimeLimit: opts.TimeLimit}

	start := time.Now()
	deadline := start.Add(opts.TimeLimit)

passes:
	for stats.Passes < opts.MaxPasses {
		if time.Now().After(deadline) {
			stats.Stopped = StopTimeLimit
			break
		}
		stats.Passes++

		crit := argmax(loads)
		var jobs []int
		for j, i := range out {
			if i == crit {
				jobs = append(jobs, j)
			}
		}

		improved := false
		for _, j := range jobs {
			if time.Now().After(deadline) {
				stats.Stopped = StopTimeLimit
				break passes
			}

			current := loads[argmax(loads)]
			best, bestC := crit, current
			for i := 0; i < m; i++ {
				if i == crit {
					continue
				}
				c := moveMakespan(loads, crit, i, inst.P[crit][j], inst.P[i][j])
				if c+model.Eps < bestC {
					best, bestC = i, c
				}
			}

			if best != crit {
				out[j] = best
				loads[crit] -= inst.P[crit][j]
				loads[best] += inst.P[best][j]
				stats.Moves++
				improved = true
			}
		}

		if !improved {
			stats.Stopped = StopConverged
			break
		}
	}

	stats.Duration = time.Since(start)
	log.WithFields(log.Fields{
		"passes":  stats.Passes,
		"moves":   stats.Moves,
		"stopped": stats.Stopped,
	}).Debug("single-move local search finished")

	return out, stats, nil
}

// moveMakespan returns the makespan after moving a job with times pFrom on
// machine from and pTo on machine to.
func moveMakespan(loads []float64, from, to int, pFrom, pTo float64) float64 {
	c := max(loads[from]-pFrom, loads[to]+pTo)
	for k, l := range loads {
		if k != from && k != to && l > c {
			c = l
		}
	}
	return c
}

func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}

func checkAssignment(a model.Assignment, inst model.UnrelatedInstance) error {
	if len(a) != inst.Jobs() {
		return fmt.Errorf("%w: assignment covers %d jobs, want %d", model.ErrInvalidInstance, len(a), inst.Jobs())
	}
	for j, i := range a {
		if i < 0 || i >= inst.Machines() {
			return fmt.Errorf("%w: job %d assigned to machine %d, want 0..%d", model.ErrInvalidInstance, j, i, inst.Machines()-1)
		}
	}
	return nil
}
