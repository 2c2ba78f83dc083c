package identical

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/apsuite/internal/bounds"
	"github.com/piwi3910/apsuite/internal/instances"
	"github.com/piwi3910/apsuite/internal/model"
)

// optimum enumerates every machine assignment of p.
func optimum(p []float64, m int) float64 {
	loads := make([]float64, m)
	best := math.Inf(1)
	var rec func(j int)
	rec = func(j int) {
		if j == len(p) {
			ms := 0.0
			for _, l := range loads {
				ms = math.Max(ms, l)
			}
			best = math.Min(best, ms)
			return
		}
		for i := 0; i < m; i++ {
			loads[i] += p[j]
			rec(j + 1)
			loads[i] -= p[j]
		}
	}
	rec(0)
	return best
}

func assertComplete(t *testing.T, p []float64, s model.Schedule, m int) {
	t.Helper()
	require.Len(t, s.Machines, m)
	var got []float64
	for _, jobs := range s.Machines {
		got = append(got, jobs...)
	}
	want := append([]float64(nil), p...)
	sort.Float64s(want)
	sort.Float64s(got)
	if len(want) == 0 {
		assert.Empty(t, got)
		return
	}
	assert.Equal(t, want, got, "every job scheduled exactly once")
}

func TestListSchedulingLeastLoaded(t *testing.T) {
	s, err := ListScheduling([]float64{3, 3, 2, 2, 2}, 2)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{3, 2, 2}, {3, 2}}, s.Machines)
	assert.Equal(t, 7.0, s.Makespan())
}

func TestListSchedulingTiesGoToLowestIndex(t *testing.T) {
	s, err := ListScheduling([]float64{1, 1, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {1}, {1}}, s.Machines)
}

func TestLPTSortsJobs(t *testing.T) {
	p := []float64{2, 3, 2, 3, 2}
	s, err := LPT(p, 2)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{3, 2, 2}, {3, 2}}, s.Machines)
	assert.Equal(t, []float64{2, 3, 2, 3, 2}, p, "input must not be reordered")
}

func TestLPTClassicWorstCase(t *testing.T) {
	// Graham's tight example for m=2: LPT gives 7, optimum is 6.
	s, err := LPT([]float64{3, 3, 2, 2, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.Makespan())
	assert.Equal(t, 6.0, optimum([]float64{3, 3, 2, 2, 2}, 2))
}

func TestMoreMachinesThanJobs(t *testing.T) {
	s, err := LPT([]float64{4, 1}, 5)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.Makespan())
	assertComplete(t, []float64{4, 1}, s, 5)
}

func TestEmptyJobs(t *testing.T) {
	s, err := ListScheduling(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Makespan())
	assert.Len(t, s.Machines, 3)
}

func TestRejectsInvalidInput(t *testing.T) {
	_, err := ListScheduling([]float64{1}, 0)
	assert.ErrorIs(t, err, model.ErrInvalidInstance)

	_, err = LPT([]float64{1, 0}, 2)
	assert.ErrorIs(t, err, model.ErrInvalidInstance)
}

func TestApproximationGuarantees(t *testing.T) {
	for _, dist := range []instances.Distribution{instances.Uniform, instances.Bimodal, instances.HeavyTail} {
		for seed := int64(0); seed < 4; seed++ {
			for _, m := range []int{2, 3} {
				p, err := instances.IdenticalJobs(instances.Spec{N: 9, Dist: dist, Seed: seed})
				require.NoError(t, err)
				opt := optimum(p, m)
				lb, err := bounds.Identical(p, m)
				require.NoError(t, err)
				assert.LessOrEqual(t, lb, opt+1e-9)

				ls, err := ListScheduling(p, m)
				require.NoError(t, err)
				assertComplete(t, p, ls, m)
				assert.GreaterOrEqual(t, ls.Makespan(), lb-1e-9)
				assert.LessOrEqual(t, ls.Makespan(), (2-1/float64(m))*opt+1e-9,
					"list scheduling exceeds 2-1/m on %s/%d", dist, seed)

				lpt, err := LPT(p, m)
				require.NoError(t, err)
				assertComplete(t, p, lpt, m)
				assert.LessOrEqual(t, lpt.Makespan(), (4.0/3-1/(3*float64(m)))*opt+1e-9,
					"LPT exceeds 4/3-1/(3m) on %s/%d", dist, seed)
			}
		}
	}
}
