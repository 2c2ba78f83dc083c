package packing1d

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/apsuite/internal/bounds"
	"github.com/piwi3910/apsuite/internal/instances"
	"github.com/piwi3910/apsuite/internal/model"
)

type packFunc func([]float64, float64) (model.PackingResult, error)

var engines = map[string]packFunc{
	"FF":  FirstFit,
	"BF":  BestFit,
	"FFD": FirstFitDecreasing,
	"BFD": BestFitDecreasing,
	"FFD+LS": func(items []float64, c float64) (model.PackingResult, error) {
		return FFDWithLocalSearch(items, c, EliminateOptions{})
	},
	"HYB": HybridFFDBF,
}

func assertFeasible(t *testing.T, items []float64, capacity float64, r model.PackingResult, name string) {
	t.Helper()
	for i, load := range r.Loads() {
		assert.LessOrEqual(t, load, capacity+1e-12, "%s: bin %d overloaded", name, i)
	}

	var packed []float64
	for _, b := range r.Bins {
		assert.NotEmpty(t, b, "%s: empty bin in result", name)
		packed = append(packed, b...)
	}
	want := append([]float64(nil), items...)
	sort.Float64s(want)
	sort.Float64s(packed)
	if len(want) == 0 {
		assert.Empty(t, packed, name)
		return
	}
	assert.Equal(t, want, packed, "%s: items must be packed exactly once", name)
}

func TestAllEnginesRespectCapacity(t *testing.T) {
	items := []float64{0.51, 0.49, 0.7, 0.3, 0.3, 0.2}
	for name, pack := range engines {
		res, err := pack(items, 1.0)
		require.NoError(t, err, name)
		assertFeasible(t, items, 1.0, res, name)
	}
}

func TestEmptyInputGivesZeroBins(t *testing.T) {
	for name, pack := range engines {
		res, err := pack(nil, 1.0)
		require.NoError(t, err, name)
		assert.Equal(t, 0, res.NumBins(), name)
	}
}

func TestInvalidInputRejected(t *testing.T) {
	for name, pack := range engines {
		_, err := pack([]float64{0.5, 1.2}, 1.0)
		assert.ErrorIs(t, err, model.ErrInvalidInstance, name)

		_, err = pack([]float64{0.5}, 0)
		assert.ErrorIs(t, err, model.ErrInvalidInstance, name)
	}
}

func TestDecreasingNotWorseOnSimpleCase(t *testing.T) {
	items := []float64{0.4, 0.4, 0.4, 0.6, 0.6}
	ff, err := FirstFit(items, 1)
	require.NoError(t, err)
	ffd, err := FirstFitDecreasing(items, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, ff.NumBins())
	assert.LessOrEqual(t, ffd.NumBins(), ff.NumBins())
}

func TestFirstFitUsesLowestIndexBin(t *testing.T) {
	res, err := FirstFit([]float64{0.5, 0.7, 0.2}, 1)
	require.NoError(t, err)
	assert.Equal(t, []model.Bin{{0.5, 0.2}, {0.7}}, res.Bins)
}

func TestBestFitUsesTightestBin(t *testing.T) {
	res, err := BestFit([]float64{0.5, 0.7, 0.2}, 1)
	require.NoError(t, err)
	assert.Equal(t, []model.Bin{{0.5}, {0.7, 0.2}}, res.Bins)
}

func TestBestFitEarliestBinWinsTies(t *testing.T) {
	res, err := BestFit([]float64{0.6, 0.6, 0.3}, 1)
	require.NoError(t, err)
	assert.Equal(t, []model.Bin{{0.6, 0.3}, {0.6}}, res.Bins)
}

func TestExactFillWithinTolerance(t *testing.T) {
	// 1-0.3-0.6 leaves 0.09999999999999998, just short of 0.1.
	res, err := FirstFit([]float64{0.3, 0.6, 0.1}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumBins())
}

func TestInputNotMutated(t *testing.T) {
	items := []float64{0.2, 0.9, 0.5}
	_, err := FirstFitDecreasing(items, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.9, 0.5}, items)
}

func TestHybridNeverWorseThanComponents(t *testing.T) {
	items := []float64{0.8, 0.2, 0.7, 0.3, 0.6, 0.4, 0.55, 0.45}
	ffd, err := FirstFitDecreasing(items, 1)
	require.NoError(t, err)
	bf, err := BestFit(items, 1)
	require.NoError(t, err)
	h, err := HybridFFDBF(items, 1)
	require.NoError(t, err)

	assert.LessOrEqual(t, h.NumBins(), ffd.NumBins())
	assert.LessOrEqual(t, h.NumBins(), bf.NumBins())
}

func TestHybridPrefersFFDOnTies(t *testing.T) {
	h, err := HybridFFDBF([]float64{0.4, 0.6}, 1)
	require.NoError(t, err)
	require.Equal(t, 1, h.NumBins())
	assert.Equal(t, model.Bin{0.6, 0.4}, h.Bins[0], "FFD packing expected on a tie")
}

func TestGeneratedInstancesProperties(t *testing.T) {
	for _, dist := range []instances.Distribution{instances.Uniform, instances.Bimodal, instances.HeavyTail} {
		for seed := int64(0); seed < 5; seed++ {
			items, err := instances.Items1D(instances.Spec{N: 60, Dist: dist, Seed: seed}, 1)
			require.NoError(t, err)

			lb, err := bounds.Combined1D(items, 1)
			require.NoError(t, err)

			results := map[string]model.PackingResult{}
			for name, pack := range engines {
				res, err := pack(items, 1)
				require.NoError(t, err, name)
				assertFeasible(t, items, 1, res, name)
				assert.GreaterOrEqual(t, res.NumBins(), lb, "%s beats the lower bound on %s/%d", name, dist, seed)
				results[name] = res
			}

			assert.LessOrEqual(t, results["FFD+LS"].NumBins(), results["FFD"].NumBins())
			assert.LessOrEqual(t, results["HYB"].NumBins(), results["FFD"].NumBins())
			assert.LessOrEqual(t, results["HYB"].NumBins(), results["BF"].NumBins())
		}
	}
}
