package packing1d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/apsuite/internal/model"
)

func TestEliminateBinsMergesUntilStuck(t *testing.T) {
	in := model.PackingResult{Bins: []model.Bin{{0.5}, {0.3}, {0.2}}}
	out, err := EliminateBins(in, 1, EliminateOptions{})
	require.NoError(t, err)

	require.Equal(t, 1, out.NumBins())
	assert.Equal(t, model.Bin{0.5, 0.3, 0.2}, out.Bins[0], "items re-sorted after improvement")
	assert.Equal(t, 3, in.NumBins(), "input must not be modified")
}

func TestEliminateBinsRespectsMaxRounds(t *testing.T) {
	in := model.PackingResult{Bins: []model.Bin{{0.5}, {0.3}, {0.2}}}
	out, err := EliminateBins(in, 1, EliminateOptions{MaxRounds: 1})
	require.NoError(t, err)

	assert.Equal(t, []model.Bin{{0.5, 0.2}, {0.3}}, out.Bins)
}

func TestEliminateBinsLeavesUnimprovablePackingAlone(t *testing.T) {
	in := model.PackingResult{Bins: []model.Bin{{0.3, 0.6}, {0.9}}}
	out, err := EliminateBins(in, 1, EliminateOptions{})
	require.NoError(t, err)

	assert.Equal(t, in.Bins, out.Bins, "no reordering without improvement")
}

func TestTryEliminateOneBinIsAllOrNothing(t *testing.T) {
	bins := []model.Bin{{0.9}, {0.5, 0.45}}
	out, ok := TryEliminateOneBin(bins, 1)

	assert.False(t, ok)
	assert.Equal(t, []model.Bin{{0.9}, {0.5, 0.45}}, out)
}

func TestTryEliminateOneBinSingleBin(t *testing.T) {
	_, ok := TryEliminateOneBin([]model.Bin{{0.4}}, 1)
	assert.False(t, ok)
	_, ok = TryEliminateOneBin(nil, 1)
	assert.False(t, ok)
}

func TestLocalSearchNeverIncreasesBins(t *testing.T) {
	items := []float64{0.6, 0.6, 0.4, 0.4, 0.2, 0.2}
	ffd, err := FirstFitDecreasing(items, 1)
	require.NoError(t, err)
	improved, err := EliminateBins(ffd, 1, EliminateOptions{})
	require.NoError(t, err)

	assert.LessOrEqual(t, improved.NumBins(), ffd.NumBins())
	assertFeasible(t, items, 1, improved, "FFD+LS")
}

func TestEliminateBinsTieGoesToEarliestBin(t *testing.T) {
	items := []float64{0.5, 0.2, 0.7, 0.3}
	in := model.PackingResult{Bins: []model.Bin{{0.5, 0.2}, {0.7}, {0.3}}}
	out, err := EliminateBins(in, 1, EliminateOptions{})
	require.NoError(t, err)

	assert.Equal(t, []model.Bin{{0.5, 0.3, 0.2}, {0.7}}, out.Bins)
	assertFeasible(t, items, 1, out, "EliminateBins")
}

func TestEliminateBinsRejectsInvalidPacking(t *testing.T) {
	in := model.PackingResult{Bins: []model.Bin{{0.5}, {0.3}}}
	for _, capacity := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := EliminateBins(in, capacity, EliminateOptions{})
		assert.ErrorIs(t, err, model.ErrInvalidInstance, "capacity %v", capacity)
	}

	overfull := model.PackingResult{Bins: []model.Bin{{0.6, 0.6}, {0.2}}}
	_, err := EliminateBins(overfull, 1, EliminateOptions{})
	assert.ErrorIs(t, err, model.ErrInvalidInstance, "bin load above capacity")

	oversized := model.PackingResult{Bins: []model.Bin{{1.5}}}
	_, err = EliminateBins(oversized, 1, EliminateOptions{})
	assert.ErrorIs(t, err, model.ErrInvalidInstance, "item above capacity")

	out, err := EliminateBins(model.PackingResult{}, 1, EliminateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NumBins())
}
