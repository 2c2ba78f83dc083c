package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/apsuite/internal/model"
)

func TestVolume(t *testing.T) {
	lb, err := Volume([]float64{0.5, 0.7, 0.2, 0.4}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, lb, "sum 1.8 rounds up to 2")

	lb, err = Volume(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, lb)
}

func TestVolumeIgnoresRoundingNoise(t *testing.T) {
	// Twenty items of 0.1 sum to 2.0000000000000004.
	items := make([]float64, 20)
	for i := range items {
		items[i] = 0.1
	}
	lb, err := Volume(items, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, lb)
}

func TestHalfItem(t *testing.T) {
	lb, err := HalfItem([]float64{0.6, 0.5, 0.51, 0.2}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, lb, "items equal to C/2 do not count")
}

func TestCombined1D(t *testing.T) {
	// Volume gives 2, three items above one half force 3 bins.
	lb, err := Combined1D([]float64{0.6, 0.6, 0.6}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, lb)

	lb, err = Combined1D([]float64{0.3, 0.3, 0.3, 0.3}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, lb)
}

func TestPackingBoundsValidate(t *testing.T) {
	_, err := Volume([]float64{2}, 1)
	assert.ErrorIs(t, err, model.ErrInvalidInstance)
	_, err = HalfItem([]float64{-1}, 1)
	assert.ErrorIs(t, err, model.ErrInvalidInstance)
	_, err = Area([]model.Rect{{W: 3, H: 1}}, 2, 2)
	assert.ErrorIs(t, err, model.ErrInvalidInstance)
}

func TestArea(t *testing.T) {
	lb, err := Area([]model.Rect{{W: 1, H: 1}, {W: 1, H: 1}}, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, lb)

	lb, err = Area([]model.Rect{{W: 2, H: 1}, {W: 2, H: 1}, {W: 1, H: 1}}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, lb)

	lb, err = Area(nil, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, lb)
}

func TestIdentical(t *testing.T) {
	lb, err := Identical([]float64{3, 3, 2, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, lb)

	lb, err = Identical([]float64{10, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, 10.0, lb, "longest job dominates")

	lb, err = Identical(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lb)

	_, err = Identical([]float64{1}, 0)
	assert.ErrorIs(t, err, model.ErrInvalidInstance)
}

func TestUnrelatedTrivial(t *testing.T) {
	inst := model.UnrelatedInstance{P: [][]float64{{10, 1, 4}, {1, 10, 6}}}
	lb, err := UnrelatedTrivial(inst)
	require.NoError(t, err)
	assert.Equal(t, 4.0, lb, "max of cheapest times beats the average")

	lb, err = UnrelatedTrivial(model.UnrelatedInstance{P: [][]float64{{}, {}}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, lb)

	_, err = UnrelatedTrivial(model.UnrelatedInstance{})
	assert.ErrorIs(t, err, model.ErrInvalidInstance)
}

func TestUnrelatedLP(t *testing.T) {
	lb, err := UnrelatedLP(model.UnrelatedInstance{P: [][]float64{{10, 1}, {1, 10}}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lb, 1e-7)

	lb, err = UnrelatedLP(model.UnrelatedInstance{P: [][]float64{{}}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, lb)
}
