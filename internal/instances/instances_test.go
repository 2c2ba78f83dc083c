package instances

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/apsuite/internal/model"
)

func TestItems1DIsReproducible(t *testing.T) {
	for _, d := range []Distribution{Uniform, Bimodal, HeavyTail} {
		a, err := Items1D(Spec{N: 40, Dist: d, Seed: 7}, 1)
		require.NoError(t, err)
		b, err := Items1D(Spec{N: 40, Dist: d, Seed: 7}, 1)
		require.NoError(t, err)
		assert.Equal(t, a, b, "same seed must give same items for %s", d)

		_, err = model.ValidateItems(a, 1)
		assert.NoError(t, err, "generated %s items must be valid", d)
	}
}

func TestItems1DScalesToCapacity(t *testing.T) {
	items, err := Items1D(Spec{N: 100, Dist: Uniform, Seed: 1}, 50)
	require.NoError(t, err)
	for _, x := range items {
		assert.Greater(t, x, 0.0)
		assert.Less(t, x, 50.0)
	}
}

func TestBimodalItemsSplitIntoTwoBands(t *testing.T) {
	items, err := Items1D(Spec{N: 30, Dist: Bimodal, Seed: 3}, 1)
	require.NoError(t, err)

	small, large := 0, 0
	for _, x := range items {
		switch {
		case x >= 0.05 && x <= 0.3:
			small++
		case x >= 0.6 && x <= 0.95:
			large++
		default:
			t.Errorf("item %v outside both bands", x)
		}
	}
	assert.Equal(t, 15, small)
	assert.Equal(t, 15, large)
}

func TestRectsFitTheBin(t *testing.T) {
	for _, d := range []Distribution{Uniform, Bimodal, HeavyTail} {
		rects, err := Rects(Spec{N: 25, Dist: d, Seed: 11}, 10, 4)
		require.NoError(t, err)
		require.Len(t, rects, 25)

		_, err = model.ValidateRects(rects, 10, 4)
		assert.NoError(t, err, "generated %s rects must fit", d)
		assert.Equal(t, 24, rects[24].ID)
	}
}

func TestIdenticalJobsRanges(t *testing.T) {
	p, err := IdenticalJobs(Spec{N: 200, Dist: HeavyTail, Seed: 5})
	require.NoError(t, err)
	for _, x := range p {
		assert.GreaterOrEqual(t, x, 1.0)
		assert.LessOrEqual(t, x, 200.0)
	}
}

func TestUnrelatedShapes(t *testing.T) {
	for _, d := range []Distribution{LognormalMachines, RandomMatrix, BimodalJobs} {
		inst, err := Unrelated(Spec{N: 12, M: 3, Dist: d, Seed: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, inst.Machines())
		assert.Equal(t, 12, inst.Jobs())

		_, err = model.ValidateUnrelated(inst)
		assert.NoError(t, err, "generated %s instance must be valid", d)
	}
}

func TestUnknownDistribution(t *testing.T) {
	_, err := Items1D(Spec{N: 3, Dist: "normal"}, 1)
	assert.ErrorIs(t, err, model.ErrInvalidSetting)

	_, err = Rects(Spec{N: 3, Dist: RandomMatrix}, 1, 1)
	assert.ErrorIs(t, err, model.ErrInvalidSetting)

	_, err = IdenticalJobs(Spec{N: 3, Dist: LognormalMachines})
	assert.ErrorIs(t, err, model.ErrInvalidSetting)

	_, err = Unrelated(Spec{N: 3, M: 0, Dist: RandomMatrix})
	assert.ErrorIs(t, err, model.ErrInvalidSetting)
}
