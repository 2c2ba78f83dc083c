package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPacking(t *testing.T) {
	m := ForPacking(3, 2)
	require.NotNil(t, m.Ratio)
	require.NotNil(t, m.Gap)
	assert.Equal(t, 1.5, *m.Ratio)
	assert.Equal(t, 0.5, *m.Gap)
	assert.Equal(t, 3, m.NumBins)
	assert.Equal(t, 2, m.LowerBound)
}

func TestForPackingUndefinedWithoutBound(t *testing.T) {
	m := ForPacking(0, 0)
	assert.Nil(t, m.Ratio)
	assert.Nil(t, m.Gap)
}

func TestForMakespan(t *testing.T) {
	m := ForMakespan(6, 4.5)
	require.NotNil(t, m.Ratio)
	assert.InDelta(t, 4.0/3, *m.Ratio, 1e-12)
	assert.InDelta(t, 1.0/3, *m.Gap, 1e-12)

	m = ForMakespan(4.5, 4.5)
	assert.Equal(t, 1.0, *m.Ratio)
	assert.Equal(t, 0.0, *m.Gap)

	m = ForMakespan(0, 0)
	assert.Nil(t, m.Ratio)
	assert.Nil(t, m.Gap)
}
