package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	assert.Equal(t, 50, s.Packing1D.MaxRounds)
	assert.Equal(t, 2, s.Unrelated.LocalSearchPasses)
	assert.Equal(t, 10*time.Millisecond, s.Unrelated.LocalSearchTimeLimit)
	assert.Equal(t, OrderDecreasingArea, s.Packing2D.Order)
	assert.Equal(t, ScoreBestAreaFit, s.Packing2D.Score)
}

func TestSettingsValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero rounds", func(s *Settings) { s.Packing1D.MaxRounds = 0 }},
		{"unknown 1d", func(s *Settings) { s.Packing1D.Algorithm = "NF" }},
		{"missing 2d", func(s *Settings) { s.Packing2D.Algorithm = "" }},
		{"unknown order", func(s *Settings) { s.Packing2D.Order = "random" }},
		{"unknown score", func(s *Settings) { s.Packing2D.Score = "worst_fit" }},
		{"unknown identical", func(s *Settings) { s.Identical.Algorithm = "SPT" }},
		{"unknown unrelated", func(s *Settings) { s.Unrelated.Algorithm = "ILP" }},
		{"unknown greedy order", func(s *Settings) { s.Unrelated.GreedyOrder = "shuffled" }},
		{"zero passes", func(s *Settings) { s.Unrelated.LocalSearchPasses = 0 }},
		{"zero time limit", func(s *Settings) { s.Unrelated.LocalSearchTimeLimit = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSetting)
		})
	}
}

func TestAlgorithmEnumerations(t *testing.T) {
	for _, a := range Algorithms1D {
		assert.True(t, a.Valid(), a)
	}
	for _, a := range Algorithms2D {
		assert.True(t, a.Valid(), a)
	}
	for _, a := range AlgorithmsIdentical {
		assert.True(t, a.Valid(), a)
	}
	for _, a := range AlgorithmsUnrelated {
		assert.True(t, a.Valid(), a)
	}
	assert.False(t, Algorithm1D("ff").Valid(), "names are case sensitive")
}
