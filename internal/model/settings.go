package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Settings holds engine selection and tuning for every problem family.
type Settings struct {
	Packing1D Packing1DSettings `json:"packing1d" yaml:"packing1d" mapstructure:"packing1d"`
	Packing2D Packing2DSettings `json:"packing2d" yaml:"packing2d" mapstructure:"packing2d"`
	Identical IdenticalSettings `json:"identical" yaml:"identical" mapstructure:"identical"`
	Unrelated UnrelatedSettings `json:"unrelated" yaml:"unrelated" mapstructure:"unrelated"`
}

// Packing1DSettings configures the 1D engines.
type Packing1DSettings struct {
	Algorithm Algorithm1D `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm" validate:"required"`
	MaxRounds int         `json:"max_rounds" yaml:"max_rounds" mapstructure:"max_rounds" validate:"gte=1"` // Bin-elimination round cap
}

// Packing2DSettings configures the 2D engines.
type Packing2DSettings struct {
	Algorithm        Algorithm2D     `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm" validate:"required"`
	DecreasingHeight bool            `json:"decreasing_height" yaml:"decreasing_height" mapstructure:"decreasing_height"` // Shelf: sort by height first
	Order            GuillotineOrder `json:"order" yaml:"order" mapstructure:"order" validate:"required"`
	Score            GuillotineScore `json:"score" yaml:"score" mapstructure:"score" validate:"required"`
}

// IdenticalSettings configures the identical-machines engines.
type IdenticalSettings struct {
	Algorithm AlgorithmIdentical `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm" validate:"required"`
}

// UnrelatedSettings configures the unrelated-machines pipeline.
type UnrelatedSettings struct {
	Algorithm            AlgorithmUnrelated `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm" validate:"required"`
	GreedyOrder          GreedyOrder        `json:"greedy_order" yaml:"greedy_order" mapstructure:"greedy_order" validate:"required"`
	LocalSearchPasses    int                `json:"local_search_passes" yaml:"local_search_passes" mapstructure:"local_search_passes" validate:"gte=1"`
	LocalSearchTimeLimit time.Duration      `json:"local_search_time_limit" yaml:"local_search_time_limit" mapstructure:"local_search_time_limit" validate:"gt=0"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Packing1D: Packing1DSettings{
			Algorithm: AlgorithmFirstFitDecr,
			MaxRounds: 50,
		},
		Packing2D: Packing2DSettings{
			Algorithm:        AlgorithmHybrid2D,
			DecreasingHeight: true,
			Order:            OrderDecreasingArea,
			Score:            ScoreBestAreaFit,
		},
		Identical: IdenticalSettings{
			Algorithm: AlgorithmLPT,
		},
		Unrelated: UnrelatedSettings{
			Algorithm:            AlgorithmLPRoundSearch,
			GreedyOrder:          GreedyMinProcDesc,
			LocalSearchPasses:    2,
			LocalSearchTimeLimit: 10 * time.Millisecond,
		},
	}
}

var validate = validator.New()

// Validate checks numeric ranges through struct tags and every enumerated
// name against its closed set.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	if !s.Packing1D.Algorithm.Valid() {
		return fmt.Errorf("%w: unknown 1D algorithm %q", ErrInvalidSetting, s.Packing1D.Algorithm)
	}
	if !s.Packing2D.Algorithm.Valid() {
		return fmt.Errorf("%w: unknown 2D algorithm %q", ErrInvalidSetting, s.Packing2D.Algorithm)
	}
	if !s.Packing2D.Order.Valid() {
		return fmt.Errorf("%w: unknown guillotine order %q", ErrInvalidSetting, s.Packing2D.Order)
	}
	if !s.Packing2D.Score.Valid() {
		return fmt.Errorf("%w: unknown guillotine score %q", ErrInvalidSetting, s.Packing2D.Score)
	}
	if !s.Identical.Algorithm.Valid() {
		return fmt.Errorf("%w: unknown identical-machines algorithm %q", ErrInvalidSetting, s.Identical.Algorithm)
	}
	if !s.Unrelated.Algorithm.Valid() {
		return fmt.Errorf("%w: unknown unrelated-machines algorithm %q", ErrInvalidSetting, s.Unrelated.Algorithm)
	}
	if !s.Unrelated.GreedyOrder.Valid() {
		return fmt.Errorf("%w: unknown greedy order %q", ErrInvalidSetting, s.Unrelated.GreedyOrder)
	}
	return nil
}
