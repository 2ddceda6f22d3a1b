package model

import (
	"math"

	"github.com/jsphweid/rhythmdex/constants"
	"github.com/pkg/errors"
)

// Params groups the per-call knobs of a full analysis run.
type Params struct {
	Window              float64 `json:"window"`
	PatternQuantization float64 `json:"pattern_quantization"`
	GrooveQuantization  float64 `json:"groove_quantization"`
	BeatsPerBar         float64 `json:"beats_per_bar"`
	TopPatterns         int     `json:"top_patterns"`
}

func DefaultParams() Params {
	return Params{
		Window:              constants.DefaultWindow,
		PatternQuantization: constants.DefaultPatternQuantization,
		GrooveQuantization:  constants.DefaultGrooveQuantization,
		BeatsPerBar:         constants.DefaultBeatsPerBar,
		TopPatterns:         constants.DefaultTopPatterns,
	}
}

// CheckPositive fails with ErrInvalidParameter unless v is a finite number > 0.
func CheckPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s must be a positive finite number, got %v", name, v)
	}
	return nil
}

func (p Params) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"window", p.Window},
		{"pattern quantization", p.PatternQuantization},
		{"groove quantization", p.GrooveQuantization},
		{"beats per bar", p.BeatsPerBar},
	}
	for _, c := range checks {
		if err := CheckPositive(c.name, c.val); err != nil {
			return err
		}
	}
	if p.TopPatterns < 0 {
		return errors.Wrapf(ErrInvalidParameter, "top patterns must not be negative, got %v", p.TopPatterns)
	}
	return nil
}
