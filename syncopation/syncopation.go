package syncopation

import (
	"math"

	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/pkg/errors"
)

// Score returns a record for every loud note that doesn't land on a beat.
//
// Note starts are read as beat positions. A note is on a strong beat when it
// falls less than constants.StrongBeatTolerance past a whole beat. Off-beat
// notes with a normalized velocity above 0.5 are kept and scored
// velocity * (1 - fraction past the beat), so loud anticipations of the next
// beat score highest. Output follows input order.
func Score(notes model.Notes, beatsPerBar float64) ([]model.SyncopationRecord, error) {
	if err := model.CheckPositive("beats per bar", beatsPerBar); err != nil {
		return nil, err
	}

	res := []model.SyncopationRecord{}
	for i, n := range notes {
		if n.Velocity > constants.MaxMidiValue {
			return nil, errors.Wrapf(model.ErrValueOutOfRange,
				"note %d has velocity %d", i, n.Velocity)
		}
		fractional := beatFraction(n.Start, beatsPerBar)
		if fractional < constants.StrongBeatTolerance {
			continue
		}
		velocityFactor := float64(n.Velocity) / constants.MaxMidiValue
		if velocityFactor <= 0.5 {
			continue
		}
		res = append(res, model.SyncopationRecord{
			Time:  n.Start,
			Score: velocityFactor * (1 - fractional),
		})
	}
	return res, nil
}

// beatFraction is how far start lies past the latest whole beat, in [0, 1).
func beatFraction(start, beatsPerBar float64) float64 {
	positionInBar := floorMod(start, beatsPerBar)
	return floorMod(positionInBar, 1.0)
}

// floorMod is a modulo whose result takes the sign of m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
