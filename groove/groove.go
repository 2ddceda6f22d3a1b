package groove

import (
	"math"

	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/util"
)

// Analyze measures how far each note start sits from the nearest line of a
// grid with the given spacing. Positive deviation means the note is late.
// One record per note, in input order.
func Analyze(notes model.Notes, quantization float64) ([]model.GrooveRecord, error) {
	if err := model.CheckPositive("quantization", quantization); err != nil {
		return nil, err
	}
	res := make([]model.GrooveRecord, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.GrooveRecord{
			Time:      n.Start,
			Deviation: n.Start - util.Quantize(n.Start, quantization),
		})
	}
	return res, nil
}

func Summarize(records []model.GrooveRecord) model.GrooveSummary {
	var s model.GrooveSummary
	if len(records) == 0 {
		return s
	}
	var sum, sumAbs float64
	for _, r := range records {
		abs := math.Abs(r.Deviation)
		sum += r.Deviation
		sumAbs += abs
		if abs > s.MaxAbsDeviation {
			s.MaxAbsDeviation = abs
		}
	}
	s.MeanDeviation = sum / float64(len(records))
	s.MeanAbsDeviation = sumAbs / float64(len(records))
	return s
}
