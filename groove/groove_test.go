package groove

import (
	"errors"
	"math"
	"testing"

	"github.com/jsphweid/rhythmdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLateNote(t *testing.T) {
	res, err := Analyze(model.Notes{{Start: 0.26, End: 0.5}}, 0.125)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 0.26, res[0].Time)
	assert.InDelta(t, 0.01, res[0].Deviation, 1e-9)
}

func TestEarlyNote(t *testing.T) {
	res, err := Analyze(model.Notes{{Start: 0.98, End: 1.2}}, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, -0.02, res[0].Deviation, 1e-9)
}

func TestOneRecordPerNoteInOrder(t *testing.T) {
	notes := model.Notes{{Start: 2.01}, {Start: 0.5}, {Start: 1.13}}
	res, err := Analyze(notes, 0.125)
	require.NoError(t, err)
	require.Len(t, res, 3)
	for i, n := range notes {
		assert.Equal(t, n.Start, res[i].Time)
	}
}

func TestDeviationIsBounded(t *testing.T) {
	var notes model.Notes
	for i := 0; i < 500; i++ {
		notes = append(notes, model.NoteEvent{Start: float64(i) * 0.0173})
	}
	for _, q := range []float64{0.0625, 0.125, 0.25, 1} {
		res, err := Analyze(notes, q)
		require.NoError(t, err)
		for _, r := range res {
			assert.LessOrEqual(t, math.Abs(r.Deviation), q/2+1e-12)
		}
	}
}

func TestHalfwayRoundsToEvenGridLine(t *testing.T) {
	// 0.1875 is 1.5 grid units of 0.125, so it snaps to 0.25 and is early
	res, err := Analyze(model.Notes{{Start: 0.1875}, {Start: 0.0625}}, 0.125)
	require.NoError(t, err)
	assert.Equal(t, -0.0625, res[0].Deviation)
	assert.Equal(t, 0.0625, res[1].Deviation)
}

func TestEmptyInput(t *testing.T) {
	res, err := Analyze(nil, 0.125)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestInvalidQuantization(t *testing.T) {
	_, err := Analyze(model.Notes{{Start: 1}}, -0.125)
	assert.True(t, errors.Is(err, model.ErrInvalidParameter))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]model.GrooveRecord{
		{Time: 0, Deviation: 0.02},
		{Time: 1, Deviation: -0.04},
		{Time: 2, Deviation: 0.01},
	})
	assert.InDelta(t, -0.01/3, s.MeanDeviation, 1e-12)
	assert.InDelta(t, 0.07/3, s.MeanAbsDeviation, 1e-12)
	assert.InDelta(t, 0.04, s.MaxAbsDeviation, 1e-12)

	assert.Equal(t, model.GrooveSummary{}, Summarize(nil))
}
