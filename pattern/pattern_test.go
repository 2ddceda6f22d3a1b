package pattern

import (
	"errors"
	"testing"

	"github.com/jsphweid/rhythmdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notesAt(starts ...float64) model.Notes {
	var notes model.Notes
	for _, s := range starts {
		notes = append(notes, model.NoteEvent{Start: s, End: s + 0.1, Pitch: 60, Velocity: 90})
	}
	return notes
}

func TestFourNotesGiveNoPatterns(t *testing.T) {
	notes := notesAt(0.0, 0.26, 0.49, 0.76)
	assert.Equal(t, []int64{1, 1, 1}, IOIs(notes, 0.25))

	h, err := Find(notes, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Total())
}

func TestFiveEvenNotesGiveOnePattern(t *testing.T) {
	h, err := Find(notesAt(0, 0.25, 0.5, 0.75, 1.0), 0.25)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(1, h.Len())
	p := Pattern{1, 1, 1, 1}
	assert.Equal(1, h.Count(p))
	assert.Equal([4]float64{0.25, 0.25, 0.25, 0.25}, p.Seconds(h.Quantization))
}

func TestOverlappingPatterns(t *testing.T) {
	// IOIs: 0.5 0.25 0.25 0.5 0.25 0.25 0.5
	notes := notesAt(0, 0.5, 0.75, 1.0, 1.5, 1.75, 2.0, 2.5)
	h, err := Find(notes, 0.25)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(4, h.Total())
	assert.Equal(3, h.Len())
	assert.Equal(2, h.Count(Pattern{2, 1, 1, 2}))
	assert.Equal(1, h.Count(Pattern{1, 1, 2, 1}))
	assert.Equal(1, h.Count(Pattern{1, 2, 1, 1}))
}

func TestHistogramSizeMatchesNoteCount(t *testing.T) {
	starts := []float64{0, 0.1, 0.35, 0.5, 0.52, 0.9, 1.3, 1.31, 1.8, 2.2, 2.25, 3}
	for n := 0; n <= len(starts); n++ {
		h, err := Find(notesAt(starts[:n]...), 0.25)
		require.NoError(t, err)
		want := n - 4
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, h.Total(), "n=%d", n)
	}
}

func TestFindIsDeterministic(t *testing.T) {
	notes := notesAt(0, 0.3, 0.5, 1.1, 1.2, 1.6, 2.0, 2.3, 2.5, 3.1)
	first, err := Find(notes, 0.25)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Find(notes, 0.25)
		require.NoError(t, err)
		assert.Equal(t, first.Counts(), again.Counts())
		assert.Equal(t, first.Patterns(), again.Patterns())
	}
}

func TestHalfwayIOIsRoundToEven(t *testing.T) {
	// IOIs 0.125, 0.375, 0.625, 0.875 -> 0, 2, 2, 4 ticks of 0.25
	notes := notesAt(0, 0.125, 0.5, 1.125, 2.0)
	h, err := Find(notes, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Count(Pattern{0, 2, 2, 4}))
}

func TestSimultaneousOnsetsAreKept(t *testing.T) {
	notes := notesAt(0, 0, 0.5, 0.5, 1.0)
	h, err := Find(notes, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Count(Pattern{0, 2, 0, 2}))
}

func TestUnsortedNotesAreRejected(t *testing.T) {
	_, err := Find(notesAt(0, 0.5, 0.25, 1, 1.5), 0.25)
	assert.True(t, errors.Is(err, model.ErrInvalidInputOrder))
}

func TestInvalidQuantization(t *testing.T) {
	_, err := Find(notesAt(0, 1, 2, 3, 4), 0)
	assert.True(t, errors.Is(err, model.ErrInvalidParameter))
}

func TestEmptyInput(t *testing.T) {
	h, err := Find(nil, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Top(10))
}

func TestTopBreaksTiesByFirstSeen(t *testing.T) {
	h := NewHistogram(0.25)
	h.Add(Pattern{3, 3, 3, 3}, 1)
	h.Add(Pattern{1, 1, 1, 1}, 2)
	h.Add(Pattern{2, 2, 2, 2}, 1)
	h.Add(Pattern{4, 4, 4, 4}, 2)

	assert.Equal(t, []Pattern{
		{1, 1, 1, 1},
		{4, 4, 4, 4},
		{3, 3, 3, 3},
		{2, 2, 2, 2},
	}, h.Top(0))
	assert.Equal(t, []Pattern{{1, 1, 1, 1}, {4, 4, 4, 4}}, h.Top(2))
}

func TestEntriesAndFromEntries(t *testing.T) {
	h := NewHistogram(0.5)
	h.Add(Pattern{1, 2, 1, 2}, 3)
	h.Add(Pattern{2, 2, 2, 2}, 1)

	entries := h.Entries(0)
	require.Len(t, entries, 2)
	assert.Equal(t, model.PatternCount{
		Ticks: [4]int64{1, 2, 1, 2},
		IOIs:  [4]float64{0.5, 1, 0.5, 1},
		Count: 3,
	}, entries[0])

	rebuilt := FromEntries(0.5, entries)
	assert.Equal(t, h.Counts(), rebuilt.Counts())
}

func TestMerge(t *testing.T) {
	a := NewHistogram(0.25)
	a.Add(Pattern{1, 1, 1, 1}, 2)
	b := NewHistogram(0.25)
	b.Add(Pattern{1, 1, 1, 1}, 1)
	b.Add(Pattern{2, 1, 1, 2}, 4)

	require.NoError(t, a.Merge(b))
	assert.Equal(t, 3, a.Count(Pattern{1, 1, 1, 1}))
	assert.Equal(t, 4, a.Count(Pattern{2, 1, 1, 2}))
	assert.Equal(t, 7, a.Total())

	err := a.Merge(NewHistogram(0.125))
	assert.True(t, errors.Is(err, model.ErrInvalidParameter))
}
