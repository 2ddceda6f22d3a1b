package pattern

import (
	"sort"

	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/util"
	"github.com/pkg/errors"
)

// Pattern is a run of consecutive quantized IOIs, stored as integer multiples
// of the quantization unit so that equal rhythms are equal map keys.
type Pattern [constants.PatternLength]int64

// Seconds converts the pattern back to IOIs in seconds.
func (p Pattern) Seconds(quantization float64) [constants.PatternLength]float64 {
	var res [constants.PatternLength]float64
	for i, ticks := range p {
		res[i] = float64(ticks) * quantization
	}
	return res
}

// Histogram counts pattern occurrences. It remembers the order in which
// patterns were first seen, which is used to break ties in Top.
type Histogram struct {
	Quantization float64
	counts       map[Pattern]int
	order        []Pattern
}

func NewHistogram(quantization float64) *Histogram {
	return &Histogram{
		Quantization: quantization,
		counts:       make(map[Pattern]int),
	}
}

func (h *Histogram) Add(p Pattern, n int) {
	if _, ok := h.counts[p]; !ok {
		h.order = append(h.order, p)
	}
	h.counts[p] += n
}

func (h *Histogram) Count(p Pattern) int {
	return h.counts[p]
}

// Len is the number of distinct patterns.
func (h *Histogram) Len() int {
	return len(h.counts)
}

// Total is the number of recorded pattern occurrences.
func (h *Histogram) Total() int {
	return util.Sum(util.GetValues(h.counts))
}

// Counts returns a copy of the underlying mapping.
func (h *Histogram) Counts() map[Pattern]int {
	res := make(map[Pattern]int, len(h.counts))
	for k, v := range h.counts {
		res[k] = v
	}
	return res
}

// Patterns returns the distinct patterns in first-seen order.
func (h *Histogram) Patterns() []Pattern {
	res := make([]Pattern, len(h.order))
	copy(res, h.order)
	return res
}

// Top returns up to k patterns by count descending, ties in first-seen order.
// k <= 0 returns all of them.
func (h *Histogram) Top(k int) []Pattern {
	res := h.Patterns()
	sort.SliceStable(res, func(i, j int) bool {
		return h.counts[res[i]] > h.counts[res[j]]
	})
	if k > 0 && k < len(res) {
		res = res[:k]
	}
	return res
}

// Entries flattens the patterns returned by Top(k).
func (h *Histogram) Entries(k int) []model.PatternCount {
	top := h.Top(k)
	res := make([]model.PatternCount, 0, len(top))
	for _, p := range top {
		res = append(res, model.PatternCount{
			Ticks: p,
			IOIs:  p.Seconds(h.Quantization),
			Count: h.counts[p],
		})
	}
	return res
}

// Merge adds every entry of other into h. Both must use the same quantization.
func (h *Histogram) Merge(other *Histogram) error {
	if other.Quantization != h.Quantization {
		return errors.Wrapf(model.ErrInvalidParameter,
			"cannot merge histograms with quantization %v and %v", h.Quantization, other.Quantization)
	}
	for _, p := range other.order {
		h.Add(p, other.counts[p])
	}
	return nil
}

// FromEntries rebuilds a histogram from flattened entries, e.g. a saved report.
func FromEntries(quantization float64, entries []model.PatternCount) *Histogram {
	h := NewHistogram(quantization)
	for _, e := range entries {
		h.Add(Pattern(e.Ticks), e.Count)
	}
	return h
}

// Find quantizes the inter-onset intervals of notes and counts every run of
// four consecutive IOIs, overlapping. N notes give N-1 IOIs and max(0, N-4)
// recorded patterns. Notes must be sorted by start.
func Find(notes model.Notes, quantization float64) (*Histogram, error) {
	if err := model.CheckPositive("quantization", quantization); err != nil {
		return nil, err
	}
	if err := model.CheckOrder(notes); err != nil {
		return nil, err
	}

	h := NewHistogram(quantization)
	iois := IOIs(notes, quantization)
	for i := constants.PatternLength - 1; i < len(iois); i++ {
		var p Pattern
		copy(p[:], iois[i-constants.PatternLength+1:i+1])
		h.Add(p, 1)
	}
	return h, nil
}

// IOIs returns the quantized inter-onset intervals in ticks.
func IOIs(notes model.Notes, quantization float64) []int64 {
	if len(notes) < 2 {
		return nil
	}
	res := make([]int64, 0, len(notes)-1)
	for i := 1; i < len(notes); i++ {
		res = append(res, util.QuantizeTicks(notes[i].Start-notes[i-1].Start, quantization))
	}
	return res
}
