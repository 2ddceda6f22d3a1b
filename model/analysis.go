package model

type DensityPoint struct {
	Time  float64 `json:"time"`
	Count int     `json:"count"`
}

type SyncopationRecord struct {
	Time  float64 `json:"time"`
	Score float64 `json:"score"`
}

type GrooveRecord struct {
	Time      float64 `json:"time"`
	Deviation float64 `json:"deviation"`
}

// PatternCount is a flattened histogram entry. Ticks are multiples of the
// quantization unit the histogram was built with; IOIs holds the same values
// in seconds.
type PatternCount struct {
	Ticks [4]int64   `json:"ticks"`
	IOIs  [4]float64 `json:"iois"`
	Count int        `json:"count"`
}

// TempoMap holds parallel change times (seconds) and tempos (BPM).
type TempoMap struct {
	Times []float64 `json:"times"`
	BPMs  []float64 `json:"bpms"`
}

type GrooveSummary struct {
	MeanDeviation    float64 `json:"mean_deviation"`
	MeanAbsDeviation float64 `json:"mean_abs_deviation"`
	MaxAbsDeviation  float64 `json:"max_abs_deviation"`
}
