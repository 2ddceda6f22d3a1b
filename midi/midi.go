package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file...")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("Error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file...")
	}
	return res, nil
}

// DefaultBPM is the tempo of a file that never sets one.
const DefaultBPM = 120.0

// TempoChanges exposes the file's tempo map as parallel slices of change
// times in seconds and tempos in BPM. A file without tempo events reports
// DefaultBPM at time 0.
func TempoChanges(s *smf.SMF) ([]float64, []float64) {
	changes := s.TempoChanges()
	times := make([]float64, 0, len(changes))
	bpms := make([]float64, 0, len(changes))
	for _, tc := range changes {
		times = append(times, microsToSeconds(s.TimeAt(tc.AbsTicks)))
		bpms = append(bpms, tc.BPM)
	}
	if len(bpms) == 0 {
		return []float64{0}, []float64{DefaultBPM}
	}
	return times, bpms
}

func microsToSeconds(us int64) float64 {
	return float64(us) / 1e6
}
