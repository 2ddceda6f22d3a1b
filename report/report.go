package report

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/rhythmdex/density"
	"github.com/jsphweid/rhythmdex/groove"
	"github.com/jsphweid/rhythmdex/midi"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/pattern"
	"github.com/jsphweid/rhythmdex/syncopation"
	"github.com/jsphweid/rhythmdex/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/sync/errgroup"
)

// Build runs every analysis over notes. The analyses only read notes, so they
// run concurrently; the first failure is returned.
func Build(notes model.Notes, params model.Params) (model.Report, error) {
	r := model.Report{
		Id:       uuid.New().String(),
		Params:   params,
		NumNotes: len(notes),
	}
	if err := params.Validate(); err != nil {
		return r, err
	}

	var g errgroup.Group
	g.Go(func() error {
		times, counts, err := density.Profile(notes, params.Window)
		if err != nil {
			return errors.Wrap(err, "density")
		}
		r.Density = density.Points(times, counts)
		return nil
	})
	g.Go(func() error {
		h, err := pattern.Find(notes, params.PatternQuantization)
		if err != nil {
			return errors.Wrap(err, "patterns")
		}
		r.Patterns = h.Entries(0)
		r.TopPatterns = h.Entries(params.TopPatterns)
		return nil
	})
	g.Go(func() error {
		records, err := syncopation.Score(notes, params.BeatsPerBar)
		if err != nil {
			return errors.Wrap(err, "syncopation")
		}
		r.Syncopation = records
		return nil
	})
	g.Go(func() error {
		records, err := groove.Analyze(notes, params.GrooveQuantization)
		if err != nil {
			return errors.Wrap(err, "groove")
		}
		r.Groove = records
		r.GrooveStats = groove.Summarize(records)
		return nil
	})

	if err := g.Wait(); err != nil {
		return r, err
	}
	return r, nil
}

// FromMidi extracts the notes of a decoded MIDI file and builds a report for
// them, including the file's tempo map.
func FromMidi(s *smf.SMF, params model.Params) (model.Report, error) {
	r, err := Build(midi.ExtractNotes(s), params)
	if err != nil {
		return r, err
	}
	r.Tempo.Times, r.Tempo.BPMs = midi.TempoChanges(s)
	return r, nil
}

// FromMidiFile is FromMidi for a file on disk.
func FromMidiFile(path string, params model.Params) (model.Report, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Report{}, err
	}
	r, err := FromMidi(s, params)
	r.File = path
	return r, err
}

func Filename(r model.Report) string {
	return r.Id + ".dat"
}

// Save writes r into dir and returns the path it was written to.
func Save(dir string, r model.Report) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", errors.Wrapf(err, "creating %v", dir)
	}
	path := filepath.Join(dir, Filename(r))
	if err := util.CreateBinary(path, r); err != nil {
		return "", err
	}
	return path, nil
}

func Load(path string) (model.Report, error) {
	return util.ReadBinary[model.Report](path)
}

// Corpus aggregates the pattern histograms of many reports.
type Corpus struct {
	NumReports int
	NumNotes   int
	Patterns   *pattern.Histogram
}

// Merge folds reports into one corpus summary. All reports must have been
// built with the same pattern quantization.
func Merge(reports []model.Report) (Corpus, error) {
	var c Corpus
	for _, r := range reports {
		h := pattern.FromEntries(r.Params.PatternQuantization, r.Patterns)
		if c.Patterns == nil {
			c.Patterns = pattern.NewHistogram(h.Quantization)
		}
		if err := c.Patterns.Merge(h); err != nil {
			return c, errors.Wrapf(err, "report %v", r.Id)
		}
		c.NumReports += 1
		c.NumNotes += r.NumNotes
	}
	return c, nil
}

func (c Corpus) String() string {
	distinct := 0
	if c.Patterns != nil {
		distinct = c.Patterns.Len()
	}
	return fmt.Sprintf("%d reports, %d notes, %d distinct patterns", c.NumReports, c.NumNotes, distinct)
}
