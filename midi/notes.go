package midi

import (
	"fmt"
	"sort"

	"github.com/jsphweid/rhythmdex/model"
	"github.com/sirupsen/logrus"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the human-readable version of a note value.
func NoteName(key uint8) string {
	return fmt.Sprintf("%s%d", noteNames[key%12], int(key)/12-1)
}

type noteKey struct {
	channel uint8
	key     uint8
}

type openNote struct {
	start    int64
	velocity uint8
	program  uint8
}

// ExtractNotes pairs note starts with note ends on every track and returns
// the resulting notes ordered by start time. A repeated start for a key that
// is still sounding opens a second note; ends close the oldest one first.
// Instrument is the program last selected on the note's channel.
func ExtractNotes(s *smf.SMF) model.Notes {
	var notes model.Notes

	for trackNo, events := range s.Tracks {
		var absTicks int64
		programs := make(map[uint8]uint8)
		open := make(map[noteKey][]openNote)

		for _, event := range events {
			absTicks += int64(event.Delta)
			msg := gomidi.Message(event.Message)
			var channel, key, velocity, program uint8
			switch {
			case msg.GetProgramChange(&channel, &program):
				programs[channel] = program
			case msg.GetNoteStart(&channel, &key, &velocity):
				k := noteKey{channel, key}
				if len(open[k]) > 0 {
					logrus.Debugf("note double pressed: %s ch=%d track=%d", NoteName(key), channel, trackNo)
				}
				open[k] = append(open[k], openNote{
					start:    absTicks,
					velocity: velocity,
					program:  programs[channel],
				})
			case msg.GetNoteEnd(&channel, &key):
				k := noteKey{channel, key}
				pending := open[k]
				if len(pending) == 0 {
					logrus.Warnf("note off for unpressed note: %s ch=%d track=%d", NoteName(key), channel, trackNo)
					continue
				}
				on := pending[0]
				open[k] = pending[1:]
				notes = append(notes, model.NoteEvent{
					Start:      microsToSeconds(s.TimeAt(on.start)),
					End:        microsToSeconds(s.TimeAt(absTicks)),
					Pitch:      key,
					Velocity:   on.velocity,
					Instrument: on.program,
				})
			}
		}

		for k, pending := range open {
			for range pending {
				logrus.Warnf("missing note off for note: %s ch=%d track=%d", NoteName(k.key), k.channel, trackNo)
			}
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Start < notes[j].Start
	})
	return notes
}
