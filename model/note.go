package model

import "github.com/pkg/errors"

// NoteEvent is one sounding note. Times are in seconds.
type NoteEvent struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Pitch      uint8   `json:"pitch"`
	Velocity   uint8   `json:"velocity"`
	Instrument uint8   `json:"instrument"`
}

func (n NoteEvent) Duration() float64 {
	return n.End - n.Start
}

// Notes is expected to be ordered by Start, ties in any order.
type Notes = []NoteEvent

// CheckOrder returns ErrInvalidInputOrder if any note starts before its
// predecessor.
func CheckOrder(notes Notes) error {
	for i := 1; i < len(notes); i++ {
		if notes[i].Start < notes[i-1].Start {
			return errors.Wrapf(ErrInvalidInputOrder,
				"note %d starts at %v, before note %d at %v",
				i, notes[i].Start, i-1, notes[i-1].Start)
		}
	}
	return nil
}
