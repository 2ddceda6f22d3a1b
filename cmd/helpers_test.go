package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// eighthsMidi is n eighth notes at 120 BPM, i.e. one every 0.25s.
func eighthsMidi(t *testing.T, n int) []byte {
	t.Helper()
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	for i := 0; i < n; i++ {
		tr.Add(0, gomidi.NoteOn(0, 60, 100))
		tr.Add(480, gomidi.NoteOff(0, 60))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)
	require.NoError(t, s.Add(tr))
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func writeMidi(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, data, 0666))
	return path
}
