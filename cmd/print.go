package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/rhythmdex/model"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatIOIs(iois [4]float64) string {
	parts := make([]string, len(iois))
	for i, v := range iois {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printTempo(w io.Writer, tempo model.TempoMap) {
	fmt.Fprintln(w, "tempo changes:")
	for i := range tempo.Times {
		fmt.Fprintf(w, "  %8.3fs  %7.2f bpm\n", tempo.Times[i], tempo.BPMs[i])
	}
}

func printPatterns(w io.Writer, patterns []model.PatternCount) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  pattern\tcount")
	for _, p := range patterns {
		fmt.Fprintf(tw, "  %s\t%d\n", formatIOIs(p.IOIs), p.Count)
	}
	tw.Flush()
}

func printReport(w io.Writer, r model.Report) {
	if r.File != "" {
		fmt.Fprintf(w, "file: %v\n", r.File)
	}
	if r.MidiMetadata != nil {
		fmt.Fprintf(w, "title: %v - %v (%v)\n", r.MidiMetadata.Artist, r.MidiMetadata.Title, r.MidiMetadata.Year)
	}
	fmt.Fprintf(w, "id: %v\n", r.Id)
	fmt.Fprintf(w, "notes: %v\n", r.NumNotes)

	fmt.Fprintf(w, "\ndensity (window %gs):\n", r.Params.Window)
	for _, p := range r.Density {
		fmt.Fprintf(w, "  %8.3fs  %3d %s\n", p.Time, p.Count, strings.Repeat("#", p.Count))
	}

	fmt.Fprintf(w, "\ntop rhythm patterns (quantization %g, %d distinct):\n", r.Params.PatternQuantization, len(r.Patterns))
	printPatterns(w, r.TopPatterns)

	fmt.Fprintf(w, "\nsyncopated notes (%d beats per bar): %d\n", int(r.Params.BeatsPerBar), len(r.Syncopation))
	for _, s := range r.Syncopation {
		fmt.Fprintf(w, "  %8.3fs  %.3f\n", s.Time, s.Score)
	}

	fmt.Fprintf(w, "\ngroove (quantization %g):\n", r.Params.GrooveQuantization)
	fmt.Fprintf(w, "  mean deviation      %+.4fs\n", r.GrooveStats.MeanDeviation)
	fmt.Fprintf(w, "  mean abs deviation  %.4fs\n", r.GrooveStats.MeanAbsDeviation)
	fmt.Fprintf(w, "  max abs deviation   %.4fs\n", r.GrooveStats.MaxAbsDeviation)

	if len(r.Tempo.Times) > 0 {
		fmt.Fprintln(w)
		printTempo(w, r.Tempo)
	}
}
