package cmd

import (
	"github.com/jsphweid/rhythmdex/midi"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tempoCmd)
}

var tempoCmd = &cobra.Command{
	Use:   "tempo <file.mid>",
	Short: "Prints the tempo changes of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		var tempo model.TempoMap
		tempo.Times, tempo.BPMs = midi.TempoChanges(s)
		printTempo(cmd.OutOrStdout(), tempo)
		return nil
	},
}
