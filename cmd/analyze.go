package cmd

import (
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	analyzeParams model.Params
	analyzeJSON   bool
)

func init() {
	addParamFlags(analyzeCmd.Flags(), &analyzeParams)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Analyzes the rhythm of a MIDI file",
	Long:  `Prints note density, the most frequent rhythm patterns, syncopated notes, groove and tempo changes of a MIDI file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(cmd, args[0], analyzeParams, analyzeJSON)
	},
}

func analyze(cmd *cobra.Command, path string, params model.Params, asJSON bool) error {
	logrus.Debugf("analyzing %v", path)
	r, err := report.FromMidiFile(path, params)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), r)
	}
	printReport(cmd.OutOrStdout(), r)
	return nil
}
