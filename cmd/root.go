package cmd

import (
	"github.com/jsphweid/rhythmdex/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rhythmdex",
	Short: "Rhythm analysis for MIDI performances",
	Long: `rhythmdex measures the rhythmic structure of MIDI files: note density over
time, recurring inter-onset-interval patterns, syncopation and groove.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func addParamFlags(flags *pflag.FlagSet, p *model.Params) {
	*p = model.DefaultParams()
	flags.Float64Var(&p.Window, "window", p.Window, "density sampling interval in seconds")
	flags.Float64Var(&p.PatternQuantization, "quantization", p.PatternQuantization, "grid unit for rhythm patterns")
	flags.Float64Var(&p.GrooveQuantization, "groove-quantization", p.GrooveQuantization, "grid unit for groove deviation")
	flags.Float64Var(&p.BeatsPerBar, "beats-per-bar", p.BeatsPerBar, "beats per bar for syncopation")
	flags.IntVar(&p.TopPatterns, "top", p.TopPatterns, "number of most frequent patterns to show (0 for all)")
}
