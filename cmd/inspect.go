package cmd

import (
	"github.com/jsphweid/rhythmdex/report"
	"github.com/spf13/cobra"
)

var inspectJSON bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <report.dat>",
	Short: "Inspects a saved report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.Load(args[0])
		if err != nil {
			return err
		}
		if inspectJSON {
			return printJSON(cmd.OutOrStdout(), r)
		}
		printReport(cmd.OutOrStdout(), r)
		return nil
	},
}
