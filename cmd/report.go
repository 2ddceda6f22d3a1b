package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/report"
	"github.com/jsphweid/rhythmdex/util"
	"github.com/spf13/cobra"
)

var reportTop int

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", constants.DefaultTopPatterns, "number of most frequent patterns to show (0 for all)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes the reports in INDEX_PATH",
	Long:  `Merges the rhythm patterns of every indexed file and prints the most frequent ones across the corpus.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCorpus(constants.GetIndexDir())
		if err != nil {
			return err
		}
		printCorpus(cmd.OutOrStdout(), c, reportTop)
		return nil
	},
}

func loadOverviews(indexDir string) ([]model.ReportOverview, error) {
	return util.ReadBinary[[]model.ReportOverview](filepath.Join(indexDir, constants.AllReportsFilename))
}

func loadCorpus(indexDir string) (report.Corpus, error) {
	overviews, err := loadOverviews(indexDir)
	if err != nil {
		return report.Corpus{}, err
	}
	reports := make([]model.Report, 0, len(overviews))
	for _, o := range overviews {
		r, err := report.Load(filepath.Join(indexDir, o.Filename))
		if err != nil {
			return report.Corpus{}, err
		}
		reports = append(reports, r)
	}
	return report.Merge(reports)
}

func printCorpus(w io.Writer, c report.Corpus, top int) {
	fmt.Fprintln(w, c.String())
	if c.Patterns == nil {
		return
	}
	fmt.Fprintf(w, "\ntop rhythm patterns (quantization %g, %d occurrences):\n", c.Patterns.Quantization, c.Patterns.Total())
	printPatterns(w, c.Patterns.Entries(top))
}
