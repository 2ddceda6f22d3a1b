package cmd

import (
	"path/filepath"
	"strconv"

	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/db"
	"github.com/jsphweid/rhythmdex/file"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/report"
	"github.com/jsphweid/rhythmdex/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var indexParams model.Params

func init() {
	addParamFlags(indexCmd.Flags(), &indexParams)
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [max files]",
	Short: "Analyzes every MIDI file under MEDIA_PATH",
	Long:  `Analyzes every MIDI file under MEDIA_PATH and saves one report per file into INDEX_PATH.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "max files must be a number")
			}
			maxNum = arg1
		}

		_, err := Index(constants.GetMediaDir(), constants.GetIndexDir(), maxNum, indexParams)
		return err
	},
}

func lookupMetadata(store *db.MetadataStore, names []string) map[string]model.MidiMetadata {
	res := make(map[string]model.MidiMetadata)
	if store == nil {
		return res
	}
	for start := 0; start < len(names); start += db.MaxBatchSize {
		end := util.Min(start+db.MaxBatchSize, len(names))
		found, err := store.GetMidiMetadatas(names[start:end])
		if err != nil {
			logrus.Warnf("Skipping metadata for %d files because: %v", end-start, err)
			continue
		}
		for k, v := range found {
			res[k] = v
		}
	}
	return res
}

// Index analyzes up to maxNum files below mediaDir (0 for all) and writes a
// report per file plus an overview of all of them into outDir. Files that
// can't be analyzed are skipped.
func Index(mediaDir, outDir string, maxNum int, params model.Params) ([]model.ReportOverview, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := util.EnsureDir(outDir); err != nil {
		return nil, errors.Wrapf(err, "creating %v", outDir)
	}

	paths, err := util.GatherAllMidiPaths(mediaDir, maxNum)
	if err != nil {
		return nil, err
	}
	fileNumMap := file.CreateFileNumMap(paths)
	nums := file.SortedFileNums(fileNumMap)

	store, err := db.NewMetadataStoreFromEnv()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, num := range nums {
		names = append(names, file.RelativeName(mediaDir, fileNumMap[num]))
	}
	metadatas := lookupMetadata(store, names)

	overviews := []model.ReportOverview{}
	for i, num := range nums {
		path := fileNumMap[num]
		logrus.Infof("Processing %v of %v midi files", i+1, len(nums))

		r, err := report.FromMidiFile(path, params)
		if err != nil {
			logrus.Warnf("Skipping %v because: %v", path, err)
			continue
		}
		r.FileNum = num
		if m, ok := metadatas[names[i]]; ok {
			r.MidiMetadata = &m
		}

		if _, err := report.Save(outDir, r); err != nil {
			return overviews, err
		}
		overviews = append(overviews, model.ReportOverview{
			FileNum:  num,
			File:     path,
			Filename: report.Filename(r),
			NumNotes: r.NumNotes,
		})
	}

	allReportsPath := filepath.Join(outDir, constants.AllReportsFilename)
	if err := util.CreateBinary(allReportsPath, overviews); err != nil {
		return overviews, err
	}
	logrus.Infof("Indexed %d of %d midi files into %v", len(overviews), len(nums), outDir)
	return overviews, nil
}
