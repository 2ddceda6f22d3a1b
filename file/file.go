package file

import (
	"path/filepath"
	"sort"

	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/util"
)

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// SortedFileNums returns the keys of m in ascending order.
func SortedFileNums(m model.FileNumToMidiPath) []uint32 {
	nums := util.GetKeys(m)
	sort.Slice(nums, func(i, j int) bool {
		return nums[i] < nums[j]
	})
	return nums
}

// RelativeName is the name a file is known by in the metadata store: its
// path relative to the media dir, with forward slashes.
func RelativeName(mediaDir, path string) string {
	rel, err := filepath.Rel(mediaDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
