package util

import (
	"bytes"
	"encoding/gob"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// EnsureDir creates dir if it doesn't exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

func IsMidiPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherAllMidiPaths walks path and returns every MIDI file below it. A
// maxNum of 0 means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsMidiPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, errors.Wrapf(err, "walking %v", path)
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetValues[A comparable, B any](m map[A]B) []B {
	vals := make([]B, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

func CreateBinary(filename string, data any) error {
	logrus.Debugf("Creating binary for filename: %v", filename)
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)

	err := encoder.Encode(data)
	if err != nil {
		return errors.Wrapf(err, "encoding %v", filename)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0666); err != nil {
		return errors.Wrapf(err, "writing %v", filename)
	}
	return nil
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrap(err, "could not load binary file")
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return data, errors.Wrapf(err, "could not decode binary file %v", path)
	}
	return data, nil
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// QuantizeTicks returns v as the nearest whole number of quantization units.
// Halfway values round to even, so 0.125 on a 0.25 grid becomes 0 ticks and
// 0.375 becomes 2.
func QuantizeTicks(v, quantization float64) int64 {
	return int64(math.RoundToEven(v / quantization))
}

// Quantize snaps v to the nearest multiple of quantization.
func Quantize(v, quantization float64) float64 {
	return float64(QuantizeTicks(v, quantization)) * quantization
}
