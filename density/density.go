package density

import (
	"github.com/jsphweid/rhythmdex/model"
)

// Profile samples the number of sounding notes at t = 0, window, 2*window, ...
// for every t strictly below the latest note end. A note counts at t when
// Start <= t <= End. Times and counts are parallel slices.
func Profile(notes model.Notes, window float64) ([]float64, []int, error) {
	if err := model.CheckPositive("window", window); err != nil {
		return nil, nil, err
	}
	times := []float64{}
	counts := []int{}
	if len(notes) == 0 {
		return times, counts, nil
	}

	maxTime := notes[0].End
	for _, n := range notes[1:] {
		if n.End > maxTime {
			maxTime = n.End
		}
	}

	// k*window rather than accumulating, so long pieces don't drift
	for k := 0; ; k++ {
		t := float64(k) * window
		if t >= maxTime {
			break
		}
		times = append(times, t)
		counts = append(counts, countActive(notes, t))
	}
	return times, counts, nil
}

func countActive(notes model.Notes, t float64) int {
	var count int
	for _, n := range notes {
		if n.Start <= t && t <= n.End {
			count += 1
		}
	}
	return count
}

// Points zips the output of Profile.
func Points(times []float64, counts []int) []model.DensityPoint {
	res := make([]model.DensityPoint, 0, len(times))
	for i := range times {
		res = append(res, model.DensityPoint{Time: times[i], Count: counts[i]})
	}
	return res
}
