package analysis

import "errors"

var ErrTooShort = errors.New("analysis: series too short")

// Crossings returns the interpolated times at which series passes upward
// through threshold.
func Crossings(times, series []float64, threshold float64) []float64 {
	var out []float64
	for i := 1; i < len(series) && i < len(times); i++ {
		prev, curr := series[i-1], series[i]
		if prev < threshold && curr >= threshold {
			frac := (threshold - prev) / (curr - prev)
			out = append(out, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}
	return out
}

// Period estimates the oscillation period of series as the mean interval
// between upward crossings of its mean. At least two crossings are needed.
func Period(times, series []float64) (float64, error) {
	if len(series) < 3 {
		return 0, ErrTooShort
	}
	c := Crossings(times, series, mean(series))
	if len(c) < 2 {
		return 0, ErrTooShort
	}
	return (c[len(c)-1] - c[0]) / float64(len(c)-1), nil
}

func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}
