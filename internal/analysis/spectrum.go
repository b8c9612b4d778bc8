package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the DFT of data
// with its mean removed.
func PowerSpectrum(data []float64) []float64 {
	m := mean(data)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - m
	}

	bins := fft.FFTReal(centered)
	ps := make([]float64, len(bins)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin
// for samples taken every dt seconds. Resolution is 1/(len(samples)*dt).
func DominantFrequency(samples []float64, dt float64) float64 {
	if len(samples) < 4 || dt <= 0 {
		return 0
	}
	ps := PowerSpectrum(samples)
	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return float64(best) / (float64(len(samples)) * dt)
}
