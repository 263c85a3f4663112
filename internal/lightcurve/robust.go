package lightcurve

import (
	"math"
	"sort"
)

// madToSigma scales the median absolute deviation to the standard deviation
// of a normal distribution.
const madToSigma = 1.4826

// Median returns the median of values, ignoring NaNs. Returns NaN for an
// empty (or all-NaN) input.
func Median(values []float64) float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return math.NaN()
	}
	sort.Float64s(clean)
	mid := len(clean) / 2
	if len(clean)%2 == 1 {
		return clean[mid]
	}
	return (clean[mid-1] + clean[mid]) / 2
}

// SigmaClippedStats estimates an outlier-resistant mean and scatter.
//
// The estimate is seeded with the median and the scaled median absolute
// deviation, then iterates: drop points further than sigma scatters from
// the current mean, recompute plain mean and standard deviation of the
// survivors, and stop when the survivor set no longer shrinks or maxIter is
// reached. NaNs are ignored throughout.
//
// Degenerate inputs (empty, all NaN) yield NaN for both outputs.
func SigmaClippedStats(values []float64, sigma float64, maxIter int) (mean, rms float64) {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return math.NaN(), math.NaN()
	}

	mean = Median(clean)
	rms = mad(clean, mean) * madToSigma
	if rms == 0 {
		// Flat input, nothing to clip.
		m, s := meanStd(clean)
		return m, s
	}

	kept := clean
	for iter := 0; iter < maxIter; iter++ {
		survivors := kept[:0:0]
		for _, v := range kept {
			if math.Abs(v-mean) <= sigma*rms {
				survivors = append(survivors, v)
			}
		}
		if len(survivors) == 0 {
			break
		}
		mean, rms = meanStd(survivors)
		if len(survivors) == len(kept) {
			break
		}
		kept = survivors
	}
	return mean, rms
}

// mad returns the median absolute deviation around center.
func mad(values []float64, center float64) float64 {
	dev := make([]float64, len(values))
	for i, v := range values {
		dev[i] = math.Abs(v - center)
	}
	return Median(dev)
}

// meanStd returns the plain mean and population standard deviation.
func meanStd(values []float64) (mean, std float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	for _, v := range values {
		std += (v - mean) * (v - mean)
	}
	std = math.Sqrt(std / float64(len(values)))
	return mean, std
}

// Luptitude converts flux into an asinh magnitude, which stays well behaved
// at zero and negative flux where classical magnitudes blow up.
//
// ref: Lupton, Gunn & Szalay 1999, AJ 118, 1406.
func Luptitude(flux, noiseRMS float64) float64 {
	return -2.5 / math.Ln10 * (math.Asinh(flux/(2*noiseRMS)) + math.Log(noiseRMS))
}
