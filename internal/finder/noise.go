package finder

import (
	"fmt"
	"math"

	"github.com/gchen-astro/sift/internal/lightcurve"
)

// NoiseEstimator converts a lightcurve's per-point errors and whole-curve
// scatter into a per-point noise floor. Implementations must be pure:
// calling EstimateNoise twice on unchanged data must yield identical
// output, because the same data is scored before and after simulation
// injection and the results must be comparable.
//
// The source is passed for estimators that specialize per object class; the
// default ignores it.
type NoiseEstimator interface {
	EstimateNoise(lc *lightcurve.Lightcurve, src *lightcurve.Source) []float64
}

// MaxFloorEstimator is the default noise policy: the reported per-point
// error, floored at the curve's own robust scatter. Points with
// underestimated errors therefore cannot produce spuriously inflated SNR.
type MaxFloorEstimator struct{}

// EstimateNoise implements NoiseEstimator.
func (MaxFloorEstimator) EstimateNoise(lc *lightcurve.Lightcurve, _ *lightcurve.Source) []float64 {
	noise := make([]float64, lc.Len())
	for i, e := range lc.FluxErr {
		noise[i] = math.Max(e, lc.FluxRMSRobust)
	}
	return noise
}

// NoiseLengthError reports a noise estimator whose output length does not
// match the lightcurve. Only custom estimators can trigger this.
type NoiseLengthError struct {
	Got  int
	Want int
}

// Error implements the error interface.
func (e *NoiseLengthError) Error() string {
	return fmt.Sprintf("noise estimate has %d points, lightcurve has %d", e.Got, e.Want)
}
