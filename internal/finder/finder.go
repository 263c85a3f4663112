package finder

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gchen-astro/sift/internal/config"
	"github.com/gchen-astro/sift/internal/lightcurve"
	"github.com/gchen-astro/sift/internal/sim"
)

// Finder is the detection engine. It holds only configuration and a noise
// policy, both fixed at construction; Ingest never writes to the Finder.
type Finder struct {
	cfg   config.Config
	noise NoiseEstimator
}

// Option configures a Finder at construction.
type Option func(*Finder)

// WithNoiseEstimator replaces the default MaxFloorEstimator.
func WithNoiseEstimator(e NoiseEstimator) Option {
	return func(f *Finder) {
		f.noise = e
	}
}

// New creates a Finder after validating the configuration.
func New(cfg config.Config, opts ...Option) (*Finder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Finder{cfg: cfg, noise: MaxFloorEstimator{}}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Config returns the configuration the Finder was built with.
func (f *Finder) Config() config.Config {
	return f.cfg
}

// Ingest scores one lightcurve and extracts its detections, in decreasing
// order of masked significance.
//
// Scoring writes the SNR and DMag columns onto the lightcurve,
// overwriting any values from a prior run; re-running on unchanged data
// reproduces them exactly. The Detected column is allocated on first
// ingest and accumulates claimed windows, so the engine borrows exclusive
// write access to the lightcurve's derived columns for the duration of the
// call.
//
// src may be nil; it is only context for noise estimators and provenance.
// simPars non-nil marks every emitted detection as simulated and attaches
// the truth values.
//
// Ties in the peak scan resolve to the earliest index. A lightcurve with
// zero usable points (empty, all flagged, all NaN) yields zero detections
// and no error.
func (f *Finder) Ingest(lc *lightcurve.Lightcurve, src *lightcurve.Source, simPars *sim.Params) ([]*Detection, error) {
	if err := lc.Validate(); err != nil {
		return nil, fmt.Errorf("ingest %q: %w", lc.Name, err)
	}

	noise := f.noise.EstimateNoise(lc, src)
	if len(noise) != lc.Len() {
		return nil, fmt.Errorf("ingest %q: %w", lc.Name, &NoiseLengthError{Got: len(noise), Want: lc.Len()})
	}

	lc.EnsureDerived()
	magMedian := lightcurve.Median(lc.Mag)
	for i := range lc.SNR {
		lc.SNR[i] = (lc.Flux[i] - lc.FluxMeanRobust) / noise[i]
		lc.DMag[i] = lc.Mag[i] - magMedian
	}

	var detections []*Detection
	for iter := 0; iter < f.cfg.MaxDetPerLC; iter++ {
		idx, peak := f.scanPeak(lc)
		if idx < 0 || peak <= f.cfg.SNRThreshold {
			break
		}
		det := f.makeDetection(idx, lc, src, simPars)
		detections = append(detections, det)
		slog.Debug("detection extracted",
			"lightcurve", lc.Name,
			"time_peak", det.TimePeak,
			"snr", det.SNR,
			"simulated", det.Simulated)
	}

	slog.Debug("lightcurve ingested",
		"lightcurve", lc.Name,
		"points", lc.Len(),
		"detections", len(detections))
	return detections, nil
}

// scanPeak returns the index and value of the strongest unclaimed point.
//
// The working view is |snr| when AbsSNR is set, so dips compete with
// flares. Points already claimed, quality-flagged, or NaN are set to zero,
// which never wins against a positive threshold but keeps the array
// aligned with the original indices. Equal maxima resolve to the earliest
// index. Returns (-1, 0) for an empty lightcurve.
func (f *Finder) scanPeak(lc *lightcurve.Lightcurve) (int, float64) {
	best, bestIdx := 0.0, -1
	for i, v := range lc.SNR {
		if f.cfg.AbsSNR {
			v = math.Abs(v)
		}
		if lc.Detected[i] || lc.Flag[i] || math.IsNaN(v) {
			v = 0
		}
		if bestIdx < 0 || v > best {
			best, bestIdx = v, i
		}
	}
	return bestIdx, best
}
