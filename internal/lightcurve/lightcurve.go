package lightcurve

import (
	"fmt"
)

// Sample is one photometric measurement. Time is not guaranteed to be
// strictly increasing across a lightcurve; nothing in the engine assumes it.
type Sample struct {
	Time    float64 `json:"time"`
	Flux    float64 `json:"flux"`
	FluxErr float64 `json:"flux_err"`
	Mag     float64 `json:"mag"`
	Flag    bool    `json:"flag,omitempty"` // quality-reject marker
}

// Lightcurve holds one source's time series in columnar form, so detection
// provenance (window index masks) can refer to original positions.
//
// Measurement columns (Time, Flux, FluxErr, Mag, Flag) are written once by
// the reduction stage and never mutated afterwards. The derived columns
// (SNR, DMag, Detected) belong to the detection engine: SNR and DMag are
// overwritten on every ingest, Detected is allocated on first ingest and
// then accumulates across repeated runs over the same curve.
type Lightcurve struct {
	Name string

	Time    []float64
	Flux    []float64
	FluxErr []float64
	Mag     []float64
	Flag    []bool

	// Robust whole-curve statistics, precomputed by the reduction stage.
	FluxMeanRobust float64
	FluxRMSRobust  float64

	// Derived columns, owned by the detection engine.
	SNR      []float64
	DMag     []float64
	Detected []bool
}

// ShapeError reports a lightcurve whose columns are missing or of unequal
// length. Scoring such a curve would silently produce garbage, so ingestion
// fails fast instead.
type ShapeError struct {
	Column string
	Len    int
	Want   int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("lightcurve column %q is missing", e.Column)
	}
	return fmt.Sprintf("lightcurve column %q has %d rows, want %d", e.Column, e.Len, e.Want)
}

// New builds a Lightcurve from samples and precomputed robust statistics.
func New(name string, samples []Sample, fluxMeanRobust, fluxRMSRobust float64) *Lightcurve {
	lc := &Lightcurve{
		Name:           name,
		Time:           make([]float64, len(samples)),
		Flux:           make([]float64, len(samples)),
		FluxErr:        make([]float64, len(samples)),
		Mag:            make([]float64, len(samples)),
		Flag:           make([]bool, len(samples)),
		FluxMeanRobust: fluxMeanRobust,
		FluxRMSRobust:  fluxRMSRobust,
	}
	for i, s := range samples {
		lc.Time[i] = s.Time
		lc.Flux[i] = s.Flux
		lc.FluxErr[i] = s.FluxErr
		lc.Mag[i] = s.Mag
		lc.Flag[i] = s.Flag
	}
	return lc
}

// Len returns the number of samples.
func (lc *Lightcurve) Len() int {
	return len(lc.Time)
}

// Validate checks that every measurement column is present and of equal
// length. Returns a *ShapeError naming the first offending column.
func (lc *Lightcurve) Validate() error {
	if lc.Time == nil {
		return &ShapeError{Column: "time", Len: -1}
	}
	n := len(lc.Time)
	cols := []struct {
		name    string
		len     int
		missing bool
	}{
		{"flux", len(lc.Flux), lc.Flux == nil},
		{"flux_err", len(lc.FluxErr), lc.FluxErr == nil},
		{"mag", len(lc.Mag), lc.Mag == nil},
		{"flag", len(lc.Flag), lc.Flag == nil},
	}
	for _, c := range cols {
		if c.missing && n > 0 {
			return &ShapeError{Column: c.name, Len: -1}
		}
		if c.len != n {
			return &ShapeError{Column: c.name, Len: c.len, Want: n}
		}
	}
	return nil
}

// EnsureDerived allocates the derived columns. SNR and DMag are reallocated
// unconditionally (they are overwritten on every ingest); Detected is kept
// if already present so repeated runs over the same curve cannot re-claim
// an already detected window.
func (lc *Lightcurve) EnsureDerived() {
	n := lc.Len()
	lc.SNR = make([]float64, n)
	lc.DMag = make([]float64, n)
	if lc.Detected == nil {
		lc.Detected = make([]bool, n)
	}
}

// ResetDetected clears the detection markers, letting a curve be re-scanned
// from scratch (used between completeness runs).
func (lc *Lightcurve) ResetDetected() {
	lc.Detected = nil
}

// Copy returns a deep copy of the lightcurve, including derived columns.
// Simulation injection works on copies so the original measurement columns
// stay untouched.
func (lc *Lightcurve) Copy() *Lightcurve {
	cp := &Lightcurve{
		Name:           lc.Name,
		FluxMeanRobust: lc.FluxMeanRobust,
		FluxRMSRobust:  lc.FluxRMSRobust,
	}
	cp.Time = append([]float64(nil), lc.Time...)
	cp.Flux = append([]float64(nil), lc.Flux...)
	cp.FluxErr = append([]float64(nil), lc.FluxErr...)
	cp.Mag = append([]float64(nil), lc.Mag...)
	cp.Flag = append([]bool(nil), lc.Flag...)
	if lc.SNR != nil {
		cp.SNR = append([]float64(nil), lc.SNR...)
	}
	if lc.DMag != nil {
		cp.DMag = append([]float64(nil), lc.DMag...)
	}
	if lc.Detected != nil {
		cp.Detected = append([]bool(nil), lc.Detected...)
	}
	return cp
}
