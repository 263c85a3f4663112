// Package sim supports completeness testing: injecting simulated transient
// signals into copies of real lightcurves and carrying the truth parameters
// through detection so recovered events can be matched back to what was
// injected.
package sim

import (
	"math"

	"github.com/google/uuid"

	"github.com/gchen-astro/sift/internal/lightcurve"
)

// Params holds the truth values of one injected event. A detection built
// against a Params value is marked simulated even when every field is zero;
// presence of the truth mapping is what matters, not its content.
type Params struct {
	// RunID ties all injections of one completeness run together.
	RunID string `json:"run_id,omitempty"`

	// TimePeak is the injected event's peak time, in lightcurve time units.
	TimePeak float64 `json:"time_peak"`

	// FluxPeak is the injected flux excess at the peak.
	FluxPeak float64 `json:"flux_peak"`

	// Width is the Gaussian sigma of the injected bump, in time units.
	Width float64 `json:"width"`

	// Extra carries model-specific truth values that have no fixed field.
	Extra map[string]float64 `json:"extra,omitempty"`
}

// NewRunID returns a time-ordered unique identifier for a completeness run.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Inject returns a copy of the lightcurve with a Gaussian flux bump added.
// The input lightcurve is never mutated, and any derived columns on the
// copy are dropped so the detection engine scores the injected data fresh.
//
// The robust statistics are deliberately kept from the original curve: they
// describe the quiescent baseline the reduction stage measured, and the
// engine must score the injected event against that baseline, exactly as it
// would for a real transient.
func Inject(lc *lightcurve.Lightcurve, p Params) *lightcurve.Lightcurve {
	out := lc.Copy()
	out.SNR = nil
	out.DMag = nil
	out.Detected = nil

	if p.Width <= 0 {
		return out
	}
	for i, t := range out.Time {
		arg := (t - p.TimePeak) / p.Width
		out.Flux[i] += p.FluxPeak * math.Exp(-0.5*arg*arg)
	}
	return out
}
