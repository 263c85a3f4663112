package finder

import (
	"github.com/gchen-astro/sift/internal/lightcurve"
	"github.com/gchen-astro/sift/internal/sim"
)

// Detection is one extracted event. It is immutable after creation and
// carries non-owning back-references to its source and lightcurve plus
// enough provenance (the index mask) for a persistence layer to store it.
type Detection struct {
	// Source may be nil when the caller ingested a bare lightcurve.
	Source     *lightcurve.Source
	Lightcurve *lightcurve.Lightcurve

	// TimePeak is the lightcurve time at the peak index.
	TimePeak float64

	// SNR is the signed score at the peak, even when the scan ran on
	// absolute values: a negative dip reports its negative SNR.
	SNR float64

	// TimeIndices marks every original lightcurve index belonging to this
	// event's window. The window is not required to be contiguous.
	TimeIndices []bool

	// TimeStart and TimeEnd are the lightcurve times at the first and last
	// marked index.
	TimeStart float64
	TimeEnd   float64

	// Simulated is true when the detection was built against injected
	// truth parameters, even if those parameters are all zero.
	Simulated bool
	SimPars   *sim.Params
}

// makeDetection assembles a detection at peakIdx and claims its event
// window on the lightcurve, which is the only state the extraction loop
// carries between iterations.
func (f *Finder) makeDetection(peakIdx int, lc *lightcurve.Lightcurve, src *lightcurve.Source, simPars *sim.Params) *Detection {
	mask := f.eventWindow(lc, peakIdx)

	first, last := -1, -1
	for i, in := range mask {
		if in {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	for i, in := range mask {
		if in {
			lc.Detected[i] = true
		}
	}

	return &Detection{
		Source:      src,
		Lightcurve:  lc,
		TimePeak:    lc.Time[peakIdx],
		SNR:         lc.SNR[peakIdx],
		TimeIndices: mask,
		TimeStart:   lc.Time[first],
		TimeEnd:     lc.Time[last],
		Simulated:   simPars != nil,
		SimPars:     simPars,
	}
}
