package finder

import (
	"github.com/gchen-astro/sift/internal/lightcurve"
)

// eventWindow returns the membership mask of the event around peakIdx:
// every unclaimed index whose signed SNR exceeds the window threshold (see
// config.Config.WindowThreshold for the sideband convention). The window is
// not required to be contiguous.
//
// Excluding already claimed indices keeps the masks of successive
// detections from the same call disjoint. Membership uses the signed score
// even when the peak scan ran on absolute values, so a sideband-threshold
// window around a negative dip can come up empty; the peak index is
// therefore force-included, guaranteeing a detection's window contains the
// point that triggered it and that start/end are always well defined. NaN
// scores never qualify.
func (f *Finder) eventWindow(lc *lightcurve.Lightcurve, peakIdx int) []bool {
	thresh := f.cfg.WindowThreshold()
	mask := make([]bool, lc.Len())
	for i, v := range lc.SNR {
		mask[i] = v > thresh && !lc.Detected[i]
	}
	mask[peakIdx] = true
	return mask
}
