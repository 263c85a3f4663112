// Package finder implements the transient detection engine.
//
// The engine scores lightcurves against their robust baseline statistics
// and extracts significant peaks in an iterative re-mask-and-rescan loop:
//
//  1. snr[i] = (flux[i] - robust mean) / noise floor, dmag[i] = mag[i] - median(mag)
//  2. mask points already claimed, quality-flagged, or NaN to zero
//  3. take the strongest surviving point; if it clears the threshold, emit
//     a detection, claim its event window, and scan again
//  4. stop at the per-lightcurve cap or the first failed threshold
//
// Masking instead of removing points keeps every index aligned with the
// original lightcurve, which detection provenance depends on.
//
// A Finder is immutable after construction and safe to reuse across many
// lightcurves and across repeated runs of the same lightcurve before and
// after simulation injection. The only state written during ingestion lives
// on the lightcurve itself (its derived columns), so ingesting two
// different lightcurves concurrently is safe; ingesting the same lightcurve
// concurrently is not, and callers must serialize that.
package finder
