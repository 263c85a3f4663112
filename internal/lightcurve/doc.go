// Package lightcurve defines the in-memory data model for time-series
// photometry: sources, their lightcurves, and the robust summary statistics
// the detection engine scores against.
//
// A Lightcurve keeps its measurement columns immutable once built. Only the
// derived columns (SNR, DMag, Detected) are mutable, and only the detection
// engine writes them, scoped to a single ingest call.
package lightcurve
