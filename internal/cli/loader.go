package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gchen-astro/sift/internal/lightcurve"
)

// inputFile is the on-disk batch format: one source with its reduced
// lightcurves. Robust statistics may be supplied by the reduction stage;
// when absent they are computed here with the standard 3-sigma clip.
type inputFile struct {
	Source      sourceInput       `json:"source"`
	Lightcurves []lightcurveInput `json:"lightcurves"`
}

type sourceInput struct {
	Name    string  `json:"name"`
	Project string  `json:"project,omitempty"`
	CfgHash string  `json:"cfg_hash,omitempty"`
	RA      float64 `json:"ra,omitempty"`
	Dec     float64 `json:"dec,omitempty"`
}

type lightcurveInput struct {
	Name           string              `json:"name"`
	FluxMeanRobust *float64            `json:"flux_mean_robust,omitempty"`
	FluxRMSRobust  *float64            `json:"flux_rms_robust,omitempty"`
	Samples        []lightcurve.Sample `json:"samples"`
}

// clipSigma and clipMaxIter are the defaults for computing robust
// statistics when the input file does not carry them.
const (
	clipSigma   = 3.0
	clipMaxIter = 10
)

// LoadSource reads a source and its lightcurves from a JSON input file.
func LoadSource(path string) (*lightcurve.Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var in inputFile
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode input %s: %w", path, err)
	}
	if in.Source.Name == "" {
		return nil, fmt.Errorf("input %s: source name is required", path)
	}

	src := lightcurve.NewSource(in.Source.Name, in.Source.Project, in.Source.CfgHash)
	src.RA = in.Source.RA
	src.Dec = in.Source.Dec

	for _, lcIn := range in.Lightcurves {
		mean, rms := resolveRobustStats(lcIn)
		lc := lightcurve.New(lcIn.Name, lcIn.Samples, mean, rms)
		if err := lc.Validate(); err != nil {
			return nil, fmt.Errorf("input %s: %w", path, err)
		}
		src.AddLightcurve(lc)
	}
	return src, nil
}

// resolveRobustStats uses file-provided statistics when present and
// computes them otherwise.
func resolveRobustStats(in lightcurveInput) (mean, rms float64) {
	if in.FluxMeanRobust != nil && in.FluxRMSRobust != nil {
		return *in.FluxMeanRobust, *in.FluxRMSRobust
	}
	flux := make([]float64, len(in.Samples))
	for i, s := range in.Samples {
		flux[i] = s.Flux
	}
	mean, rms = lightcurve.SigmaClippedStats(flux, clipSigma, clipMaxIter)
	if in.FluxMeanRobust != nil {
		mean = *in.FluxMeanRobust
	}
	if in.FluxRMSRobust != nil {
		rms = *in.FluxRMSRobust
	}
	return mean, rms
}
