package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gchen-astro/sift/internal/finder"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // run-level failure (invalid config, no input)
	ExitCommandError = 2 // command error (bad paths, database errors)
)

// ExitError carries a specific exit code out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Returns ExitFailure
// for errors without one.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// DetectionReport is the output row for one detection, flattened for
// rendering.
type DetectionReport struct {
	Source     string  `json:"source,omitempty"`
	Project    string  `json:"project,omitempty"`
	Lightcurve string  `json:"lightcurve"`
	TimePeak   float64 `json:"time_peak"`
	SNR        float64 `json:"snr"`
	TimeStart  float64 `json:"time_start"`
	TimeEnd    float64 `json:"time_end"`
	Points     int     `json:"points"` // indices in the event window
	Simulated  bool    `json:"simulated"`
}

// NewDetectionReport flattens a detection for output.
func NewDetectionReport(det *finder.Detection) DetectionReport {
	rep := DetectionReport{
		TimePeak:  det.TimePeak,
		SNR:       det.SNR,
		TimeStart: det.TimeStart,
		TimeEnd:   det.TimeEnd,
		Simulated: det.Simulated,
	}
	if det.Source != nil {
		rep.Source = det.Source.Name
		rep.Project = det.Source.Project
	}
	if det.Lightcurve != nil {
		rep.Lightcurve = det.Lightcurve.Name
	}
	for _, in := range det.TimeIndices {
		if in {
			rep.Points++
		}
	}
	return rep
}

// RenderDetections writes detection reports in the requested format.
func RenderDetections(w io.Writer, format string, reports []DetectionReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "no detections")
		return err
	}
	for _, rep := range reports {
		label := rep.Lightcurve
		if rep.Source != "" {
			label = rep.Source + "/" + rep.Lightcurve
		}
		suffix := ""
		if rep.Simulated {
			suffix = " [simulated]"
		}
		_, err := fmt.Fprintf(w, "%s: peak t=%g snr=%.2f window=[%g, %g] points=%d%s\n",
			label, rep.TimePeak, rep.SNR, rep.TimeStart, rep.TimeEnd, rep.Points, suffix)
		if err != nil {
			return err
		}
	}
	return nil
}
