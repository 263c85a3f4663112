package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gchen-astro/sift/internal/catalog"
	"github.com/gchen-astro/sift/internal/config"
	"github.com/gchen-astro/sift/internal/finder"
	"github.com/gchen-astro/sift/internal/lightcurve"
	"github.com/gchen-astro/sift/internal/store"
)

// DetectOptions holds flags for the detect command.
type DetectOptions struct {
	*RootOptions
	ConfigPath string
	Database   string
	RunID      string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DetectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "detect <input.json>...",
		Short: "Extract detections from reduced lightcurves",
		Long: `Score each input source's lightcurves and extract significant events.

Input files carry one source with its reduced lightcurves as JSON.
Detections print to stdout and, with --db, persist to a SQLite catalog.

Example:
  sift detect ./sources/sn2023abc.json
  sift detect --config detector.yaml --db run.db ./sources/*.json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to detector config YAML (defaults apply when omitted)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog (omit to skip persistence)")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "identifier stored with persisted detections")

	return cmd
}

func runDetect(cmd *cobra.Command, opts *DetectOptions, inputs []string) error {
	f, err := buildFinder(opts.ConfigPath)
	if err != nil {
		return err
	}

	var st *store.Store
	if opts.Database != "" {
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("closing database", "error", closeErr)
			}
		}()
	}

	ctx := cmd.Context()
	cat := catalog.New(0)
	var reports []DetectionReport

	for _, path := range inputs {
		src, err := LoadSource(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "load input", err)
		}
		cat.AddSource(src)

		srcDetections := 0
		for _, lc := range src.Lightcurves.Items() {
			dets, err := f.Ingest(lc, src, nil)
			if err != nil {
				return WrapExitError(ExitFailure, "ingest lightcurve", err)
			}
			cat.Record(dets)
			srcDetections += len(dets)
			for _, det := range dets {
				reports = append(reports, NewDetectionReport(det))
			}
			if st != nil && len(dets) > 0 {
				if err := persistDetections(ctx, st, src, opts.RunID, dets); err != nil {
					return WrapExitError(ExitCommandError, "persist detections", err)
				}
			}
		}
		slog.Info("source processed",
			"source", src.Name,
			"lightcurves", src.Lightcurves.Len(),
			"detections", srcDetections)
	}

	return RenderDetections(cmd.OutOrStdout(), opts.Format, reports)
}

// buildFinder loads the configuration (or the defaults) and constructs the
// engine.
func buildFinder(configPath string) (*finder.Finder, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "load config", err)
		}
	}
	f, err := finder.New(cfg)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "configure finder", err)
	}
	return f, nil
}

// persistDetections writes the source row and its detections.
func persistDetections(ctx context.Context, st *store.Store, src *lightcurve.Source, runID string, dets []*finder.Detection) error {
	sourceID, err := st.WriteSource(ctx, src)
	if err != nil {
		return err
	}
	return st.WriteDetections(ctx, sourceID, runID, dets)
}
