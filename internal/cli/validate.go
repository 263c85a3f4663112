package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gchen-astro/sift/internal/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a detector config file",
		Long: `Decode a detector configuration and check it against the schema.
Unknown keys and out-of-range values are reported as errors.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "invalid config", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: snr_threshold=%g window_threshold=%g max_det_per_lc=%d abs_snr=%t\n",
				cfg.SNRThreshold, cfg.WindowThreshold(), cfg.MaxDetPerLC, cfg.AbsSNR)
			return nil
		},
	}
	return cmd
}
