package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridden at build time via
// -ldflags "-X github.com/gchen-astro/sift/internal/cli.Version=...".
var Version = "0.3.0-dev"

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sift version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Format == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": Version})
			}
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		},
	}
}
