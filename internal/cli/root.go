// Package cli wires the lcoe-forecast commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the lcoe-forecast CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lcoe-forecast",
		Short:        "Solar LCOE and payback projections",
		Long:         "lcoe-forecast: project the levelized cost of energy, savings and payback of residential solar installations",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewComputeCmd(), NewServeCmd(ver), NewLocationsCmd())

	return cmd
}

const rootCmdExample = `  # Project every active scenario of a configuration
  lcoe-forecast compute --config config.yaml

  # Emit the yearly breakdown as CSV
  lcoe-forecast compute --config config.yaml --output-format csv

  # Serve the projection API
  lcoe-forecast serve --server-config server-config.yaml

  # List the location presets
  lcoe-forecast locations`
