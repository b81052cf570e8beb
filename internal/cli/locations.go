package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iwvelando/lcoe-forecast/internal/config"
	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/format"
	"github.com/iwvelando/lcoe-forecast/pkg/location"
	"github.com/iwvelando/lcoe-forecast/pkg/mathutil"
	"github.com/spf13/cobra"
)

// NewLocationsCmd creates the locations command, which lists the location
// presets, including those declared in an optional configuration file.
func NewLocationsCmd() *cobra.Command {
	var configPath, outputFormat string
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the location presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := location.DefaultTable()
			if configPath != "" {
				conf, err := config.LoadConfiguration(configPath)
				if err != nil {
					return fmt.Errorf("failed to load configuration at %s: %w", configPath, err)
				}
				if table, err = conf.LocationTable(); err != nil {
					return err
				}
			}
			return writeLocations(cmd.OutOrStdout(), table, outputFormat)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "configuration file whose presets extend the built-in ones")
	cmd.Flags().StringVar(&outputFormat, "output-format", constants.OutputFormatPretty, "type of output: pretty, json")

	return cmd
}

func writeLocations(w io.Writer, table *location.Table, outputFormat string) error {
	switch outputFormat {
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(table.Presets())
	case constants.OutputFormatPretty:
	default:
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatJSON, outputFormat)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tNAME\tkWh/kW/YEAR\tINCENTIVES\tRATE")
	for _, p := range table.Presets() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.0f\t%s\t%s\n",
			p.Key,
			p.DisplayName,
			p.IrradianceKWhPerKWYear,
			format.Percent(mathutil.FractionToPercent(p.IncentiveFraction)),
			format.RatePerKWh(p.ElectricityRate),
		)
	}
	return tw.Flush()
}
