package cli

import (
	"fmt"
	"io"

	"github.com/iwvelando/lcoe-forecast/internal/config"
	"github.com/iwvelando/lcoe-forecast/internal/forecast"
	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/output"
	"github.com/iwvelando/lcoe-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type computeOptions struct {
	configPath   string
	outputFormat string
	logLevel     string
}

// NewComputeCmd creates the compute command, which projects every active
// scenario of a configuration file.
func NewComputeCmd() *cobra.Command {
	var opts computeOptions
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Project every active scenario of a configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompute(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.Flags().StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	return cmd
}

func runCompute(w io.Writer, opts computeOptions) error {
	conf, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cli.runCompute"),
		)
	}

	results, err := forecast.GetProjections(logger, *conf)
	if err != nil {
		logger.Error("failed to compute projections",
			zap.String("op", "cli.runCompute"),
			zap.Error(err),
		)
		return fmt.Errorf("failed to compute projections: %w", err)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(w, results)
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, results)
	}
	return nil
}
