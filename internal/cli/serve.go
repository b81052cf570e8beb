package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/lcoe-forecast/internal/server"
	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/location"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	serverConfigPath string
	envFile          string
	address          string
	maxUploadSize    string
	logLevel         string
}

// NewServeCmd creates the serve command, which runs the projection API.
func NewServeCmd(ver string) *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Long: `Serves the projection API. Settings are read from the server configuration
file, then from the environment (LCOE_SERVER_ADDRESS, LCOE_MAX_UPLOAD_SIZE,
LCOE_LOG_LEVEL, optionally loaded from an .env file), then from flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveServeConfig(opts)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, opts.logLevel, ver)
		},
	}

	cmd.Flags().StringVar(&opts.serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "optional file of environment overrides")
	cmd.Flags().StringVar(&opts.address, "address", "", "listen address override")
	cmd.Flags().StringVar(&opts.maxUploadSize, "max-upload-size", "", "maximum upload size override (e.g. 256K, 1M)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	return cmd
}

// resolveServeConfig layers the server configuration file, the environment
// and the flags, later sources winning.
func resolveServeConfig(opts serveOptions) (*server.Config, error) {
	cfg, err := server.LoadConfig(opts.serverConfigPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(opts.envFile); err != nil {
		return nil, err
	}

	if opts.address != "" {
		cfg.Address = opts.address
	}
	if opts.maxUploadSize != "" {
		size, err := server.ParseSize(opts.maxUploadSize)
		if err != nil {
			return nil, fmt.Errorf("invalid --max-upload-size: %w", err)
		}
		cfg.SetUploadSizeBytes(size)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cfg *server.Config, logLevel string, ver string) error {
	logger, err := initializeLogger(cfg.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg.UploadSizeBytes(), ver, location.DefaultTable()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "cli.runServe"),
			zap.String("address", cfg.Address),
			zap.Int64("max_upload_size", cfg.UploadSizeBytes()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "cli.runServe"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
