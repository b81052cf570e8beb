package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/lcoe-forecast/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

var logFormats = map[string]func() zap.Config{
	"console": zap.NewDevelopmentConfig,
	"json":    zap.NewProductionConfig,
}

// initializeLogger builds the zap logger described by loggingConfig. A
// non-empty logLevelOverride (from --log-level) wins over the configured
// level. Defaults are info and json.
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	levelName := loggingConfig.Level
	if logLevelOverride != "" {
		levelName = logLevelOverride
	}
	if levelName == "" {
		levelName = "info"
	}
	level, ok := logLevels[levelName]
	if !ok {
		return nil, fmt.Errorf("invalid log level: %s", levelName)
	}

	formatName := loggingConfig.Format
	if formatName == "" {
		formatName = "json"
	}
	newConfig, ok := logFormats[formatName]
	if !ok {
		return nil, fmt.Errorf("invalid log format: %s", formatName)
	}

	zapConfig := newConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if path := loggingConfig.OutputFile; path != "" {
		if err := ensureWritable(path); err != nil {
			return nil, err
		}
		zapConfig.OutputPaths = []string{path}
		zapConfig.ErrorOutputPaths = []string{path}
	}

	return zapConfig.Build()
}

// ensureWritable creates the log file and its directory if needed so that
// a bad path fails here rather than inside zap.
func ensureWritable(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file.Close()
}
