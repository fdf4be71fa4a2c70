package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
)

// NewLogger builds a zap logger from the logging section of the configuration.
// JSON format uses the production encoder, console the development one.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	output, err := outputPath(cfg)
	if err != nil {
		return nil, err
	}
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	zapConfig.DisableCaller = !cfg.IncludeCaller
	zapConfig.DisableStacktrace = !cfg.IncludeStacktrace

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

func outputPath(cfg config.LoggingConfig) (string, error) {
	switch cfg.Output {
	case "", "stderr":
		return "stderr", nil
	case "stdout":
		return "stdout", nil
	case "file":
		if cfg.FilePath == "" {
			return "", fmt.Errorf("logging output is file but file_path is empty")
		}
		return cfg.FilePath, nil
	default:
		return "", fmt.Errorf("unknown log output: %s", cfg.Output)
	}
}
