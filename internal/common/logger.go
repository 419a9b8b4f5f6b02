package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/berrythewa/cliplate/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFileName is the name of the log file written under the log directory
const LogFileName = "cliplate.log"

// LoggerOptions are the command line switches that affect logging
type LoggerOptions struct {
	Verbose bool
	Quiet   bool
	// Level overrides the configured level when non-empty
	Level string
}

// NewLogger creates a logger from the configuration and command line options.
// Verbose selects zap's development config; quiet raises the level to warn.
func NewLogger(cfg *config.Config, opts LoggerOptions) (*zap.Logger, error) {
	zcfg, err := buildConfig(cfg, opts)
	if err != nil {
		return nil, err
	}
	return zcfg.Build()
}

func buildConfig(cfg *config.Config, opts LoggerOptions) (zap.Config, error) {
	var zcfg zap.Config
	if opts.Verbose {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if cfg.Log.Format == "json" {
		zcfg.Encoding = "json"
	}

	levelText := cfg.Log.Level
	if opts.Level != "" {
		levelText = opts.Level
	}
	var level zapcore.Level
	switch {
	case opts.Quiet:
		level = zapcore.WarnLevel
	case opts.Verbose:
		level = zapcore.DebugLevel
	case levelText == "":
		level = zapcore.InfoLevel
	default:
		if err := level.UnmarshalText([]byte(levelText)); err != nil {
			return zap.Config{}, fmt.Errorf("invalid log level %q: %w", levelText, err)
		}
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if cfg.Log.EnableFileLogging && cfg.SystemPaths.LogDir != "" {
		if err := os.MkdirAll(cfg.SystemPaths.LogDir, 0755); err != nil {
			return zap.Config{}, fmt.Errorf("failed to create log directory: %w", err)
		}
		zcfg.OutputPaths = append(zcfg.OutputPaths, filepath.Join(cfg.SystemPaths.LogDir, LogFileName))
	}
	return zcfg, nil
}
