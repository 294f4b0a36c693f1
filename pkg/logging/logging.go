package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much is logged
type Options struct {
	Level   string // debug, info, warn or error
	File    string // JSON log destination; empty disables file output
	Verbose bool   // force debug level
	Stderr  bool   // mirror to stderr (never while a TUI owns the terminal)
}

// New builds a production zap logger. With no outputs it returns a no-op
// logger.
func New(opts Options) (*zap.Logger, error) {
	var outputs []string
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		outputs = append(outputs, opts.File)
	}
	if opts.Stderr {
		outputs = append(outputs, "stderr")
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = outputs
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("ativos"), nil
}
