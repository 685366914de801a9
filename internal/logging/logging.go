// Package logging configures the process-wide zap logger. Diagnostics go to
// stderr so command output on stdout stays pipeable; --debug raises the
// level.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init builds the global logger. Must be called once, before L.
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// L returns the configured logger (a no-op logger before Init).
func L() *zap.Logger { return logger }

// Sync flushes buffered log entries. Called from the root command's
// PersistentPostRun.
func Sync() { _ = logger.Sync() }
