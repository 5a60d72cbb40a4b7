// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/splinefit/bspline"
)

// logger is the process-wide CLI logger; initLogger replaces the no-op
// default before any command body runs.
var logger = zap.NewNop().Sugar()

// zapLevel maps the --log-level flag onto a zap atomic level.
func zapLevel(name string) (zap.AtomicLevel, error) {
	switch name {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel), nil
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	case "warn", "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel), nil
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel), nil
	default:
		return zap.AtomicLevel{}, fmt.Errorf("unknown log level %q", name)
	}
}

// initLogger builds a console logger on stderr at the requested level.
func initLogger(level string) error {
	lvl, err := zapLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = l.Sugar()

	return nil
}

func syncLogger() {
	_ = logger.Sync()
}

// fitLogf adapts the CLI logger to the library's diagnostic hook.
func fitLogf() bspline.Logf {
	return func(format string, args ...any) {
		logger.Debugf(format, args...)
	}
}
