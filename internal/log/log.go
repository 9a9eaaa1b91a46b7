// Package log provides the application logger, a zap SugaredLogger.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	base = zap.NewNop()

	// sugar backs the package-level helpers and skips their frame
	sugar = base.Sugar()
)

// Init replaces the no-op logger with a console logger. Debug selects the
// development configuration.
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.DisableStacktrace = true
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	base = logger
	sugar = logger.WithOptions(zap.AddCallerSkip(1)).Sugar()
	return nil
}

// Sugared returns the logger for callers that keep their own reference
func Sugared() *zap.SugaredLogger {
	return base.Sugar()
}

// With returns a child logger carrying the given fields
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	return base.Sugar().With(keysAndValues...)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = base.Sync()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	sugar.Debugw(msg, keysAndValues...)
}

func Infof(template string, args ...interface{}) {
	sugar.Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	sugar.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	sugar.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	sugar.Errorw(msg, keysAndValues...)
}
