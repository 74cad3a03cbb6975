// Package logger builds the zap logger shared by every command.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger, at debug level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
	})
}

// NewWith returns a logger from a modified production config.
func NewWith(cfgFn func(*zap.Config)) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfgFn(&cfg)
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
