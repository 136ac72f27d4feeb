// Package telemetry provides the structured logging used across
// go-hnsw: the index shell, the CLI, and the benchmark harness all
// share this one zap.Logger construction path.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the log format (json, console).
	Format string
	// OutputPaths is the list of output paths (stdout, stderr, file paths).
	OutputPaths []string
	// ErrorOutputPaths is the list of error output paths.
	ErrorOutputPaths []string
	// ServiceName is attached as a structured field on every line.
	ServiceName string
	// ServiceVersion is attached as a structured field on every line.
	ServiceVersion string
}

// DefaultConfig returns the default logging configuration for a
// component named serviceName.
func DefaultConfig(serviceName string) *Config {
	return &Config{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		ServiceName:      serviceName,
		ServiceVersion:   "0.1.0",
	}
}

// NewLogger builds a zap.Logger from cfg. A nil cfg falls back to
// DefaultConfig("go-hnsw").
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig("go-hnsw")
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encoderConfig zapcore.EncoderConfig
	if cfg.Format == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         cfg.Format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: cfg.ErrorOutputPaths,
		InitialFields: map[string]interface{}{
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		},
	}

	return zapConfig.Build()
}

// Common structured-field helpers, used consistently across the index,
// the loader, and the benchmark harness so log lines stay greppable.
var (
	Operation  = func(op string) zap.Field { return zap.String("operation", op) }
	Count      = func(count int) zap.Field { return zap.Int("count", count) }
	DurationMS = func(ms int64) zap.Field { return zap.Int64("duration_ms", ms) }
)
