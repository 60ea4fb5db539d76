package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level logger so call sites stay one-liners. Defaults to nop
// until Init runs, which keeps library code and tests quiet.
var log = zap.NewNop()

// Init installs the production JSON logger on stdout.
func Init() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Building the default config cannot realistically fail, but a
		// logger-less process is worse than exiting loudly.
		os.Exit(1)
	}

	log = built
	log.Info("logger initialized")
}

func toFields(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func Info(msg string, fields map[string]any) {
	log.Info(msg, toFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	log.Warn(msg, toFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	log.Error(msg, toFields(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	log.Fatal(msg, toFields(fields)...)
}
