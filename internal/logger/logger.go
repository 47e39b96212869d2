// Package logger owns the process-wide zap logger and the flow-id plumbing
// that ties one user action's log lines together across layers.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger for the given environment. Production logs
// JSON to stdout for the collector; everything else gets the colored console
// encoder. LOG_LEVEL overrides the config's default level when set.
func Init(env string) {
	cfg := configFor(env)

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if lvl, err := zap.ParseAtomicLevel(raw); err == nil {
			cfg.Level = lvl
		}
	}

	var err error
	log, err = cfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

func configFor(env string) zap.Config {
	if env != "production" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// L returns the global logger, initializing it lazily from APP_ENV.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return log
}

// Sync flushes buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
