package utils

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide logger.
	Logger   *zap.Logger
	loggerMu sync.Mutex
)

// InitializeLogger sets up the logging configuration for env at the given level.
// An unknown level falls back to info in production and debug elsewhere.
func InitializeLogger(env, level string) *zap.Logger {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil && level != "" {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	loggerMu.Lock()
	Logger = logger
	loggerMu.Unlock()
	zap.ReplaceGlobals(logger)
	return logger
}

// GetLogger retrieves the global logger, building a development one if needed.
func GetLogger() *zap.Logger {
	loggerMu.Lock()
	l := Logger
	loggerMu.Unlock()
	if l == nil {
		return InitializeLogger("development", "")
	}
	return l
}
