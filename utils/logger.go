package utils

import (
	"log"
	"sync"

	"mahatta/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// newLogger builds the process logger from ENV and LOG_LEVEL.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// LOG_LEVEL wins over the environment default when it parses.
	if cfg.LogLevel != "" {
		if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
			zc.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("service", "nur")), nil
}

// GetLogger returns the process logger, building it on first use. It also becomes zap's global.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		l, err := newLogger(config.AppConfig)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		logger = l
		zap.ReplaceGlobals(l)
	})
	return logger
}
