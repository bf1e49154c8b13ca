package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"recipebox/webclient/internal/config"
)

// newLogger picks the production (json) or development (console) preset and
// applies the configured level on top.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zcfg.Build()
}
