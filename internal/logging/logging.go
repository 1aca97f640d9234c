// Package logging builds the shared zap logger. The pure scoring and
// scheduling packages never log; logging happens at the I/O boundaries
// (store, bank loading, CLI).
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a sugared logger. mode "prod"/"production" selects the JSON
// production config; anything else gets the development console config.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a no-op logger for tests and for callers that opt out.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
