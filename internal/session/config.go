package session

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/opsprep/tcoprep/internal/tco"
)

// DefaultPassingScore is the pass threshold used when the config leaves it
// unset, expressed as a fraction.
const DefaultPassingScore = 0.70

// MinSessionQuestions is the absolute floor for starting a session.
// Callers normally enforce a practical minimum of 3.
const MinSessionQuestions = 1

// Config describes a practice session. TimeLimit is advisory: the manager
// records it but never enforces it; the caller owns the timer.
type Config struct {
	ModuleID      string        `json:"moduleId"`
	Domain        tco.Domain    `json:"domain"`
	QuestionCount int           `json:"questionCount" validate:"gte=0"`
	PassingScore  float64       `json:"passingScore" validate:"gte=0,lte=1"`
	TimeLimit     time.Duration `json:"timeLimit" validate:"gte=0"`
}

var validateConfig = validator.New()

// ResolvePassingScore returns the configured pass threshold as a fraction,
// falling back to DefaultPassingScore when unset.
func ResolvePassingScore(cfg Config) float64 {
	if cfg.PassingScore > 0 {
		return cfg.PassingScore
	}
	return DefaultPassingScore
}

// validateSessionConfig checks a config at session creation.
func validateSessionConfig(cfg Config) error {
	if cfg.Domain != "" && !tco.IsValidDomain(cfg.Domain) {
		return fmt.Errorf("unknown domain %q", cfg.Domain)
	}
	if err := validateConfig.Struct(cfg); err != nil {
		return fmt.Errorf("session config: %w", err)
	}
	return nil
}
