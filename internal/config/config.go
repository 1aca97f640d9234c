// Package config resolves tool configuration from an optional YAML file,
// TCOPREP_* environment variables, and command-line flags, in that order
// of increasing precedence. Defaults are applied by explicit resolution
// functions rather than scattered fallbacks.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. TCOPREP_BANK maps to the "bank" key.
const EnvPrefix = "TCOPREP_"

// Default values applied when no layer sets a key.
const (
	DefaultUserID        = "local"
	DefaultPassingScore  = 0.70
	DefaultQuestionCount = 10
)

// Config is the resolved tool configuration.
type Config struct {
	DBPath        string  `koanf:"db"`
	BankPath      string  `koanf:"bank" validate:"required"`
	UserID        string  `koanf:"user" validate:"required"`
	PassingScore  float64 `koanf:"passing_score" validate:"gte=0,lte=1"`
	QuestionCount int     `koanf:"question_count" validate:"gte=0"`
}

var validate = validator.New()

// Load resolves the configuration. path may be empty (no config file);
// a named but missing file is an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	applyDefaults(&cfg)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills unset keys. Each fallback lives here, once.
func applyDefaults(cfg *Config) {
	if cfg.UserID == "" {
		cfg.UserID = DefaultUserID
	}
	if cfg.PassingScore == 0 {
		cfg.PassingScore = DefaultPassingScore
	}
	if cfg.QuestionCount == 0 {
		cfg.QuestionCount = DefaultQuestionCount
	}
}
