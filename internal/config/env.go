package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
)

// Env holds settings read from the environment. Flags override it.
type Env struct {
	ConfigPath string `env:"ARTIFACT_ODDS_CONFIG"`
	Lang       string `env:"ARTIFACT_ODDS_LANG"`
	Workers    int    `env:"ARTIFACT_ODDS_WORKERS"`
	OutputDir  string `env:"ARTIFACT_ODDS_OUTPUT_DIR"`
	LogLevel   string `env:"ARTIFACT_ODDS_LOG_LEVEL" envDefault:"info"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply overlays the non-empty environment values on cfg.
func (e Env) Apply(cfg *domain.Config) {
	if v := strings.TrimSpace(e.Lang); v != "" {
		cfg.Lang = v
	}
	if e.Workers > 0 {
		cfg.Workers = e.Workers
	}
	if v := strings.TrimSpace(e.OutputDir); v != "" {
		cfg.OutputDir = v
	}
}
