package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"

	"gopkg.in/yaml.v3"
)

const FileName = "odds_config.yaml"

// Default returns the configuration used when no config file exists.
func Default() domain.Config {
	return domain.Config{
		Name:      "default",
		Lang:      "en",
		Workers:   4,
		OutputDir: "output/artifact_odds",
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (domain.Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg domain.Config) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Lang)) {
	case "en", "ru":
	default:
		return fmt.Errorf("lang must be one of [en ru], got %q", cfg.Lang)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", cfg.Workers)
	}
	if cfg.Within < 0 {
		return fmt.Errorf("within must be >= 0, got %d", cfg.Within)
	}
	if cfg.Confidence < 0 || cfg.Confidence >= 1 {
		return fmt.Errorf("confidence must be in [0..1), got %v", cfg.Confidence)
	}

	seen := make(map[string]struct{}, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			return fmt.Errorf("scenarios[%d]: each scenario must have a non-empty name", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("scenarios: duplicate name %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
