package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
	"gopkg.in/yaml.v3"
)

func TestConfigUnmarshal_RejectsUnknownKeys(t *testing.T) {
	var cfg domain.Config
	in := "" +
		"name: test\n" +
		"theme: dark\n"

	if err := yaml.Unmarshal([]byte(in), &cfg); err == nil {
		t.Fatalf("expected error for unsupported config keys")
	}
}

func TestConfigUnmarshal_RejectsUnknownScenarioKeys(t *testing.T) {
	var cfg domain.Config
	in := "" +
		"scenarios:\n" +
		"  - name: a\n" +
		"    piece: flower\n" +
		"    level: 20\n"

	if err := yaml.Unmarshal([]byte(in), &cfg); err == nil {
		t.Fatalf("expected error for unsupported scenario keys")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "default" || cfg.Lang != "en" || cfg.Workers != 4 {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	in := "" +
		"name: crimson\n" +
		"within: 100\n" +
		"scenarios:\n" +
		"  - name: cw sands\n" +
		"    set: either\n" +
		"    piece: sands\n" +
		"    main_stat: atk%\n" +
		"    substat_count: 4\n" +
		"    substats: [cr, cd]\n"
	if err := os.WriteFile(path, []byte(in), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "crimson" || cfg.Within != 100 {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	// untouched keys keep defaults
	if cfg.Lang != "en" || cfg.Workers != 4 {
		t.Fatalf("expected defaults to survive, got %#v", cfg)
	}
	if len(cfg.Scenarios) != 1 || cfg.Scenarios[0].MainStat != "atk%" || len(cfg.Scenarios[0].Substats) != 2 {
		t.Fatalf("unexpected scenarios: %#v", cfg.Scenarios)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := []func(*domain.Config){
		func(c *domain.Config) { c.Lang = "de" },
		func(c *domain.Config) { c.Workers = 0 },
		func(c *domain.Config) { c.Within = -1 },
		func(c *domain.Config) { c.Confidence = 1 },
		func(c *domain.Config) { c.Scenarios = []domain.Scenario{{Name: " "}} },
		func(c *domain.Config) { c.Scenarios = []domain.Scenario{{Name: "a"}, {Name: "a"}} },
	}
	for i, mutate := range bad {
		cfg := Default()
		mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("case %d: expected validation error for %#v", i, cfg)
		}
	}
	if err := Validate(Default()); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestEnvApply(t *testing.T) {
	t.Setenv("ARTIFACT_ODDS_LANG", "ru")
	t.Setenv("ARTIFACT_ODDS_WORKERS", "8")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", e.LogLevel)
	}

	cfg := Default()
	e.Apply(&cfg)
	if cfg.Lang != "ru" || cfg.Workers != 8 {
		t.Fatalf("expected env overrides, got %#v", cfg)
	}
	if cfg.OutputDir != "output/artifact_odds" {
		t.Fatalf("expected output_dir default to survive, got %q", cfg.OutputDir)
	}
}

func TestParseEnv_RejectsBadWorkers(t *testing.T) {
	t.Setenv("ARTIFACT_ODDS_WORKERS", "many")
	if _, err := ParseEnv(); err == nil {
		t.Fatalf("expected error for non-numeric workers")
	}
}
