package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Name is used for output naming (xlsx/json report).
	Name string `yaml:"name"`
	// Lang selects the breakdown language ("en" or "ru").
	Lang string `yaml:"lang"`
	// Workers bounds how many scenarios are evaluated at once in batch mode.
	Workers   int    `yaml:"workers"`
	OutputDir string `yaml:"output_dir"`
	// Within, when > 0, also reports the chance of success within that many runs.
	Within int `yaml:"within"`
	// Confidence, when in (0, 1), also reports the runs needed to reach it.
	Confidence float64    `yaml:"confidence"`
	Scenarios  []Scenario `yaml:"scenarios"`
}

// Scenario is one named artifact target as written in odds_config.yaml.
// Values are human names or short keys; config.ParseScenario resolves them.
type Scenario struct {
	Name         string   `yaml:"name"`
	Set          string   `yaml:"set"`
	Piece        string   `yaml:"piece"`
	MainStat     string   `yaml:"main_stat"`
	SubstatCount string   `yaml:"substat_count"`
	Substats     []string `yaml:"substats"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if err := rejectUnknownKeys("config", value, "name", "lang", "workers", "output_dir", "within", "confidence", "scenarios"); err != nil {
		return err
	}

	// Decode on top of the current values so defaults survive omitted keys.
	type raw Config
	tmp := raw(*c)
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	if err := rejectUnknownKeys("scenario", value, "name", "set", "piece", "main_stat", "substat_count", "substats"); err != nil {
		return err
	}

	type raw Scenario
	tmp := raw(*s)
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*s = Scenario(tmp)
	return nil
}

func rejectUnknownKeys(what string, value *yaml.Node, keys ...string) error {
	if value == nil || value.Kind != yaml.MappingNode {
		return nil
	}
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k := value.Content[i]
		if k.Kind != yaml.ScalarNode {
			continue
		}
		if _, ok := allowed[k.Value]; !ok {
			return fmt.Errorf("%s: unsupported key %q", what, k.Value)
		}
	}
	return nil
}

// Request is the current form state: everything the engine needs for one calculation.
type Request struct {
	Set      SetChoice
	Piece    Piece
	MainStat string
	Mode     SubstatCountMode
	Substats []Substat
}

// Result is the breakdown of a single calculation.
type Result struct {
	Request Request
	// Selected is the number of distinct substats the calculation used (0 in ModeAny).
	Selected int

	PSet     float64
	PPiece   float64
	PMain    float64
	PSubroll float64
	PSubs    float64
	PTotal   float64
	// ExpectedRuns is 1/PTotal, or +Inf when PTotal is zero.
	ExpectedRuns float64
}

// ScenarioResult pairs a batch scenario name with its computed result.
type ScenarioResult struct {
	Name   string
	Result Result
}
