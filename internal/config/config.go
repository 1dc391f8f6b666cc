// Package config loads and validates world generation configuration, merging
// a YAML base file with CLI flag overrides.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"worldcore/internal/apperrors"
)

// Step names the generation level a run should stop at.
type Step string

const (
	StepPlates         Step = "plates"
	StepPrecipitations Step = "precipitations"
	StepFull           Step = "full"
)

// Config is the full set of knobs needed to reproduce a world deterministically.
type Config struct {
	WorldName string  `yaml:"world_name"`
	Seed      uint32  `yaml:"seed"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Plates    int     `yaml:"plates"`
	Step      Step    `yaml:"step"`
	OceanLevel float64 `yaml:"ocean_level"`
	FadeBorders bool   `yaml:"fade_borders"`

	// Temperatures and Humidity are parsed but not used by generation:
	// pipeline.GenerateParams has no break-point fields.
	Temperatures [6]float64 `yaml:"temperatures"`
	Humidity     [7]float64 `yaml:"humidity"`

	GammaValue  float64 `yaml:"gamma_value"`
	GammaOffset float64 `yaml:"gamma_offset"`

	Tectonic TectonicConfig `yaml:"tectonic"`
	Database DatabaseConfig `yaml:"database"`
}

// TectonicConfig configures the in-process tectonic driver.
type TectonicConfig struct {
	ErosionPeriod    int     `yaml:"erosion_period"`
	FoldingRatio     float64 `yaml:"folding_ratio"`
	AggrOverlapAbs   float64 `yaml:"aggr_overlap_abs"`
	AggrOverlapRel   float64 `yaml:"aggr_overlap_rel"`
	CycleCount       int     `yaml:"cycle_count"`
}

// DatabaseConfig configures the optional persistence backends; empty strings
// disable the corresponding store.
type DatabaseConfig struct {
	PostgresURL string `yaml:"postgres_url"`
	RedisURL    string `yaml:"redis_url"`
}

// Default returns the reference defaults that reproduce the canonical
// persisted-world fixtures.
func Default() *Config {
	return &Config{
		WorldName:   "world",
		Seed:        0,
		Width:       512,
		Height:      512,
		Plates:      10,
		Step:        StepFull,
		OceanLevel:  1.0,
		FadeBorders: true,
		Temperatures: [6]float64{0.126, 0.235, 0.406, 0.561, 0.634, 0.876},
		Humidity:     [7]float64{0.059, 0.222, 0.493, 0.764, 0.927, 0.986, 0.998},
		GammaValue:   1.25,
		GammaOffset:  0.2,
		Tectonic: TectonicConfig{
			ErosionPeriod:  60,
			FoldingRatio:   0.02,
			AggrOverlapAbs: 1_000_000,
			AggrOverlapRel: 0.33,
			CycleCount:     2,
		},
	}
}

// Load reads a YAML file over top of Default(), so a partial file only
// overrides the fields it mentions.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configuration error class violations before generation starts.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return apperrors.NewConfiguration("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Plates <= 0 {
		return apperrors.NewConfiguration("plates must be positive, got %d", c.Plates)
	}
	if c.Seed > 65535 {
		return apperrors.NewConfiguration("seed must be in [0, 65535], got %d", c.Seed)
	}
	switch c.Step {
	case StepPlates, StepPrecipitations, StepFull:
	default:
		return apperrors.NewConfiguration("unrecognized step %q", c.Step)
	}
	return nil
}
