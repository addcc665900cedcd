// Package config provides unified configuration loading for lnpv.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all lnpv configuration settings.
type Config struct {
	// Parameters controls where the parameter table comes from.
	Parameters ParametersConfig `json:"parameters" yaml:"parameters"`

	// Model contains switches for the lifetime earnings calculation.
	Model ModelConfig `json:"model" yaml:"model"`

	// MonteCarlo contains simulation settings.
	MonteCarlo MonteCarloConfig `json:"monte_carlo" yaml:"monte_carlo"`

	// Sensitivity contains sweep and break-even settings.
	Sensitivity SensitivityConfig `json:"sensitivity" yaml:"sensitivity"`

	// Output controls where and how result tables are written.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains settings for operational and trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ParametersConfig selects the parameter table.
type ParametersConfig struct {
	// File is a CSV parameter table path. Empty means the shipped defaults.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// ModelConfig configures the earnings model.
type ModelConfig struct {
	// TrainingYear adds a year-zero term comparing the apprenticeship
	// stipend against informal work forgone during training.
	TrainingYear bool `json:"training_year" yaml:"training_year"`

	// WageFloorFraction clamps decayed wages to this fraction of the
	// entry wage. Range: 0.0 to 1.0.
	WageFloorFraction float64 `json:"wage_floor_fraction" yaml:"wage_floor_fraction"`
}

// MonteCarloConfig configures the Monte Carlo simulation.
type MonteCarloConfig struct {
	// Iterations is the number of draws per subject.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Seed fixes the random stream for reproducible runs.
	Seed int64 `json:"seed" yaml:"seed"`

	// Workers bounds parallel simulation fan-out.
	Workers int `json:"workers" yaml:"workers"`
}

// SensitivityConfig configures sweeps and break-even reporting.
type SensitivityConfig struct {
	// GridPoints is the number of values per axis in two-way grids.
	// Minimum 3; 3 means {low, point value, high}.
	GridPoints int `json:"grid_points" yaml:"grid_points"`

	// BCRTargets are the benefit-cost ratios for break-even costs.
	BCRTargets []float64 `json:"bcr_targets,omitempty" yaml:"bcr_targets,omitempty"`
}

// OutputConfig controls result table output.
type OutputConfig struct {
	// Dir is the directory result CSVs are written to.
	Dir string `json:"dir" yaml:"dir"`
}

// LoggingConfig configures lnpv's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables per-scenario trace logging to <output.dir>/trace.jsonl.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Parameters: ParametersConfig{
			File: "",
		},
		Model: ModelConfig{
			TrainingYear:      false,
			WageFloorFraction: 0.01,
		},
		MonteCarlo: MonteCarloConfig{
			Iterations: 1000,
			Seed:       42,
			Workers:    4,
		},
		Sensitivity: SensitivityConfig{
			GridPoints: 3,
			BCRTargets: []float64{1, 2, 3},
		},
		Output: OutputConfig{
			Dir: "results",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.lnpv/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	// Try to load from default config file
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".lnpv", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Model.WageFloorFraction < 0 || c.Model.WageFloorFraction > 1 {
		return fmt.Errorf("wage_floor_fraction must be between 0 and 1, got %f", c.Model.WageFloorFraction)
	}

	if c.MonteCarlo.Iterations <= 0 {
		return fmt.Errorf("monte_carlo.iterations must be positive, got %d", c.MonteCarlo.Iterations)
	}

	if c.MonteCarlo.Workers <= 0 {
		return fmt.Errorf("monte_carlo.workers must be positive, got %d", c.MonteCarlo.Workers)
	}

	if c.Sensitivity.GridPoints < 3 {
		return fmt.Errorf("sensitivity.grid_points must be at least 3, got %d", c.Sensitivity.GridPoints)
	}

	for _, bcr := range c.Sensitivity.BCRTargets {
		if bcr <= 0 {
			return fmt.Errorf("sensitivity.bcr_targets must be positive, got %g", bcr)
		}
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("LNPV_PARAMS_FILE"); v != "" {
		config.Parameters.File = v
	}

	if v := os.Getenv("LNPV_TRAINING_YEAR"); v != "" {
		config.Model.TrainingYear = v == "true" || v == "1"
	}

	if v := os.Getenv("LNPV_MC_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MonteCarlo.Iterations = n
		}
	}

	if v := os.Getenv("LNPV_MC_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.MonteCarlo.Seed = n
		}
	}

	if v := os.Getenv("LNPV_MC_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MonteCarlo.Workers = n
		}
	}

	if v := os.Getenv("LNPV_GRID_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Sensitivity.GridPoints = n
		}
	}

	if v := os.Getenv("LNPV_OUTPUT_DIR"); v != "" {
		config.Output.Dir = v
	}

	if v := os.Getenv("LNPV_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
