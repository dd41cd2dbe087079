// SPDX-License-Identifier: MIT

// Package config holds the hanzisquare command configuration. Values come
// from defaults, an optional YAML/TOML/JSON file, HANZISQUARE_* environment
// variables and command-line flags, merged by viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/hanzisquare/mip"
)

// EnvPrefix prefixes every environment override, e.g. HANZISQUARE_SOLVE_BOUND.
const EnvPrefix = "HANZISQUARE"

// Config represents the complete hanzisquare configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Graph   GraphConfig   `mapstructure:"graph"`
	Solve   SolveConfig   `mapstructure:"solve"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig locates the decomposition table.
type InputConfig struct {
	// Path is the tab-separated decomposition table.
	Path string `mapstructure:"path"`
	// Filter is an optional file whose first line lists the characters to keep.
	Filter string `mapstructure:"filter"`
}

// GraphConfig controls graph construction.
type GraphConfig struct {
	// ClearNodes drops characters that are themselves components from the
	// character index.
	ClearNodes bool `mapstructure:"clear_nodes"`
}

// SolveConfig controls the square search.
type SolveConfig struct {
	// Iterations is the number of enumeration rounds.
	Iterations int `mapstructure:"iterations"`
	// TimeLimit bounds each round (0 = no limit).
	TimeLimit time.Duration `mapstructure:"time_limit"`
	// MIPGap is the relative optimality gap.
	MIPGap float64 `mapstructure:"mip_gap"`
	// Bound is the big-M constant and cap on the side length (0 = node count).
	Bound int `mapstructure:"bound"`
	// FixedNodes must appear among the row labels.
	FixedNodes []string `mapstructure:"fixed_nodes"`
	// ProblemFile receives the LP model of each round when set.
	ProblemFile string `mapstructure:"problem_file"`
	// MaxRows caps the relaxation size of the built-in solver (0 = no cap).
	MaxRows int `mapstructure:"max_rows"`
}

// OutputConfig controls the grid report.
type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `mapstructure:"color"`
}

// LoggingConfig controls diagnostics on stderr.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `mapstructure:"level"`
	// Format is text or json.
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path: "chaizi/chaizi-jt.txt",
		},
		Graph: GraphConfig{
			ClearNodes: false,
		},
		Solve: SolveConfig{
			Iterations: 1,
			TimeLimit:  8 * time.Hour,
			MIPGap:     0,
			Bound:      15,
			FixedNodes: []string{},
			MaxRows:    mip.DefaultMaxRows,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("input.path", defaults.Input.Path)
	v.SetDefault("input.filter", defaults.Input.Filter)

	v.SetDefault("graph.clear_nodes", defaults.Graph.ClearNodes)

	v.SetDefault("solve.iterations", defaults.Solve.Iterations)
	v.SetDefault("solve.time_limit", defaults.Solve.TimeLimit)
	v.SetDefault("solve.mip_gap", defaults.Solve.MIPGap)
	v.SetDefault("solve.bound", defaults.Solve.Bound)
	v.SetDefault("solve.fixed_nodes", defaults.Solve.FixedNodes)
	v.SetDefault("solve.problem_file", defaults.Solve.ProblemFile)
	v.SetDefault("solve.max_rows", defaults.Solve.MaxRows)

	v.SetDefault("output.color", defaults.Output.Color)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// Load reads file (when non-empty) and the environment into v, then
// unmarshals and validates the merged configuration. Defaults must already
// be registered with SetDefaults.
func Load(v *viper.Viper, file string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}

	return &cfg, nil
}

// ErrInvalidConfig matches every ValidationErrors value under errors.Is.
var ErrInvalidConfig = errors.New("config: invalid configuration")
