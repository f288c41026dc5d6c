// Package config loads tool settings from an optional leangen.yaml in
// the working directory.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory unless a path is given
// explicitly.
const FileName = "leangen.yaml"

// Config carries the directory layout and translation settings. Zero
// values are filled with defaults, so a partial file is fine.
type Config struct {
	// OutputDir receives generated .lean proof scripts.
	OutputDir string `yaml:"output_dir"`
	// EquationsDir holds the Eqns*.lean equation database.
	EquationsDir string `yaml:"equations_dir"`
	// BenchmarkDir is the root for generated input<N> problem folders.
	BenchmarkDir string `yaml:"benchmark_dir"`
	// Tactic justifies calc steps in emitted proofs.
	Tactic string `yaml:"tactic"`
	// MinSteps is the prover step count from which a proof counts as
	// long in summaries.
	MinSteps int `yaml:"min_steps"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		OutputDir:    "lean/Proof",
		EquationsDir: "benchmarks/Equations",
		BenchmarkDir: "benchmarks",
		Tactic:       "duper",
		MinSteps:     15,
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.EquationsDir == "" {
		c.EquationsDir = def.EquationsDir
	}
	if c.BenchmarkDir == "" {
		c.BenchmarkDir = def.BenchmarkDir
	}
	if c.Tactic == "" {
		c.Tactic = def.Tactic
	}
	if c.MinSteps == 0 {
		c.MinSteps = def.MinSteps
	}
}

// Load reads path, or FileName in the working directory when path is
// empty. A missing default file is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}
