// Package config holds the benchmark suite configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"gridbench/internal/kernel"
)

// Config configures a full suite run (gridbench all).
type Config struct {
	// Strict enables the domain check on every kernel call, suite-wide.
	Strict bool `yaml:"strict"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// Per-variant settings.
	Add1 VariantConfig `yaml:"add1"`
	Fib  VariantConfig `yaml:"fib"`
	Sum  VariantConfig `yaml:"sum"`
}

// VariantConfig tunes one kernel variant.
type VariantConfig struct {
	// N is the grid size. Inputs to the kernel lie in [0, N).
	N int `yaml:"n"`

	// Dump prints the buffer after the elapsed line.
	Dump bool `yaml:"dump"`

	// Skip leaves the variant out of a suite run.
	Skip bool `yaml:"skip"`
}

// DefaultConfig mirrors the original three programs: add1 at N=1000 with
// a dump, fib at N=30 with a dump, sum at N=30 without one.
func DefaultConfig() *Config {
	return &Config{
		Add1: VariantConfig{N: kernel.DefaultAdd1N, Dump: true},
		Fib:  VariantConfig{N: kernel.DefaultFibN, Dump: true},
		Sum:  VariantConfig{N: kernel.DefaultSumN, Dump: false},
	}
}

// Load reads a suite config from path and applies env overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	for name, v := range map[string]VariantConfig{"add1": c.Add1, "fib": c.Fib, "sum": c.Sum} {
		if v.N <= 0 {
			return fmt.Errorf("config: %s.n must be positive, got %d", name, v.N)
		}
	}
	return nil
}

// applyEnvOverrides lets the environment flip suite-wide switches without
// editing the file. GRIDBENCH_STRICT and GRIDBENCH_VERBOSE accept the
// usual boolean spellings (1, true, ...).
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GRIDBENCH_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
	if v := os.Getenv("GRIDBENCH_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}
