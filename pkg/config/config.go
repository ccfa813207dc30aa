package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the calculator configuration.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling"`
	Search   SearchConfig   `yaml:"search"`
}

// SamplingConfig contains the ADC sampling parameters.
type SamplingConfig struct {
	Times              []float64 `yaml:"times"`               // Allowed sampling times (ADC clock cycles)
	ConversionOverhead float64   `yaml:"conversion_overhead"` // Fixed conversion cost (ADC clock cycles)
}

// SearchConfig contains configuration-search parameters.
type SearchConfig struct {
	MaxResults int `yaml:"max_results"` // Default number of results for multi-result searches
}

// Default returns a default configuration with the chip's documented values.
func Default() *Config {
	return &Config{
		Sampling: SamplingConfig{
			// Sampling times selectable in the ADC SMPR registers.
			Times:              []float64{1.5, 2.5, 8.5, 16.5, 32.5, 64.5, 387.5, 810.5},
			ConversionOverhead: 8.5, // 16-bit conversion
		},
		Search: SearchConfig{
			MaxResults: 5,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
// An explicitly configured empty sampling menu stays empty: yaml leaves the
// slice nil only when the key is absent.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Sampling.Times == nil {
		c.Sampling.Times = def.Sampling.Times
	}
	if c.Sampling.ConversionOverhead == 0 {
		c.Sampling.ConversionOverhead = def.Sampling.ConversionOverhead
	}

	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = def.Search.MaxResults
	}
}
