// Copyright 2025 The wattdash Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnergyRates holds the per-kWh rate table
type EnergyRates struct {
	Standard float64 `yaml:"standard"`
	Peak     float64 `yaml:"peak"`
	OffPeak  float64 `yaml:"off_peak"`
}

// Config holds the application configuration
type Config struct {
	// Rate table and emissions
	EnergyRates          EnergyRates `yaml:"energy_rates"`
	CarbonEmissionFactor float64     `yaml:"carbon_emission_factor"` // lbs CO2 per kWh

	// Enumerated selections offered by the dashboard
	HouseTypes    []string `yaml:"house_types"`
	EnergySources []string `yaml:"energy_sources"`

	// Analysis settings
	AnalysisPeriodDays int `yaml:"analysis_period_days"`

	// Storage
	StoragePath string `yaml:"storage_path"`

	// Debugging
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the built-in configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		EnergyRates: EnergyRates{
			Standard: 0.12,
			Peak:     0.18,
			OffPeak:  0.08,
		},
		CarbonEmissionFactor: 0.92,
		HouseTypes:           HouseTypes(),
		EnergySources: []string{
			"Grid Electricity",
			"Solar + Grid",
			"Solar Only",
			"Wind + Grid",
		},
		AnalysisPeriodDays: 30,
		StoragePath:        getDefaultStoragePath(),
		Debug:              false,
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is not an
// error: the built-in defaults are returned instead. A malformed file is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		config.applyEnvironmentVariables()
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config.applyEnvironmentVariables()
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvironmentVariables()

	return config, nil
}

// Save writes the active configuration to a YAML file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultStoragePath returns the default storage path
func getDefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wattdash"
	}
	return filepath.Join(home, ".config", "wattdash")
}

// applyEnvironmentVariables overrides config with environment variables
func (c *Config) applyEnvironmentVariables() {
	if val := os.Getenv("WATTDASH_STORAGE_PATH"); val != "" {
		c.StoragePath = val
	}
	if val := os.Getenv("WATTDASH_STANDARD_RATE"); val != "" {
		if rate, err := strconv.ParseFloat(val, 64); err == nil {
			c.EnergyRates.Standard = rate
		}
	}
	if val := os.Getenv("WATTDASH_EMISSION_FACTOR"); val != "" {
		if factor, err := strconv.ParseFloat(val, 64); err == nil {
			c.CarbonEmissionFactor = factor
		}
	}
	if val := os.Getenv("WATTDASH_DEBUG"); val == "true" || val == "1" {
		c.Debug = true
	}
}

// Validate checks if the configuration is valid. Accepting malformed rates
// would corrupt every downstream cost calculation, so rates must be positive.
func (c *Config) Validate() error {
	var errors []string

	if c.EnergyRates.Standard <= 0 {
		errors = append(errors, "energy_rates.standard must be positive")
	}
	if c.EnergyRates.Peak <= 0 {
		errors = append(errors, "energy_rates.peak must be positive")
	}
	if c.EnergyRates.OffPeak <= 0 {
		errors = append(errors, "energy_rates.off_peak must be positive")
	}

	if c.CarbonEmissionFactor <= 0 {
		errors = append(errors, "carbon_emission_factor must be positive")
	}

	if c.AnalysisPeriodDays < 1 || c.AnalysisPeriodDays > 365 {
		errors = append(errors, "analysis_period_days must be between 1 and 365")
	}

	if len(c.HouseTypes) == 0 {
		errors = append(errors, "house_types must not be empty")
	}
	if len(c.EnergySources) == 0 {
		errors = append(errors, "energy_sources must not be empty")
	}

	if c.StoragePath == "" {
		c.StoragePath = getDefaultStoragePath()
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
